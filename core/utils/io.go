package utils

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"
	"log"
	"path"
	"strconv"
	"strings"

	cmprs "github.com/wangkuiyi/compress_io"
	file "github.com/wangkuiyi/file"

	"github.com/CMSDAS/root-close-out/core/frame"
	"github.com/CMSDAS/root-close-out/core/hist"
)

// ReadEvents parses an event sample in the text shard format: one
// event per line, the muon count first and the muon transverse
// momenta after it, whitespace separated.  The count column is taken
// from the file as-is and never derived from the number of momenta.
func ReadEvents(r io.Reader) (*frame.Dataset, error) {
	nMuon := make([]uint32, 0)
	pts := make([][]float32, 0)

	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		fs := strings.Fields(s.Text())
		if len(fs) == 0 {
			continue
		}

		n, e := strconv.ParseUint(fs[0], 10, 32)
		if e != nil {
			return nil, fmt.Errorf("Line %d: parsing muon count: %v", line, e)
		}

		vec := make([]float32, 0, len(fs)-1)
		for _, fld := range fs[1:] {
			v, e := strconv.ParseFloat(fld, 32)
			if e != nil {
				return nil, fmt.Errorf("Line %d: parsing pt: %v", line, e)
			}
			vec = append(vec, float32(v))
		}

		nMuon = append(nMuon, uint32(n))
		pts = append(pts, vec)
	}
	if e := s.Err(); e != nil {
		return nil, e
	}

	return frame.NewDataset().
		AddUints("nMuon", nMuon).
		AddFloatVecs("Muon_pt", pts), nil
}

func LoadEventsOrDie(filename string) *frame.Dataset {
	log.Printf("Loading events %s ... ", filename)

	f, e := file.Open(filename)
	r := cmprs.NewReader(f, e, path.Ext(filename))
	if r == nil {
		log.Fatalf("Cannot open event file %s: %v", filename, e)
	}
	defer r.Close()

	ds, e := ReadEvents(r)
	if e != nil {
		log.Fatalf("Failed loading event file %s: %v", filename, e)
	}

	log.Printf("Done loading events: %d rows.", ds.Len())
	return ds
}

func SaveHist(h *hist.H1D, filename string) {
	if len(filename) > 0 {
		f, e := file.Create(filename)
		w := cmprs.NewWriter(f, e, path.Ext(filename))
		if w == nil {
			log.Printf("Cannot create file %s: %v", filename, e)
		} else {
			defer func() {
				w.Close()
				log.Printf("Saved histogram to %s.", filename)
			}()
			enc := gob.NewEncoder(w)
			if e := enc.Encode(h); e != nil {
				log.Printf("Failed encoding histogram: %v", e)
			}
		}
	}
}

func LoadHistOrDie(filename string) *hist.H1D {
	log.Printf("Loading histogram %s ...", filename)
	h := new(hist.H1D)

	f, e := file.Open(filename)
	r := cmprs.NewReader(f, e, path.Ext(filename))
	if r == nil {
		log.Fatalf("Cannot open histogram file %s: %v", filename, e)
	}
	defer r.Close()

	dec := gob.NewDecoder(r)
	if e := dec.Decode(h); e != nil {
		log.Fatalf("Cannot decode histogram: %v", e)
	}

	log.Printf("Done. %d bins %d entries.", h.NumBins(), h.Entries())
	return h
}
