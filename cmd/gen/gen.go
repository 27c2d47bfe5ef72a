// gen writes a synthetic event sample in the text shard format read
// by cmd/analyze: one event per line, the muon count first and the
// muon transverse momenta in GeV after it, leading muon first.
// Usage:
/*
  $GOPATH/bin/gen -n=100000 -out=/tmp/events.gz
*/

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"path"
	"sort"

	cmprs "github.com/wangkuiyi/compress_io"
	file "github.com/wangkuiyi/file"
)

func main() {
	flagOut := flag.String("out", "./testdata/events", "The output file")
	flagN := flag.Int("n", 10000, "Number of events")
	flagMaxMuons := flag.Int("maxmuons", 4, "Maximum muon multiplicity")
	flagScale := flag.Float64("scale", 20.0, "Mean pt of the spectrum in GeV")
	flagSeed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	f, e := file.Create(*flagOut)
	w := cmprs.NewWriter(f, e, path.Ext(*flagOut))
	if w == nil {
		log.Fatalf("Cannot create output file %s: %v", *flagOut, e)
	}
	defer w.Close()

	rng := rand.New(rand.NewSource(*flagSeed))
	for i := 0; i < *flagN; i++ {
		n := rng.Intn(*flagMaxMuons + 1)
		pts := make([]float64, n)
		for j := range pts {
			pts[j] = rng.ExpFloat64() * *flagScale
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(pts)))

		line := fmt.Sprintf("%d", n)
		for _, pt := range pts {
			line += fmt.Sprintf(" %.3f", pt)
		}
		if _, e := fmt.Fprintln(w, line); e != nil {
			log.Fatalf("Failed writing to %s: %v", *flagOut, e)
		}
	}

	log.Printf("Wrote %d events to %s.", *flagN, *flagOut)
}
