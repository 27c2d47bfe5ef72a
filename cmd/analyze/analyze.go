// analyze is the command line runner of the leading-muon-pt analysis.
// Usage:
/*
  $GOPATH/bin/analyze \
    -events=../gen/testdata/events.gz \
    -nevents=100000 \
    -out=/tmp/pt.gob.gz
*/

package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/CMSDAS/root-close-out/core/analysis"
	"github.com/CMSDAS/root-close-out/core/frame"
	"github.com/CMSDAS/root-close-out/core/hist"
	"github.com/CMSDAS/root-close-out/core/utils"
)

func main() {
	flagAddr := flag.String("addr", "", "HTTP status page address")
	flagEvents := flag.String("events", "./testdata/events", "Event sample file")
	flagNEvents := flag.Uint("nevents", 1000000,
		"Cap on the number of filtered events entering the histogram")
	flagShards := flag.Int("shards", runtime.NumCPU(),
		"Number of parallel shards")
	flagOut := flag.String("out", "", "The histogram output file")
	flagGoMaxProcs := flag.Int("GOMAXPROCS", -1, "GOMAXPROCS")

	cfg := new(analysis.Config)
	cfg.RegisterAsFlag()
	flag.Parse()

	// Flags fill the configuration unless a -config value already did.
	if len(cfg.EventFile) == 0 {
		cfg.JobName = "analyze"
		cfg.EventFile = *flagEvents
		cfg.NEvents = *flagNEvents
		cfg.Shards = *flagShards
		cfg.Output = *flagOut
		cfg.Addr = *flagAddr
	}
	if e := cfg.Validate(); e != nil {
		log.Fatalf("Invalid configuration: %v", e)
	}

	// A hack on setting the MAXPROCS.
	if *flagGoMaxProcs < 0 {
		runtime.GOMAXPROCS(runtime.NumCPU())
	} else {
		runtime.GOMAXPROCS(*flagGoMaxProcs)
	}
	log.Println("Running with MAXPROCS ", runtime.GOMAXPROCS(-1))

	var rs *utils.Runs
	if len(cfg.Addr) > 0 {
		rs = utils.EnableExpvar(cfg.Addr)
	}

	ds := utils.LoadEventsOrDie(cfg.EventFile)
	df := frame.New(ds).Parallel(cfg.Shards)
	r := analysis.LeadingMuonPt(df, cfg.NEvents)

	if rs != nil {
		log.Printf("Run start at %s", rs.Start().StartTime)
	}
	h, e := r.Value()
	if e != nil {
		log.Fatalf("Analysis of %s failed: %v", cfg.EventFile, e)
	}
	if rs != nil {
		log.Printf("Run done in %s", rs.End(h.Entries()).Duration)
	}

	printHist(h)
	utils.SaveHist(h, cfg.Output)
}

func printHist(h *hist.H1D) {
	log.Printf("%s: %d entries", h.XLabel, h.Entries())
	edges := h.BinEdges()
	log.Printf("       < %4g: %d", h.Min, h.Under)
	h.Bins.ForEach(func(bin int, count int64) error {
		log.Printf("[%4g, %4g): %d", edges[bin], edges[bin+1], count)
		return nil
	})
	log.Printf("      >= %4g: %d", h.Max, h.Over)
}
