// plot renders a saved histogram as a figure.  The output format is
// picked by the file extension, e.g. .png or .pdf.
// Usage:
/*
  $GOPATH/bin/plot -hist=/tmp/pt.gob.gz -out=/tmp/pt.png
*/

package main

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/CMSDAS/root-close-out/core/hist"
	"github.com/CMSDAS/root-close-out/core/utils"
)

func main() {
	flagHist := flag.String("hist", "", "The saved histogram file")
	flagOut := flag.String("out", "", "The figure file")
	flag.Parse()

	if len(*flagHist) == 0 || len(*flagOut) == 0 {
		log.Fatalf("Both -hist and -out must be specified")
	}

	h := utils.LoadHistOrDie(*flagHist)
	if e := plotHist(h, *flagOut); e != nil {
		log.Fatalf("Plotting %s: %v", *flagHist, e)
	}
	log.Printf("Wrote figure to %s.", *flagOut)
}

func plotHist(h *hist.H1D, imageFile string) error {
	vals := make(plotter.Values, h.NumBins())
	for i := range vals {
		vals[i] = float64(h.At(i))
	}

	bars, e := plotter.NewBarChart(vals, vg.Points(20))
	if e != nil {
		return fmt.Errorf("plotter.NewBarChart failed: %v", e)
	}

	p := plot.New()
	p.Title.Text = h.Title
	p.X.Label.Text = h.XLabel
	p.Y.Label.Text = h.YLabel
	p.Add(bars)

	edges := h.BinEdges()
	labels := make([]string, h.NumBins())
	for i := range labels {
		labels[i] = fmt.Sprintf("%g", edges[i])
	}
	p.NominalX(labels...)

	if e := p.Save(6*vg.Inch, 4*vg.Inch, imageFile); e != nil {
		return fmt.Errorf("Saving figure failed: %v", e)
	}
	return nil
}
