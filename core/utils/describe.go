package utils

import (
	"bytes"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/CMSDAS/root-close-out/core/frame"
	"github.com/CMSDAS/root-close-out/core/hist"
)

// DescribeEvents summarizes an event sample: the muon multiplicity
// spectrum ordered by frequency, and the mean and standard deviation
// of the leading muon pt over events that have one.
func DescribeEvents(ds *frame.Dataset) (string, error) {
	nMuon, ok := ds.UintCol("nMuon")
	if !ok {
		return "", fmt.Errorf("dataset has no nMuon column")
	}
	vecs, ok := ds.FloatVecCol("Muon_pt")
	if !ok {
		return "", fmt.Errorf("dataset has no Muon_pt column")
	}

	mult := hist.NewSparse()
	pts := make([]float64, 0, len(nMuon))
	for i, n := range nMuon {
		mult.Inc(int(n), 1)
		if n > 0 && len(vecs[i]) > 0 {
			pts = append(pts, float64(vecs[i][0]))
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d events\n", ds.Len())
	fmt.Fprintf(&buf, "muon multiplicity, most frequent first: %v\n",
		hist.NewOrderedSparse().Assign(mult))
	if len(pts) > 0 {
		fmt.Fprintf(&buf, "leading pt over %d events: mean %.2f GeV, stddev %.2f GeV\n",
			len(pts), stat.Mean(pts, nil), stat.StdDev(pts, nil))
	}
	return buf.String(), nil
}
