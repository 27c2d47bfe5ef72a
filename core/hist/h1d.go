package hist

import (
	"encoding/gob"
	"fmt"
)

// H1D is a one-dimensional histogram with fixed equal-width binning
// over the closed-open range [Min, Max).  Values below Min or at or
// above Max are not dropped; they go to the Under and Over
// accumulators, which do not belong to the named bins.
type H1D struct {
	Title  string
	XLabel string
	YLabel string

	Min, Max float64
	Bins     Dense
	Under    int64
	Over     int64
}

func init() {
	gob.Register(&H1D{})
}

func NewH1D(bins int, min, max float64, title, xLabel, yLabel string) *H1D {
	if bins <= 0 {
		panic(fmt.Sprintf("bins (%d) must be positive", bins))
	}
	if min >= max {
		panic(fmt.Sprintf("min (%f) must be less than max (%f)", min, max))
	}
	return &H1D{
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Min:    min,
		Max:    max,
		Bins:   NewDense(bins),
	}
}

func (h *H1D) NumBins() int {
	return h.Bins.Len()
}

// FindBin returns the bin index holding x, which is -1 for values in
// the underflow range and NumBins() for values in the overflow range.
// Bin i covers [Min + i*w, Min + (i+1)*w), where w is the bin width.
func (h *H1D) FindBin(x float64) int {
	if x < h.Min {
		return -1
	}
	if x >= h.Max {
		return h.NumBins()
	}
	w := (h.Max - h.Min) / float64(h.NumBins())
	b := int((x - h.Min) / w)
	if b >= h.NumBins() { // rounding at the upper edge
		b = h.NumBins() - 1
	}
	return b
}

func (h *H1D) Fill(x float64) {
	switch b := h.FindBin(x); {
	case b < 0:
		h.Under++
	case b >= h.NumBins():
		h.Over++
	default:
		h.Bins.Inc(b, 1)
	}
}

func (h *H1D) FillN(xs []float64) {
	for _, x := range xs {
		h.Fill(x)
	}
}

func (h *H1D) At(bin int) int64 {
	return h.Bins.At(bin)
}

// Entries counts all fills, including those accumulated as underflow
// and overflow.
func (h *H1D) Entries() int64 {
	return h.Bins.Total() + h.Under + h.Over
}

// Add merges o into h.  It is used to aggregate partial histograms
// filled by parallel shards, so o must have the identical binning.
func (h *H1D) Add(o *H1D) {
	if h.NumBins() != o.NumBins() || h.Min != o.Min || h.Max != o.Max {
		panic(fmt.Sprintf("Add: binning mismatch: [%d %f %f] vs [%d %f %f]",
			h.NumBins(), h.Min, h.Max, o.NumBins(), o.Min, o.Max))
	}
	for i, v := range o.Bins {
		h.Bins[i] += v
	}
	h.Under += o.Under
	h.Over += o.Over
}

func (h *H1D) Clone() *H1D {
	n := NewH1D(h.NumBins(), h.Min, h.Max, h.Title, h.XLabel, h.YLabel)
	copy(n.Bins, h.Bins)
	n.Under = h.Under
	n.Over = h.Over
	return n
}

// BinEdges returns the lower edge of every bin followed by Max, so
// the result has NumBins()+1 elements.
func (h *H1D) BinEdges() []float64 {
	w := (h.Max - h.Min) / float64(h.NumBins())
	edges := make([]float64, h.NumBins()+1)
	for i := range edges {
		edges[i] = h.Min + float64(i)*w
	}
	edges[h.NumBins()] = h.Max
	return edges
}
