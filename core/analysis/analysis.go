// Package analysis books the physics pipelines of this repository
// over lazy dataframe handles.  Booking a pipeline only records the
// computation; the caller forces the returned result when the
// histogram is wanted.
package analysis

import (
	"github.com/CMSDAS/root-close-out/core/frame"
)

// LeadingMuonPt books a histogram of the leading muon transverse
// momentum over at most nevents events with at least one muon.  The
// cap counts events after the filter, and a cap of zero books an
// empty histogram.  The call itself runs nothing and has no side
// effects; force the result to fill the histogram.
func LeadingMuonPt(df *frame.Node, nevents uint) *frame.Result {
	return df.
		FilterUint("nMuon", func(n uint32) bool { return n > 0 }).
		Define("pt", "Muon_pt", frame.Leading).
		Range(nevents).
		Histo1D(frame.HistDef{
			XLabel: "Leading muon pt in GeV",
			YLabel: "Count",
			Bins:   12,
			Min:    0,
			Max:    60,
		}, "pt")
}
