package analysis

import (
	"errors"
	"testing"

	"github.com/CMSDAS/root-close-out/core/frame"
)

func createTestingDataset() *frame.Dataset {
	return frame.NewDataset().
		AddUints("nMuon", []uint32{0, 1, 2}).
		AddFloatVecs("Muon_pt", [][]float32{{10}, {25}, {70, 30}})
}

func TestLeadingMuonPt(t *testing.T) {
	r := LeadingMuonPt(frame.New(createTestingDataset()), 10)
	h, e := r.Value()
	if e != nil {
		t.Fatalf("Unexpected error: %v", e)
	}

	if h.NumBins() != 12 || h.Min != 0 || h.Max != 60 {
		t.Errorf("Expecting 12 bins over [0, 60), got %d over [%f, %f)",
			h.NumBins(), h.Min, h.Max)
	}
	if h.XLabel != "Leading muon pt in GeV" || h.YLabel != "Count" {
		t.Errorf("Unexpected labels %q / %q", h.XLabel, h.YLabel)
	}
	if h.Title != "" {
		t.Errorf("Expecting an empty title, got %q", h.Title)
	}

	// Event 0 is filtered out, event 1 lands in the bin of 25.0, and
	// the leading pt of event 2 overflows.
	if h.Entries() != 2 {
		t.Errorf("Expecting 2 entries, got %d", h.Entries())
	}
	if b := h.FindBin(25); h.At(b) != 1 {
		t.Errorf("Expecting bin of 25.0 = 1, got %d", h.At(b))
	}
	if h.Over != 1 {
		t.Errorf("Expecting overflow = 1, got %d", h.Over)
	}
	if b := h.FindBin(10); h.At(b) != 0 {
		t.Errorf("Muon-less event leaked into bin of 10.0: %d", h.At(b))
	}
}

func TestLeadingMuonPtCap(t *testing.T) {
	h, e := LeadingMuonPt(frame.New(createTestingDataset()), 1).Value()
	if e != nil {
		t.Fatalf("Unexpected error: %v", e)
	}
	if h.Entries() != 1 {
		t.Errorf("Expecting 1 entry, got %d", h.Entries())
	}
	if h.Over != 0 {
		t.Errorf("The overflowing event must be cut by the cap, got %d",
			h.Over)
	}
}

func TestLeadingMuonPtNoEvents(t *testing.T) {
	h, e := LeadingMuonPt(frame.New(createTestingDataset()), 0).Value()
	if e != nil {
		t.Fatalf("Unexpected error: %v", e)
	}
	if h.Entries() != 0 {
		t.Errorf("Expecting an empty histogram, got %d entries", h.Entries())
	}
}

func TestLeadingMuonPtEmptyVector(t *testing.T) {
	ds := frame.NewDataset().
		AddUints("nMuon", []uint32{1}).
		AddFloatVecs("Muon_pt", [][]float32{{}})
	_, e := LeadingMuonPt(frame.New(ds), 10).Value()

	var pe *frame.PreconditionError
	if !errors.As(e, &pe) {
		t.Fatalf("Expecting a PreconditionError, got %v", e)
	}
}

func TestLeadingMuonPtMissingColumn(t *testing.T) {
	ds := frame.NewDataset().AddFloatVecs("Muon_pt", [][]float32{{25}})
	_, e := LeadingMuonPt(frame.New(ds), 10).Value()

	var se *frame.SchemaError
	if !errors.As(e, &se) {
		t.Fatalf("Expecting a SchemaError, got %v", e)
	}
	if se.Column != "nMuon" {
		t.Errorf("Expecting the missing column to be nMuon, got %q", se.Column)
	}
}

func TestLeadingMuonPtIsLazy(t *testing.T) {
	// Booking over a dataset that would fail on evaluation must not
	// fail by itself.
	ds := frame.NewDataset().
		AddUints("nMuon", []uint32{1}).
		AddFloatVecs("Muon_pt", [][]float32{{}})
	r := LeadingMuonPt(frame.New(ds), 10)
	if r == nil {
		t.Fatalf("Expecting a deferred result handle")
	}
	if _, e := r.Value(); e == nil {
		t.Errorf("Expecting the error to surface on Value")
	}
}
