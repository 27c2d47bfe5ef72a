package utils

import (
	"strings"
	"testing"

	"github.com/CMSDAS/root-close-out/core/frame"
)

func TestDescribeEvents(t *testing.T) {
	ds := frame.NewDataset().
		AddUints("nMuon", []uint32{0, 1, 1, 2}).
		AddFloatVecs("Muon_pt", [][]float32{{}, {20}, {40}, {70, 30}})

	d, e := DescribeEvents(ds)
	if e != nil {
		t.Fatalf("DescribeEvents: %v", e)
	}
	if !strings.Contains(d, "4 events") {
		t.Errorf("Expecting the event count in %q", d)
	}
	// Multiplicity 1 occurs twice and must come first.
	if !strings.Contains(d, "[ 1:2 ") {
		t.Errorf("Expecting multiplicity 1 first in %q", d)
	}
	// Leading pts are 20, 40 and 70.
	if !strings.Contains(d, "mean 43.33") {
		t.Errorf("Expecting the mean leading pt in %q", d)
	}
}

func TestDescribeEventsMissingColumns(t *testing.T) {
	if _, e := DescribeEvents(frame.NewDataset()); e == nil {
		t.Errorf("Expecting an error but got none")
	}
}
