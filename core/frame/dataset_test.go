package frame

import (
	"reflect"
	"testing"
)

func TestDatasetSchema(t *testing.T) {
	ds := NewDataset().
		AddUints("nMuon", []uint32{0, 1}).
		AddFloatVecs("Muon_pt", [][]float32{nil, {25}})

	exp := map[string]Kind{"nMuon": Uint, "Muon_pt": FloatVec}
	if !reflect.DeepEqual(ds.Schema(), exp) {
		t.Errorf("Expected %v, got %v", exp, ds.Schema())
	}
	if ds.Len() != 2 {
		t.Errorf("Expected %d rows, got %d", 2, ds.Len())
	}
}

func TestDatasetEmpty(t *testing.T) {
	ds := NewDataset()
	if ds.Len() != 0 {
		t.Errorf("Expected %d rows, got %d", 0, ds.Len())
	}
	if len(ds.Schema()) != 0 {
		t.Errorf("Expected empty schema, got %v", ds.Schema())
	}
}

func TestDatasetRowCountMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expecting a panic on mismatched column lengths")
		}
	}()
	NewDataset().
		AddUints("nMuon", []uint32{0, 1}).
		AddFloats("weight", []float64{1})
}

func TestDatasetDuplicateColumn(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expecting a panic on a duplicated column name")
		}
	}()
	NewDataset().
		AddUints("nMuon", []uint32{1}).
		AddFloats("nMuon", []float64{1})
}

func TestKindString(t *testing.T) {
	for k, exp := range map[Kind]string{
		Uint: "Uint", Float: "Float", FloatVec: "FloatVec", Kind(9): "Kind(9)",
	} {
		if k.String() != exp {
			t.Errorf("Expected %q, got %q", exp, k.String())
		}
	}
}
