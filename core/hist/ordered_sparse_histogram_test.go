package hist

import (
	"fmt"
	"testing"
)

func TestNewOrderedSparse(t *testing.T) {
	m := NewOrderedSparse()
	if m.Len() != 0 {
		t.Errorf("Expecting m.Len() = 0, got %d", m.Len())
	}
}

func TestOrderedSparseAssign(t *testing.T) {
	o := NewOrderedSparse().Assign(Sparse{})
	str := "[ ]"
	if fmt.Sprint(o) != str {
		t.Errorf("Expected %s, got %v", str, o)
	}

	o = NewOrderedSparse().Assign(Sparse{0: 7, 1: 2, 2: 1, 3: 10})
	str = "[ 3:10 0:7 1:2 2:1 ]"
	if fmt.Sprint(o) != str {
		t.Errorf("Expected %s, got %v", str, o)
	}
}

func TestOrderedSparseAt(t *testing.T) {
	m := NewOrderedSparse().Assign(Sparse{1: 2, 2: 1})
	if m.At(1) != 2 {
		t.Errorf("Expecting m.At(1) = 2, got %d", m.At(1))
	}
	if m.At(2) != 1 {
		t.Errorf("Expecting m.At(2) = 1, got %d", m.At(2))
	}
	if m.At(0) != 0 {
		t.Errorf("Expecting m.At(0) = 0, got %d", m.At(0))
	}
}

func TestOrderedSparseInc(t *testing.T) {
	m := NewOrderedSparse()
	nonzero := 5
	for b := 0; b < nonzero; b++ {
		m.Inc(b, b+1)
		m.Inc(b, b+1) // increase an existing non-zero
	}
	for i := 0; i < nonzero; i++ {
		if m.Bins[i] != int32(nonzero-1-i) {
			t.Errorf("Expecting m.Bins[%d] = %d, got %d",
				i, nonzero-1-i, m.Bins[i])
		}
		if m.Counts[i] != 2*int32(nonzero-i) {
			t.Errorf("Expecting m.Counts[%d] = %d, got %d",
				i, 2*(nonzero-i), m.Counts[i])
		}
	}
}

func TestOrderedSparseClone(t *testing.T) {
	str := "[ 2:8 3:5 1:2 0:1 ]"
	o := NewOrderedSparse().Assign(Sparse{0: 1, 1: 2, 3: 5, 2: 8})
	c := o.Clone()
	if fmt.Sprint(c) != str {
		t.Errorf("Expected %s, got %v", str, c)
	}

	o = NewOrderedSparse()
	c = o.Clone()
	if c.Len() != 0 {
		t.Errorf("Expected %d, got %d", 0, c.Len())
	}
}
