package hist

import (
	"fmt"
	"math"
	"sort"
)

// OrderedSparse represents a histogram using two arrays, Bins and
// Counts, where Counts is in descending order.  This property makes
// it the natural form for reporting, e.g., the most frequent muon
// multiplicities of an event sample first.
type OrderedSparse struct {
	Bins   []int32
	Counts []int32
}

func NewOrderedSparse() *OrderedSparse {
	return &OrderedSparse{nil, nil}
}

// Len makes OrderedSparse compatible with sort.Interface.
func (o *OrderedSparse) Len() int {
	return len(o.Bins)
}

// Less allows package sort to sort elements in OrderedSparse
// descreasing order.
func (o *OrderedSparse) Less(i, j int) bool {
	return o.Counts[i] > o.Counts[j] ||
		(o.Counts[i] == o.Counts[j] &&
			o.Bins[i] < o.Bins[j])
}

// Swap makes OrderedSparse compatible with interface sort.Interface.
func (o *OrderedSparse) Swap(i, j int) {
	o.Bins[i], o.Bins[j] = o.Bins[j], o.Bins[i]
	o.Counts[i], o.Counts[j] = o.Counts[j], o.Counts[i]
}

// Assign clears and recreates an OrderedSparse variable, and makes it
// represents s.
func (o *OrderedSparse) Assign(s Hist) *OrderedSparse {
	o.Bins = make([]int32, 0, s.Len())
	o.Counts = make([]int32, 0, s.Len())
	s.ForEach(func(bin int, count int64) error {
		o.Bins = append(o.Bins, int32(bin))
		o.Counts = append(o.Counts, int32(count))
		return nil
	})
	sort.Sort(o)
	return o
}

// String prints an OrderedSparse variable the same format as a slice.
func (o OrderedSparse) String() string {
	out := "[ "
	for i, bin := range o.Bins {
		out += fmt.Sprintf("%d:%d ", bin, o.Counts[i])
	}
	out += "]"
	return out
}

// At returns the count of a bin.
func (o OrderedSparse) At(bin int) int64 {
	for i := range o.Bins {
		if int(o.Bins[i]) == bin {
			return int64(o.Counts[i])
		}
	}
	return 0
}

// Inc increases the count of a bin.  It reallocates
// OrderedSparse.Bins and OrderedSparse.Counts if necessary.
func (o *OrderedSparse) Inc(bin, count int) {
	if bin < 0 {
		panic(fmt.Sprintf("bin (%d) < 0", bin))
	}
	if count <= 0 {
		panic(fmt.Sprintf("count (%d) <= 0", count))
	}
	if count > int(math.MaxInt32) {
		panic(fmt.Sprintf("count (%d) larger than MaxInt32", count))
	}

	// Increase an existing non-zero or append one.
	b := int32(bin)
	c := int32(count)
	var i int = 0
	for i < len(o.Bins) && o.Bins[i] != b {
		i++
	}
	if i < len(o.Bins) { // found
		if o.Counts[i] >= math.MaxInt32-c {
			panic(fmt.Sprintf("o[%d] = %d overflow", i, o.Counts[i]))
		}
		o.Counts[i] += c
	} else {
		o.Bins = append(o.Bins, b)
		o.Counts = append(o.Counts, c)
	}

	// Ensures that non-zeros are sorted in descending order.
	c = o.Counts[i]
	for i > 0 && c > o.Counts[i-1] {
		o.Bins[i], o.Counts[i] = o.Bins[i-1], o.Counts[i-1]
		i--
	}
	o.Bins[i] = b
	o.Counts[i] = c
}

func (o *OrderedSparse) ForEach(p func(bin int, count int64) error) error {
	for i := range o.Bins {
		if e := p(int(o.Bins[i]), int64(o.Counts[i])); e != nil {
			return e
		}
	}
	return nil
}

func (o *OrderedSparse) Clone() Hist {
	n := NewOrderedSparse()
	n.Bins = make([]int32, len(o.Bins))
	n.Counts = make([]int32, len(o.Counts))
	copy(n.Bins, o.Bins)
	copy(n.Counts, o.Counts)
	return n
}
