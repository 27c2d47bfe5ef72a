package hist

import (
	"encoding/gob"
	"fmt"
	"math"
)

// Sparse represents a histogram using a Go map.  It counts
// integer-valued observables whose range is not known up front, like
// the muon multiplicity of an event sample.
type Sparse map[int32]int32

func init() {
	gob.Register(Sparse{})
}

func NewSparse() Sparse {
	return make(Sparse)
}

func (s Sparse) Clear() {
	for k := range s {
		delete(s, k)
	}
}

func (s Sparse) Add(o Sparse) {
	for k, v := range o {
		s[k] += v
	}
}

func (s Sparse) Equal(o Sparse) bool {
	if len(s) != len(o) {
		return false
	}
	for k, v := range s {
		if v2, ok := o[k]; !ok || v2 != v {
			return false
		}
	}
	return true
}

func (s Sparse) Len() int {
	return len(s)
}

func (s Sparse) At(bin int) int64 {
	return int64(s[int32(bin)])
}

func (s Sparse) Inc(bin, count int) {
	if count <= 0 {
		panic(fmt.Sprintf("Inc(bin=%d, count=%d): count must > 0",
			bin, count))
	}
	if count > int(math.MaxInt32) {
		panic(fmt.Sprintf("count (%d) larger than MaxInt32", count))
	}
	b := int32(bin)
	if s[b] >= math.MaxInt32-int32(count) {
		panic(fmt.Sprintf("s[%d] = %d overflow", bin, s[b]))
	}
	s[b] += int32(count)
}

func (s Sparse) ForEach(p func(bin int, count int64) error) error {
	for i, v := range s {
		if e := p(int(i), int64(v)); e != nil {
			return e
		}
	}
	return nil
}

func (s Sparse) Clone() Hist {
	n := NewSparse()
	for k, v := range s {
		n[k] = v
	}
	return n
}
