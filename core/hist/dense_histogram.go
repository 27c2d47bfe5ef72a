package hist

import (
	"encoding/gob"
	"fmt"
	"math"
)

// Dense is a plain histogram represented by a count array.  It backs
// the named bins of H1D, where the bin range is fixed and known up
// front.
type Dense []int64

func init() {
	gob.Register(Dense{})
}

func NewDense(bins int) Dense {
	return make(Dense, bins, bins)
}

func (d Dense) At(bin int) int64 {
	return d[bin]
}

func (d Dense) Inc(bin, count int) {
	if count < 0 {
		panic(fmt.Sprintf("count (%d) is negative", count))
	}
	if d[bin] >= math.MaxInt64-int64(count) {
		panic(fmt.Sprintf("d[%d] = %d overflow", bin, d[bin]))
	}
	d[bin] += int64(count)
}

func (d Dense) Len() int {
	return len(d)
}

func (d Dense) Total() int64 {
	var t int64
	for _, v := range d {
		t += v
	}
	return t
}

func (d Dense) ForEach(p func(bin int, count int64) error) error {
	for i, v := range d {
		if e := p(i, int64(v)); e != nil {
			return e
		}
	}
	return nil
}

func (d Dense) Clone() Hist {
	n := NewDense(d.Len())
	copy(n, d)
	return n
}
