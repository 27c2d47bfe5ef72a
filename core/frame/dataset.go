package frame

import (
	"fmt"
)

// Kind enumerates the column types a Dataset can hold.
type Kind int

const (
	Uint     Kind = iota // one uint32 per row
	Float                // one float64 per row
	FloatVec             // a variable-length []float32 per row
)

func (k Kind) String() string {
	switch k {
	case Uint:
		return "Uint"
	case Float:
		return "Float"
	case FloatVec:
		return "FloatVec"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Dataset is a columnar event sample.  All columns have the same
// number of rows.  A Dataset is built once by its owner and then only
// read; pipeline nodes borrow it and never mutate it.
type Dataset struct {
	uints  map[string][]uint32
	floats map[string][]float64
	vecs   map[string][][]float32
	rows   int
	filled bool
}

func NewDataset() *Dataset {
	return &Dataset{
		uints:  make(map[string][]uint32),
		floats: make(map[string][]float64),
		vecs:   make(map[string][][]float32),
	}
}

func (d *Dataset) checkLen(name string, n int) {
	if _, ok := d.Schema()[name]; ok {
		panic(fmt.Sprintf("column %q added twice", name))
	}
	if d.filled && n != d.rows {
		panic(fmt.Sprintf("column %q has %d rows, dataset has %d",
			name, n, d.rows))
	}
	d.rows = n
	d.filled = true
}

func (d *Dataset) AddUints(name string, vals []uint32) *Dataset {
	d.checkLen(name, len(vals))
	d.uints[name] = vals
	return d
}

func (d *Dataset) AddFloats(name string, vals []float64) *Dataset {
	d.checkLen(name, len(vals))
	d.floats[name] = vals
	return d
}

func (d *Dataset) AddFloatVecs(name string, vals [][]float32) *Dataset {
	d.checkLen(name, len(vals))
	d.vecs[name] = vals
	return d
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return d.rows
}

// UintCol returns a Uint column for reading.
func (d *Dataset) UintCol(name string) ([]uint32, bool) {
	c, ok := d.uints[name]
	return c, ok
}

// FloatCol returns a Float column for reading.
func (d *Dataset) FloatCol(name string) ([]float64, bool) {
	c, ok := d.floats[name]
	return c, ok
}

// FloatVecCol returns a FloatVec column for reading.
func (d *Dataset) FloatVecCol(name string) ([][]float32, bool) {
	c, ok := d.vecs[name]
	return c, ok
}

// Schema maps every column name to its Kind.
func (d *Dataset) Schema() map[string]Kind {
	s := make(map[string]Kind)
	for name := range d.uints {
		s[name] = Uint
	}
	for name := range d.floats {
		s[name] = Float
	}
	for name := range d.vecs {
		s[name] = FloatVec
	}
	return s
}
