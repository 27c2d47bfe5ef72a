// Package frame provides a lazy, declarative pipeline over columnar
// event datasets.  Chaining Filter, Define and Range onto a Node only
// records the computation; nothing runs until the Result booked by
// Histo1D is forced.  A chain never mutates the dataset or the nodes
// it derives from.
package frame

import (
	"fmt"
)

// FilterFn decides whether a row survives a FilterUint stage.
type FilterFn func(n uint32) bool

// DefineFn computes a derived per-row value from a vector column.
// Returning a non-nil error aborts the whole evaluation; the error is
// reported as a PreconditionError naming the column and row.
type DefineFn func(vals []float32) (float64, error)

// Leading is the DefineFn extracting the first element of a vector
// column.  It reports ErrEmptyVec instead of indexing out of bounds.
func Leading(vals []float32) (float64, error) {
	if len(vals) == 0 {
		return 0, ErrEmptyVec
	}
	return float64(vals[0]), nil
}

type filterStage struct {
	col  string
	pred FilterFn
}

type defineStage struct {
	name string
	col  string
	fn   DefineFn
}

type rangeStage struct {
	cap uint
}

// Node is one link of a lazily-built pipeline.  Each chaining call
// returns a new Node; the receiver stays usable for booking other
// branches over the same upstream stages.
type Node struct {
	ds     *Dataset
	prev   *Node
	stage  interface{} // filterStage, defineStage or rangeStage; nil at the root
	schema map[string]Kind
	shards int
	err    error // first chaining error, surfaced when a result is forced
}

// New roots a pipeline on a dataset.
func New(ds *Dataset) *Node {
	if ds == nil {
		panic("frame.New called with a nil dataset")
	}
	return &Node{ds: ds, schema: ds.Schema(), shards: 1}
}

func (n *Node) derive(stage interface{}) *Node {
	return &Node{
		ds:     n.ds,
		prev:   n,
		stage:  stage,
		schema: n.schema,
		shards: n.shards,
		err:    n.err,
	}
}

func (n *Node) check(col string, want Kind) error {
	got, ok := n.schema[col]
	if !ok {
		return &SchemaError{Column: col, Want: want, Missing: true}
	}
	if got != want {
		return &SchemaError{Column: col, Want: want, Got: got}
	}
	return nil
}

// Parallel declares that results booked downstream may be evaluated
// with up to shards parallel shards.  Pipelines containing a Range
// stage are evaluated sequentially regardless, because the row cap
// counts surviving rows in row order.
func (n *Node) Parallel(shards int) *Node {
	if shards < 1 {
		panic(fmt.Sprintf("shards (%d) must be positive", shards))
	}
	d := n.derive(nil)
	d.shards = shards
	return d
}

// FilterUint keeps only rows for which pred holds on the named uint
// column.  Dropped rows are invisible to every downstream stage.
func (n *Node) FilterUint(col string, pred FilterFn) *Node {
	d := n.derive(filterStage{col: col, pred: pred})
	if d.err == nil {
		d.err = n.check(col, Uint)
	}
	return d
}

// Define adds a derived Float column computed per surviving row from
// a vector column.  The column exists only on the returned node and
// its descendants, never on the dataset.
func (n *Node) Define(name, col string, fn DefineFn) *Node {
	d := n.derive(defineStage{name: name, col: col, fn: fn})
	if d.err == nil {
		d.err = n.check(col, FloatVec)
	}
	if d.err == nil {
		if _, ok := n.schema[name]; ok {
			d.err = fmt.Errorf("Define %q: column already exists", name)
		}
	}
	d.schema = make(map[string]Kind, len(n.schema)+1)
	for k, v := range n.schema {
		d.schema[k] = v
	}
	d.schema[name] = Float
	return d
}

// Range caps the number of rows flowing past this point at cap,
// counted among the rows that survived all upstream stages.  A cap of
// zero admits no rows at all.
func (n *Node) Range(cap uint) *Node {
	return n.derive(rangeStage{cap: cap})
}

// HistDef describes the booking of a one-dimensional histogram.
type HistDef struct {
	Title  string
	XLabel string
	YLabel string
	Bins   int
	Min    float64
	Max    float64
}

// Histo1D books a histogram of the named Float column over the rows
// reaching this node.  Booking is free of side effects; the returned
// Result computes and caches the histogram on first use.
func (n *Node) Histo1D(def HistDef, col string) *Result {
	err := n.err
	if err == nil {
		err = n.check(col, Float)
	}
	return &Result{node: n, def: def, col: col, err: err}
}

// stages returns the chain from the root to n in execution order.
func (n *Node) stages() []interface{} {
	var rev []interface{}
	for p := n; p != nil; p = p.prev {
		if p.stage != nil {
			rev = append(rev, p.stage)
		}
	}
	ss := make([]interface{}, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		ss = append(ss, rev[i])
	}
	return ss
}
