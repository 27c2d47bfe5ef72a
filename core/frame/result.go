package frame

import (
	"sync"

	"github.com/CMSDAS/root-close-out/core/hist"
)

// Result is the deferred handle to a booked histogram.  Booking a
// Result performs no work; Value runs the pipeline exactly once and
// caches both the histogram and any error for later calls.
type Result struct {
	node *Node
	def  HistDef
	col  string

	once sync.Once
	h    *hist.H1D
	err  error
}

// Value forces the evaluation.  On the first call it scans the
// dataset through the recorded stages and fills the histogram; every
// later call returns the cached outcome.
func (r *Result) Value() (*hist.H1D, error) {
	r.once.Do(func() {
		if r.err != nil {
			return
		}
		r.h, r.err = run(r.node, r.def, r.col)
	})
	return r.h, r.err
}
