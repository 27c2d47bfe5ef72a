package hist

type Hist interface {
	At(bin int) int64
	Inc(bin, count int)
	Len() int

	// ForEach access elements in the histogram one-by-one.  For each
	// element <bin, count>, it calls p(bin, count).  If p returns
	// nil, it goes on to rest elements; otherwise, it stops the
	// traversal and returns the error from p.
	ForEach(p func(bin int, count int64) error) error

	Clone() Hist
}
