package frame

import (
	"github.com/wangkuiyi/parallel"

	"github.com/CMSDAS/root-close-out/core/hist"
)

func newHist(def HistDef) *hist.H1D {
	return hist.NewH1D(def.Bins, def.Min, def.Max,
		def.Title, def.XLabel, def.YLabel)
}

// run interprets the stage chain over the dataset.  Without a Range
// stage the rows are strided across shards, each shard filling its
// own partial histogram, and the partials are merged afterwards.
// With a Range stage the scan is sequential, as the cap counts
// surviving rows in row order and stops the scan early.
func run(n *Node, def HistDef, col string) (*hist.H1D, error) {
	ss := n.stages()

	shards := n.shards
	for _, s := range ss {
		if _, ok := s.(rangeStage); ok {
			shards = 1
		}
	}
	if shards > n.ds.Len() {
		shards = n.ds.Len()
	}

	if shards <= 1 {
		h := newHist(def)
		if e := fillRows(n.ds, ss, col, 0, 1, h); e != nil {
			return nil, e
		}
		return h, nil
	}

	partials := make([]*hist.H1D, shards)
	if e := parallel.For(0, shards, 1, func(i int) error {
		partials[i] = newHist(def)
		return fillRows(n.ds, ss, col, i, shards, partials[i])
	}); e != nil {
		return nil, e
	}

	h := partials[0]
	for _, p := range partials[1:] {
		h.Add(p)
	}
	return h, nil
}

// fillRows scans rows start, start+stride, ... through the stages and
// fills surviving values of col into h.
func fillRows(ds *Dataset, ss []interface{}, col string,
	start, stride int, h *hist.H1D) error {

	left := make([]uint, len(ss))
	for i, s := range ss {
		if rs, ok := s.(rangeStage); ok {
			left[i] = rs.cap
		}
	}

	derived := make(map[string]float64)
	var pending []defineStage
Rows:
	for i := start; i < ds.Len(); i += stride {
		// Defines are lazy: they are collected while the row passes
		// the filters and caps, and evaluated only once the row is
		// known to reach the fill.  A row cut by the cap is never
		// derived, so its vector columns are never read.
		pending = pending[:0]
		for si, s := range ss {
			switch s := s.(type) {
			case filterStage:
				if !s.pred(ds.uints[s.col][i]) {
					continue Rows
				}
			case defineStage:
				pending = append(pending, s)
			case rangeStage:
				if left[si] == 0 {
					// The cap is exhausted; no later row can pass it.
					return nil
				}
				left[si]--
			}
		}
		for k := range derived {
			delete(derived, k)
		}
		for _, s := range pending {
			v, e := s.fn(ds.vecs[s.col][i])
			if e != nil {
				return &PreconditionError{Column: s.col, Row: i, Err: e}
			}
			derived[s.name] = v
		}
		if v, ok := derived[col]; ok {
			h.Fill(v)
		} else {
			h.Fill(ds.floats[col][i])
		}
	}
	return nil
}
