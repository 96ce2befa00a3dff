package fill

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
)

// treeScanLine is the Filler's order-statistic-tree scan-line flavour, backed directly by
// github.com/emirpasic/gods's red-black tree (the same library split/tree.go's treeDriver
// uses). Its comparator recomputes each entry's y-at-sweep-x on every comparison against a
// shared mutable sweep point, mirroring the teacher's statusStructureComparator pattern of a
// closure-captured pointer that tracks the sweep's current position
// (sweepline_statusstructure_rbt.go), adapted here to the integer yAtX estimate instead of the
// teacher's float XAtY.
type treeScanLine struct {
	tree  *rbt.Tree
	sweep point.Point[int32]
}

func newTreeScanLine() *treeScanLine {
	s := &treeScanLine{}
	s.tree = rbt.NewWith(func(a, b any) int {
		ea, eb := a.(entry), b.(entry)
		ya, yb := yAtX(ea.xseg, s.sweep.X()), yAtX(eb.xseg, s.sweep.X())
		if ya != yb {
			if ya < yb {
				return -1
			}
			return 1
		}
		return ea.xseg.Compare(eb.xseg)
	})
	return s
}

func (s *treeScanLine) expire(x int32) {
	var stale []any
	for _, k := range s.tree.Keys() {
		if k.(entry).xseg.B.X() < x {
			stale = append(stale, k)
		}
	}
	for _, k := range stale {
		s.tree.Remove(k)
	}
}

func (s *treeScanLine) queryBelow(p point.Point[int32]) (segment.ShapeCount, bool) {
	s.sweep = p
	s.expire(p.X())

	// A zero-count, zero-width-in-y dummy key: its own yAtX against s.sweep is just p.Y(), so
	// Floor finds the real entry whose yAtX is the greatest one still <= p.Y().
	query := entry{xseg: segment.XSegment{A: p, B: point.New(p.X()+1, p.Y())}}
	floor, found := s.tree.Floor(query)
	if !found {
		return segment.ShapeCount{}, false
	}

	e := floor.Key.(entry)
	if yAtX(e.xseg, p.X()) >= int64(p.Y()) {
		return segment.ShapeCount{}, false
	}
	return e.bot, true
}

func (s *treeScanLine) insert(xseg segment.XSegment, bot segment.ShapeCount) {
	s.sweep = xseg.A
	s.tree.Put(entry{xseg: xseg, bot: bot}, nil)
}
