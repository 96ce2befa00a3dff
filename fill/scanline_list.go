package fill

import (
	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
)

// listScanLine is the Filler's list-backed scan-line flavour: active entries kept in a plain
// slice, queried by linear scan: cheap inserts, O(n) queries, fine when sweep depth stays
// small (spec.md §4.3).
type listScanLine struct {
	active []entry
}

func newListScanLine() *listScanLine {
	return &listScanLine{}
}

// expire drops entries whose segment has fully passed x, the lazy eviction spec.md §4.3 calls
// for ("expired entries... are lazily evicted on each query/insert").
func (l *listScanLine) expire(x int32) {
	kept := l.active[:0]
	for _, e := range l.active {
		if e.xseg.B.X() >= x {
			kept = append(kept, e)
		}
	}
	l.active = kept
}

func (l *listScanLine) queryBelow(p point.Point[int32]) (segment.ShapeCount, bool) {
	l.expire(p.X())

	best := -1
	var bestY int64
	for i, e := range l.active {
		if p.X() < e.xseg.A.X() || p.X() > e.xseg.B.X() {
			continue
		}
		y := yAtX(e.xseg, p.X())
		if y >= int64(p.Y()) {
			continue
		}
		if best == -1 || y > bestY {
			best, bestY = i, y
		}
	}
	if best == -1 {
		return segment.ShapeCount{}, false
	}
	return l.active[best].bot, true
}

func (l *listScanLine) insert(xseg segment.XSegment, bot segment.ShapeCount) {
	l.active = append(l.active, entry{xseg: xseg, bot: bot})
}
