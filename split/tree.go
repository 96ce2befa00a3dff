package split

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/kestrel-geo/overlay2d/segment"
)

// treeDriver sweeps buf (sorted by XSegment, i.e. by left endpoint) left to right, maintaining
// an active set in a github.com/emirpasic/gods red-black tree keyed by each active segment's
// own XSegment order. Before each step, expired entries (B.X() behind the sweep) are found by
// a scan over the active keys and dropped, so only the active set, not the whole remaining
// buffer, is tested against each new segment.
//
// This is a simplification of the teacher's statusStructureRBT, which orders active entries by
// their y-position *at the current sweep x* so only neighbours ever need comparing. Re-deriving
// that comparator for arbitrary-slope, not-yet-split segments (rather than the Filler's
// already-split, non-crossing edges) is significantly more machinery than the Splitter needs:
// any two segments still active here can cross, so this driver still tests each newly-entered
// segment against every active one. The tree buys a cheap prune of segments whose x-range has
// passed; it does not buy neighbour-only comparisons the way it does for the Filler. Frag is
// the driver that changes the asymptotics for large batches.
func treeDriver(buf []segment.Segment, snapRadius int64) ([]Mark, bool) {
	var marks []Mark
	anyRound := false

	active := rbt.NewWith(func(a, b any) int {
		return a.(segment.XSegment).Compare(b.(segment.XSegment))
	})

	for i := 0; i < len(buf); i++ {
		x := buf[i].XSegment.A.X()
		expireBefore(active, x)

		iMinY, iMaxY := yRange(buf[i].XSegment)
		for _, key := range active.Keys() {
			v, _ := active.Get(key)
			j := v.(int)
			jMinY, jMaxY := yRange(buf[j].XSegment)
			if jMaxY < iMinY || jMinY > iMaxY {
				continue
			}
			pairMarks, round := segmentPairMarks(i, j, buf, snapRadius)
			if len(pairMarks) > 0 {
				marks = append(marks, pairMarks...)
			}
			anyRound = anyRound || round
		}

		active.Put(buf[i].XSegment, i)
	}

	return dedupMarks(marks), anyRound
}

// expireBefore removes every active entry whose segment ends strictly before x.
func expireBefore(active *rbt.Tree, x int32) {
	var stale []any
	for _, key := range active.Keys() {
		if key.(segment.XSegment).B.X() < x {
			stale = append(stale, key)
		}
	}
	for _, key := range stale {
		active.Remove(key)
	}
}
