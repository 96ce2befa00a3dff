package split

import (
	"github.com/kestrel-geo/overlay2d/segment"
)

// segmentPairMarks tests the two buffered segments at targetIdx and otherIdx for
// intersection and translates the result into the marks the apply step needs: a Pure
// crossing marks both segments at the shared point; a TargetEnd/OtherEnd result marks only
// whichever segment does not already own that point as an endpoint; an Overlay result marks
// whichever endpoints of each segment lie strictly inside the other (spec.md §4.1, §4.2).
func segmentPairMarks(targetIdx, otherIdx int, buf []segment.Segment, snapRadius int64) ([]Mark, bool) {
	target := buf[targetIdx].XSegment
	other := buf[otherIdx].XSegment

	if p, ok := isoAxisIntersect(target, other); ok {
		tOwns := p.Eq(target.A) || p.Eq(target.B)
		oOwns := p.Eq(other.A) || p.Eq(other.B)
		class := segment.Pure
		switch {
		case tOwns && oOwns:
			return nil, false
		case tOwns:
			class = segment.TargetEnd
		case oOwns:
			class = segment.OtherEnd
		}
		return classifyToMarks(targetIdx, otherIdx, target, other, segment.Result{Class: class, Point: p}), false
	}

	result := segment.Intersect(target, other, snapRadius)
	return classifyToMarks(targetIdx, otherIdx, target, other, result), result.IsRound
}

func classifyToMarks(targetIdx, otherIdx int, target, other segment.XSegment, result segment.Result) []Mark {
	switch result.Class {
	case segment.Pure:
		return []Mark{{SegmentIndex: targetIdx, Point: result.Point}, {SegmentIndex: otherIdx, Point: result.Point}}

	case segment.TargetEnd:
		// result.Point is target's own endpoint; only other needs subdividing there.
		return []Mark{{SegmentIndex: otherIdx, Point: result.Point}}

	case segment.OtherEnd:
		// result.Point is other's own endpoint; only target needs subdividing there.
		return []Mark{{SegmentIndex: targetIdx, Point: result.Point}}

	case segment.Overlay:
		var marks []Mark
		if result.OverlayMask&segment.OverlayTargetAInOther != 0 {
			marks = append(marks, Mark{SegmentIndex: otherIdx, Point: target.A})
		}
		if result.OverlayMask&segment.OverlayTargetBInOther != 0 {
			marks = append(marks, Mark{SegmentIndex: otherIdx, Point: target.B})
		}
		if result.OverlayMask&segment.OverlayOtherAInTarget != 0 {
			marks = append(marks, Mark{SegmentIndex: targetIdx, Point: other.A})
		}
		if result.OverlayMask&segment.OverlayOtherBInTarget != 0 {
			marks = append(marks, Mark{SegmentIndex: targetIdx, Point: other.B})
		}
		return marks

	default:
		return nil
	}
}

func yRange(s segment.XSegment) (minY, maxY int32) {
	if s.A.Y() <= s.B.Y() {
		return s.A.Y(), s.B.Y()
	}
	return s.B.Y(), s.A.Y()
}
