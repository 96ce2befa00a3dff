package split

import "github.com/kestrel-geo/overlay2d/segment"

// listDriver is the simplest Splitter pass: an O(n^2) all-pairs sweep over the current buffer,
// skipping pairs whose y-ranges can't possibly overlap. It is the correct choice for small
// batches (solver.Strategy Auto picks it below a segment-count threshold) and the baseline the
// other two drivers are checked against.
func listDriver(buf []segment.Segment, snapRadius int64) ([]Mark, bool) {
	var marks []Mark
	anyRound := false

	for i := 0; i < len(buf); i++ {
		iMinY, iMaxY := yRange(buf[i].XSegment)
		for j := i + 1; j < len(buf); j++ {
			if buf[j].XSegment.A.X() > buf[i].XSegment.B.X() {
				break
			}
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
	}

	return dedupMarks(marks), anyRound
}
