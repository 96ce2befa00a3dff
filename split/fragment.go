package split

import (
	"context"
	"math/bits"

	"github.com/kestrel-geo/overlay2d/numeric"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/kestrel-geo/overlay2d/solver"
)

// fragmentTargetBinSize is the rough number of segments a bin should hold before the driver
// adds another doubling to the bin count (spec.md §4.2, §5: grid fragmentation sized so each
// bin's all-pairs pass stays cheap).
const fragmentTargetBinSize = 64

// fragDriver partitions buf into 2^p vertical bins by x, assigns each segment to every bin its
// x-range touches, and runs an all-pairs pass independently within each bin — optionally
// fanning the per-bin passes out via solver.Parallel. This is the driver spec.md §4.2
// recommends once a batch is too large for List or Tree's O(n^2)-ish passes to stay cheap.
//
// A segment that runs exactly along a bin border (vertical, at a bin boundary x) only ever has
// one bin assigned to it by the x-range rule above (loBin==hiBin, since its endpoints share an
// x), so the per-bin pass alone would never compare it against a neighbouring bin's segments
// that touch that same boundary x. fragmentBorderStitch runs a second, narrow pass just for
// this case (spec.md §4.2's "on-border vertical segments... matched against each neighbouring
// bin's x-aligned endpoints"), so this is no longer a gap the snap-radius escalation loop needs
// to paper over: split.Apply returns as soon as a pass reports zero marks, with no guarantee a
// later iteration re-bins and re-checks a pair that produced none.
func fragDriver(ctx context.Context, buf []segment.Segment, snapRadius int64, cfg solver.Solver) ([]Mark, bool) {
	if len(buf) == 0 {
		return nil, false
	}

	minX, maxX := buf[0].XSegment.A.X(), buf[0].XSegment.A.X()
	for _, s := range buf {
		if s.XSegment.A.X() < minX {
			minX = s.XSegment.A.X()
		}
		if s.XSegment.B.X() > maxX {
			maxX = s.XSegment.B.X()
		}
	}

	shift := fragmentBinShift(len(buf))
	binCount := 1 << shift
	bins := make([][]int, binCount)

	width := int64(maxX) - int64(minX) + 1
	for i, s := range buf {
		loBin := binOf(s.XSegment.A.X(), minX, width, shift)
		hiBin := binOf(s.XSegment.B.X(), minX, width, shift)
		for b := loBin; b <= hiBin; b++ {
			bins[b] = append(bins[b], i)
		}
	}

	results := make([][]Mark, binCount)
	rounds := make([]bool, binCount)

	sweepBin := func(b int) func() error {
		return func() error {
			results[b], rounds[b] = fragmentBinSweep(bins[b], buf, snapRadius)
			return nil
		}
	}

	if cfg.ShouldParallelizeFragmentSweep() {
		tasks := make([]func() error, binCount)
		for b := range bins {
			tasks[b] = sweepBin(b)
		}
		// Errors are never produced by fragmentBinSweep; solver.Parallel's context plumbing
		// is kept for API symmetry with the rest of the kernel's parallel entry points.
		_ = solver.Parallel(ctx, tasks...)
	} else {
		for b := range bins {
			_ = sweepBin(b)()
		}
	}

	var marks []Mark
	anyRound := false
	for b := range results {
		marks = append(marks, results[b]...)
		anyRound = anyRound || rounds[b]
	}

	stitchMarks, stitchRound := fragmentBorderStitch(buf, bins, snapRadius)
	marks = append(marks, stitchMarks...)
	anyRound = anyRound || stitchRound

	return dedupMarks(marks), anyRound
}

// fragmentBorderStitch catches the intersections the per-bin pass above structurally cannot:
// a vertical segment sitting exactly on a bin boundary x is assigned to exactly one bin
// (loBin==hiBin, since both endpoints share that x), so it is only ever tested against that
// bin's own segments. For each such segment this pass additionally tests it against the
// segments of its immediate neighbouring bins that have an endpoint at that same boundary x —
// "x-aligned endpoints", per spec.md §4.2 — which is where a neighbour's bin assignment (driven
// by its own x-range, not the border segment's) would otherwise leave the touch undetected.
// Restricting the neighbour-side candidates to x-aligned endpoints (rather than every segment
// in the neighbouring bin) keeps this pass cheap: border-vertical segments are a small fraction
// of a real batch, and each only scans the handful of segments that actually reach its x.
func fragmentBorderStitch(buf []segment.Segment, bins [][]int, snapRadius int64) ([]Mark, bool) {
	var marks []Mark
	anyRound := false
	tested := make(map[[2]int]bool)

	testPair := func(i, j int) {
		if i == j {
			return
		}
		if i > j {
			i, j = j, i
		}
		key := [2]int{i, j}
		if tested[key] {
			return
		}
		tested[key] = true

		pairMarks, round := segmentPairMarks(i, j, buf, snapRadius)
		marks = append(marks, pairMarks...)
		anyRound = anyRound || round
	}

	binCount := len(bins)
	for b, indices := range bins {
		for _, i := range indices {
			s := buf[i].XSegment
			if !s.IsVertical() {
				continue
			}
			x := s.A.X()

			for _, nb := range [2]int{b - 1, b + 1} {
				if nb < 0 || nb >= binCount {
					continue
				}
				for _, j := range bins[nb] {
					other := buf[j].XSegment
					if other.A.X() != x && other.B.X() != x {
						continue
					}
					testPair(i, j)
				}
			}
		}
	}

	return marks, anyRound
}

// fragmentBinSweep runs an all-pairs pass over the segments assigned to one bin, using each
// segment's real y-range (not a per-bin estimate) as the overlap filter: the bin assignment
// already bounds the x side, so the existing yRange check is enough to keep the pass sublinear
// in practice without the added complexity of a per-bin y estimate.
func fragmentBinSweep(indices []int, buf []segment.Segment, snapRadius int64) ([]Mark, bool) {
	var marks []Mark
	anyRound := false

	for a := 0; a < len(indices); a++ {
		i := indices[a]
		iMinY, iMaxY := yRange(buf[i].XSegment)
		for b := a + 1; b < len(indices); b++ {
			j := indices[b]
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

	return marks, anyRound
}

// fragmentBinShift picks the bin-count exponent p so that 2^p * fragmentTargetBinSize is at
// least n, keeping each bin's expected occupancy near the target.
func fragmentBinShift(n int) uint {
	target := n / fragmentTargetBinSize
	if target < 1 {
		return 0
	}
	return uint(bits.Len(uint(target)))
}

// binOf maps an x coordinate to its bin index via a 128-bit round-half-up proportional
// estimate: bin = floor-ish((x-minX) * binCount / width), computed exactly rather than with
// floating point (spec.md's "no floating point in the kernel" Non-goal extends to this
// placement arithmetic, not just the intersection kernel).
func binOf(x, minX int32, width int64, shift uint) int {
	dx := int64(x) - int64(minX)
	hi, lo := numeric.Mul128(dx, int64(1)<<shift)
	bin := int(numeric.DivRoundHalfUp128(hi, lo, width))
	maxBin := (1 << shift) - 1
	if bin > maxBin {
		bin = maxBin
	}
	if bin < 0 {
		bin = 0
	}
	return bin
}
