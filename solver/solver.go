// Package solver configures the arrangement kernel's per-call execution strategy: which
// Splitter/Filler driver to use, how aggressively the snap radius escalates, and whether the
// Fragment driver's per-bin sweeps and the kernel's internal sorts run in parallel.
//
// Solver follows the same functional-options shape as package options, scaled up to a small
// struct with named presets instead of a single epsilon.
package solver

import "fmt"

// Strategy selects which Splitter/Filler driver handles a call (spec.md §4.2).
type Strategy uint8

const (
	// Auto picks List, Tree, or Frag based on input size (see Solver.Strategy).
	Auto Strategy = iota

	// List is the insertion-ordered scan suitable for small inputs (roughly under 4,000
	// segments).
	List

	// Tree is the order-statistic-tree driver suitable for medium inputs.
	Tree

	// Frag is the grid-fragmentation driver suitable for large inputs (roughly over 16,000
	// segments), with optional per-bin parallelism.
	Frag
)

func (s Strategy) String() string {
	switch s {
	case Auto:
		return "Auto"
	case List:
		return "List"
	case Tree:
		return "Tree"
	case Frag:
		return "Frag"
	default:
		panic(fmt.Errorf("solver: unsupported Strategy: %d", s))
	}
}

// Precision selects the Splitter's snap-radius schedule: the radius starts at 2^Start and is
// multiplied by 2^Progression on each iteration that required rounding (spec.md §4.2).
type Precision struct {
	Start       uint
	Progression uint
}

// Precision presets, graduated from tightest to loosest snap-radius growth.
var (
	// Absolute never grows the radius past 2^0 = 1.
	Absolute = Precision{Start: 0, Progression: 0}

	// High starts at 2^0 = 1 and doubles each iteration.
	High = Precision{Start: 0, Progression: 1}

	// Medium starts at 2^0 = 1 and quadruples each iteration.
	Medium = Precision{Start: 0, Progression: 2}

	// Low starts at 2^2 = 4 and grows by a factor of 8 each iteration.
	Low = Precision{Start: 2, Progression: 3}
)

// maxSnapShift clamps the snap radius exponent at 2^60 (spec.md §4.2).
const maxSnapShift = 60

// Radius returns the snap radius (a squared-distance threshold) for the given zero-based
// iteration of the Splitter loop.
func (p Precision) Radius(iteration uint) int64 {
	shift := p.Start + p.Progression*iteration
	if shift > maxSnapShift {
		shift = maxSnapShift
	}
	return int64(1) << shift
}

// MaxIterations returns the number of Splitter iterations guaranteed to reach the clamp,
// bounding the snap-radius escalation loop (spec.md §7: "bounded by (60 - start) /
// progression + 1").
func (p Precision) MaxIterations() int {
	if p.Progression == 0 {
		return 1
	}
	return int((maxSnapShift-p.Start)/p.Progression) + 1
}

// Multithreading configures the kernel's optional internal parallelism.
type Multithreading struct {
	// ParallelSortMinSize is the element-count threshold at or above which buffer sorts (segment
	// buffer, ends buffer, marks) are dispatched to the parallel sort backend rather than
	// sorted serially (spec.md §5, default ≈32,768).
	ParallelSortMinSize int

	// ParallelFragmentSweep enables the Fragment driver to run each bin's plane sweep
	// concurrently (spec.md §5).
	ParallelFragmentSweep bool
}

// DefaultParallelSortMinSize is the threshold spec.md §5 documents as the default.
const DefaultParallelSortMinSize = 32768

// size thresholds for Auto strategy selection (spec.md §4.2: "list up to ≈4,000 segments;
// fragmentation preferred beyond ≈16,000").
const (
	autoMaxListCount     = 4000
	autoMinFragmentCount = 16000
)

// Solver is the per-call configuration object threaded through the Splitter and Filler.
type Solver struct {
	Strategy       Strategy
	Precision      Precision
	Multithreading *Multithreading

	// OutputScale is a coordinate scale factor carried on the Solver, separate from the
	// snap-radius preset above; zero (the default) means no scaling. It is stored only: neither
	// the kernel nor the root package's entry points read it, and no coordinates are multiplied
	// or divided by it. Grounded on iOverlay's bind/solver.rs precision preset.
	OutputScale float64
}

// Option configures a Solver, matching the functional-options shape of package options.
type Option func(*Solver)

// WithStrategy overrides the driver-selection strategy.
func WithStrategy(s Strategy) Option {
	return func(cfg *Solver) { cfg.Strategy = s }
}

// WithPrecision overrides the snap-radius schedule.
func WithPrecision(p Precision) Option {
	return func(cfg *Solver) { cfg.Precision = p }
}

// WithMultithreading enables internal parallelism with the given configuration. Passing a nil
// Multithreading disables it.
func WithMultithreading(m *Multithreading) Option {
	return func(cfg *Solver) { cfg.Multithreading = m }
}

// WithOutputScale sets the Solver's OutputScale.
func WithOutputScale(scale float64) Option {
	return func(cfg *Solver) { cfg.OutputScale = scale }
}

// New builds a Solver from the given options, defaulting to Auto strategy, High precision,
// and multithreading enabled at the default parallel-sort threshold — the same defaults
// every named preset below starts from.
func New(opts ...Option) Solver {
	cfg := Solver{
		Strategy:  Auto,
		Precision: High,
		Multithreading: &Multithreading{
			ParallelSortMinSize: DefaultParallelSortMinSize,
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ResolveStrategy picks the concrete driver Auto should use for a batch of the given size.
func (s Solver) ResolveStrategy(segmentCount int) Strategy {
	switch s.Strategy {
	case List, Tree, Frag:
		return s.Strategy
	default:
		switch {
		case segmentCount > autoMinFragmentCount:
			return Frag
		case segmentCount < autoMaxListCount:
			return List
		default:
			return Tree
		}
	}
}

// ShouldParallelSort reports whether a sort of n elements should use the parallel backend.
func (s Solver) ShouldParallelSort(n int) bool {
	return s.Multithreading != nil && n >= s.Multithreading.ParallelSortMinSize
}

// ShouldParallelizeFragmentSweep reports whether the Fragment driver should run its per-bin
// sweeps concurrently.
func (s Solver) ShouldParallelizeFragmentSweep() bool {
	return s.Multithreading != nil && s.Multithreading.ParallelFragmentSweep
}
