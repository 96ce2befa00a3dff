package solver

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// parallelSortSerialCutoff bounds the parallel merge sort's recursion: chunks at or below
// this size are sorted serially, keeping the goroutine count proportional to n/cutoff rather
// than to n.
const parallelSortSerialCutoff = 2048

// Sort sorts items in place by cmp. When len(items) meets the Solver's configured
// parallel-sort threshold, it dispatches to a divide-and-conquer parallel merge sort built on
// golang.org/x/sync/errgroup (spec.md §5: "Sorts used elsewhere... may be dispatched to a
// parallel sort backend when the input exceeds a configurable threshold"); otherwise it sorts
// serially with slices.SortFunc.
func Sort[T any](ctx context.Context, items []T, cmp func(a, b T) int, cfg Solver) error {
	if !cfg.ShouldParallelSort(len(items)) {
		slices.SortFunc(items, cmp)
		return nil
	}
	return parallelSort(ctx, items, cmp)
}

func parallelSort[T any](ctx context.Context, items []T, cmp func(a, b T) int) error {
	if len(items) <= parallelSortSerialCutoff {
		slices.SortFunc(items, cmp)
		return nil
	}

	mid := len(items) / 2
	left, right := items[:mid], items[mid:]

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return parallelSort(gctx, left, cmp) })
	g.Go(func() error { return parallelSort(gctx, right, cmp) })
	if err := g.Wait(); err != nil {
		return err
	}

	merged := make([]T, 0, len(items))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	copy(items, merged)
	return nil
}

// Parallel runs each task concurrently via errgroup, returning the first error encountered
// (if any) after all tasks finish. The Fragment driver uses this to fan its per-bin plane
// sweeps out across bins when ShouldParallelizeFragmentSweep is true (spec.md §5).
func Parallel(ctx context.Context, tasks ...func() error) error {
	g, _ := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(task)
	}
	return g.Wait()
}
