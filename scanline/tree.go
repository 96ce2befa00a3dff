package scanline

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// Tree is the order-statistic-tree ScanLine flavour, backed by
// github.com/emirpasic/gods/trees/redblacktree (the library the teacher's
// linesegment/sweepline_statusstructure_rbt.go uses for the same "floor query on an ordered
// sweep key" shape). Entries are boxed through interface{} since gods predates generics; Tree
// restores type safety at its own boundary.
type Tree[K, V any] struct {
	tree *rbt.Tree
	cmp  func(a, b K) int
}

// NewTree constructs an empty Tree ordered by cmp.
func NewTree[K, V any](cmp func(a, b K) int) *Tree[K, V] {
	t := &Tree[K, V]{cmp: cmp}
	t.tree = rbt.NewWith(func(a, b any) int {
		return cmp(a.(K), b.(K))
	})
	return t
}

// Reserve is a no-op: gods' red-black tree has no pre-sizing hook.
func (t *Tree[K, V]) Reserve(int) {}

// Insert adds key/value to the tree, replacing any existing entry at key.
func (t *Tree[K, V]) Insert(key K, value V) {
	t.tree.Put(key, value)
}

// FirstLessOrEqual returns the value stored at the greatest key that is <= key, if any.
func (t *Tree[K, V]) FirstLessOrEqual(key K) (V, bool) {
	node, found := t.tree.Floor(key)
	if !found {
		var zero V
		return zero, false
	}
	return node.Value.(V), true
}

// Clear empties the tree.
func (t *Tree[K, V]) Clear() {
	t.tree.Clear()
}

// Len reports the number of entries currently held.
func (t *Tree[K, V]) Len() int {
	return t.tree.Size()
}
