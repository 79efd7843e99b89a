// Package ds provides the data structures the composite codecs operate on.
package ds

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/bdfio/bdf.go/constraints"
	"github.com/bdfio/bdf.go/lo"
)

// TreeMap is a key-ordered associative map backed by a red-black tree.
// Iteration visits entries in ascending key order. It is not safe for
// concurrent use.
type TreeMap[K constraints.Ordered, V any] struct {
	tree *redblacktree.Tree
}

// NewTreeMap creates a new empty TreeMap.
func NewTreeMap[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return &TreeMap[K, V]{
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			return lo.Comparator(a.(K), b.(K))
		}),
	}
}

// Set maps the given key to the given value, overwriting an existing entry.
func (t *TreeMap[K, V]) Set(key K, value V) {
	t.tree.Put(key, value)
}

// Get returns the value mapped to the given key, if present.
func (t *TreeMap[K, V]) Get(key K) (value V, exists bool) {
	v, found := t.tree.Get(key)
	if !found {
		return value, false
	}

	return v.(V), true
}

// Has returns whether an entry with the given key exists.
func (t *TreeMap[K, V]) Has(key K) bool {
	_, found := t.tree.Get(key)

	return found
}

// Delete removes the entry with the given key, if present.
func (t *TreeMap[K, V]) Delete(key K) {
	t.tree.Remove(key)
}

// Size returns the number of entries.
func (t *TreeMap[K, V]) Size() int {
	return t.tree.Size()
}

// Clear removes all entries.
func (t *TreeMap[K, V]) Clear() {
	t.tree.Clear()
}

// Keys returns all keys in ascending order.
func (t *TreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, t.tree.Size())
	it := t.tree.Iterator()
	for it.Next() {
		keys = append(keys, it.Key().(K))
	}

	return keys
}

// ForEach calls the consumer for every entry in ascending key order until
// the consumer returns false. It returns false if the iteration was aborted.
func (t *TreeMap[K, V]) ForEach(consumer func(key K, value V) bool) bool {
	it := t.tree.Iterator()
	for it.Next() {
		if !consumer(it.Key().(K), it.Value().(V)) {
			return false
		}
	}

	return true
}
