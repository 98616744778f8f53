// Package core: adjacency index sets.
//
// Both derived adjacency indexes (edgesFrom, edgesBetween) store their
// edge-index buckets as 32-bit roaring bitmaps. Edge indexes are dense
// and start at zero, which is exactly the shape roaring compresses
// well, and bitmap clones make graph views cheap.

package core

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// indexSet is an unordered set of edge indexes backed by a roaring
// bitmap. The zero value is not usable; create with newIndexSet.
type indexSet struct {
	rb *roaring.Bitmap
}

// newIndexSet creates an empty set.
func newIndexSet() *indexSet {
	return &indexSet{rb: roaring.New()}
}

// add inserts ei into the set.
func (s *indexSet) add(ei EdgeIndex) {
	s.rb.Add(uint32(ei))
}

// len returns the set's cardinality.
func (s *indexSet) len() int {
	return int(s.rb.GetCardinality())
}

// clone returns a deep copy of the set.
func (s *indexSet) clone() *indexSet {
	return &indexSet{rb: s.rb.Clone()}
}

// all returns a restartable iterator over the set's edge indexes.
// Each range restarts the underlying bitmap iterator, so the sequence
// may be consumed any number of times. Order is unspecified.
func (s *indexSet) all() iter.Seq[EdgeIndex] {
	return func(yield func(EdgeIndex) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(EdgeIndex(it.Next())) {
				return
			}
		}
	}
}

// emptySeq is the sequence returned for vertices and vertex pairs with
// no adjacency bucket yet: yields nothing, restartable.
func emptySeq[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}
