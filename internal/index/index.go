package index

import (
	"iter"

	"github.com/hupe1980/hasharray/keyvalue"
)

// Index maps key values to posting lists of sequence ids.
type Index struct {
	buckets map[keyvalue.Value]*Bitmap
}

// New creates an empty index.
func New() *Index {
	return &Index{
		buckets: make(map[keyvalue.Value]*Bitmap),
	}
}

// Add records id under v, creating the bucket if needed.
// It reports whether id was newly added to the bucket.
func (ix *Index) Add(v keyvalue.Value, id uint32) bool {
	b, ok := ix.buckets[v]
	if !ok {
		b = NewBitmap()
		ix.buckets[v] = b
	}
	return b.CheckedAdd(id)
}

// Remove drops id from the bucket for v and deletes the bucket once empty.
func (ix *Index) Remove(v keyvalue.Value, id uint32) {
	b, ok := ix.buckets[v]
	if !ok {
		return
	}
	b.Remove(id)
	if b.IsEmpty() {
		delete(ix.buckets, v)
	}
}

// Lookup returns the bucket for v. The bitmap is owned by the index and must
// not be modified.
func (ix *Index) Lookup(v keyvalue.Value) (*Bitmap, bool) {
	b, ok := ix.buckets[v]
	return b, ok
}

// Collides reports whether a non-empty bucket exists for v.
func (ix *Index) Collides(v keyvalue.Value) bool {
	b, ok := ix.buckets[v]
	return ok && !b.IsEmpty()
}

// Count returns the number of members in the bucket for v.
func (ix *Index) Count(v keyvalue.Value) int {
	b, ok := ix.buckets[v]
	if !ok {
		return 0
	}
	return b.Cardinality()
}

// Len returns the number of buckets.
func (ix *Index) Len() int {
	return len(ix.buckets)
}

// Keys yields every key value with a non-empty bucket, in no particular order.
func (ix *Index) Keys() iter.Seq[keyvalue.Value] {
	return func(yield func(keyvalue.Value) bool) {
		for v := range ix.buckets {
			if !yield(v) {
				return
			}
		}
	}
}

// Buckets yields every key value with its posting list, in no particular order.
func (ix *Index) Buckets() iter.Seq2[keyvalue.Value, *Bitmap] {
	return func(yield func(keyvalue.Value, *Bitmap) bool) {
		for v, b := range ix.buckets {
			if !yield(v, b) {
				return
			}
		}
	}
}

// Reset removes every bucket.
func (ix *Index) Reset() {
	clear(ix.buckets)
}
