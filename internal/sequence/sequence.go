package sequence

import (
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/hasharray/keyvalue"
)

// Entry is one item in the sequence together with the key values it is
// indexed under.
type Entry[T comparable] struct {
	ID   uint32
	Item T
	Keys []keyvalue.Value
}

// HasKey reports whether the entry is indexed under v.
func (e *Entry[T]) HasKey(v keyvalue.Value) bool {
	for _, k := range e.Keys {
		if k == v {
			return true
		}
	}
	return false
}

// Sequence is an insertion-ordered, duplicate-free list of items.
type Sequence[T comparable] struct {
	entries map[uint32]*Entry[T]
	ids     map[T]uint32
	live    *roaring.Bitmap
	next    uint64
	maxID   uint32
}

// New creates an empty sequence.
func New[T comparable]() *Sequence[T] {
	return &Sequence[T]{
		entries: make(map[uint32]*Entry[T]),
		ids:     make(map[T]uint32),
		live:    roaring.New(),
		maxID:   math.MaxUint32,
	}
}

// SetLimit lowers the last assignable id.
func (s *Sequence[T]) SetLimit(maxID uint32) {
	s.maxID = maxID
}

// Len returns the number of items.
func (s *Sequence[T]) Len() int {
	return len(s.entries)
}

// Contains reports whether item is in the sequence.
func (s *Sequence[T]) Contains(item T) bool {
	_, ok := s.ids[item]
	return ok
}

// Lookup returns the entry for item.
func (s *Sequence[T]) Lookup(item T) (*Entry[T], bool) {
	id, ok := s.ids[item]
	if !ok {
		return nil, false
	}
	return s.entries[id], true
}

// Get returns the entry with the given id.
func (s *Sequence[T]) Get(id uint32) (*Entry[T], bool) {
	e, ok := s.entries[id]
	return e, ok
}

// Exhausted reports whether Append needs a Renumber first. It stays true
// after Renumber when every id is live.
func (s *Sequence[T]) Exhausted() bool {
	return s.next > uint64(s.maxID)
}

// Append adds item at the end of the sequence.
//
// If item is already present its existing entry is returned with false.
// When the id space is exhausted nothing is added and the entry is nil.
func (s *Sequence[T]) Append(item T, keys []keyvalue.Value) (*Entry[T], bool) {
	if id, ok := s.ids[item]; ok {
		return s.entries[id], false
	}
	if s.Exhausted() {
		return nil, false
	}

	id := uint32(s.next)
	s.next++

	e := &Entry[T]{ID: id, Item: item, Keys: keys}
	s.entries[id] = e
	s.ids[item] = id
	s.live.Add(id)
	return e, true
}

// Remove deletes item and returns its entry.
func (s *Sequence[T]) Remove(item T) (*Entry[T], bool) {
	id, ok := s.ids[item]
	if !ok {
		return nil, false
	}
	e := s.entries[id]
	delete(s.entries, id)
	delete(s.ids, item)
	s.live.Remove(id)
	return e, true
}

// Entries yields the live entries in insertion order.
func (s *Sequence[T]) Entries() iter.Seq[*Entry[T]] {
	return func(yield func(*Entry[T]) bool) {
		it := s.live.Iterator()
		for it.HasNext() {
			if !yield(s.entries[it.Next()]) {
				return
			}
		}
	}
}

// Items yields the live items in insertion order.
func (s *Sequence[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range s.Entries() {
			if !yield(e.Item) {
				return
			}
		}
	}
}

// Slice returns a copy of the items in insertion order.
func (s *Sequence[T]) Slice() []T {
	out := make([]T, 0, len(s.entries))
	for item := range s.Items() {
		out = append(out, item)
	}
	return out
}

// At returns the i-th item in insertion order.
func (s *Sequence[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(s.entries) {
		return zero, false
	}
	id, err := s.live.Select(uint32(i))
	if err != nil {
		return zero, false
	}
	return s.entries[id].Item, true
}

// Renumber reassigns ids 0..n-1 to the live entries, keeping their order.
func (s *Sequence[T]) Renumber() {
	entries := make(map[uint32]*Entry[T], len(s.entries))
	live := roaring.New()

	var next uint32
	for e := range s.Entries() {
		e.ID = next
		entries[next] = e
		s.ids[e.Item] = next
		live.Add(next)
		next++
	}

	s.entries = entries
	s.live = live
	s.next = uint64(next)
}

// Reset removes every item.
func (s *Sequence[T]) Reset() {
	clear(s.entries)
	clear(s.ids)
	s.live.Clear()
	s.next = 0
}
