package index

import (
	"iter"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a 32-bit Roaring Bitmap of sequence ids.
type Bitmap struct {
	rb *roaring.Bitmap
}

// bitmapPool is a sync.Pool for reusing scratch bitmaps.
var bitmapPool = sync.Pool{
	New: func() any {
		return &Bitmap{
			rb: roaring.New(),
		}
	},
}

// NewBitmap creates a new empty bitmap.
func NewBitmap() *Bitmap {
	return &Bitmap{
		rb: roaring.New(),
	}
}

// GetBitmap gets a scratch bitmap from the pool. Call PutBitmap when done.
func GetBitmap() *Bitmap {
	b := bitmapPool.Get().(*Bitmap)
	b.rb.Clear()
	return b
}

// PutBitmap returns a bitmap to the pool.
func PutBitmap(b *Bitmap) {
	if b == nil {
		return
	}
	b.rb.Clear()
	bitmapPool.Put(b)
}

// Add adds an id to the bitmap.
func (b *Bitmap) Add(id uint32) {
	b.rb.Add(id)
}

// CheckedAdd adds an id and reports whether it was newly added.
func (b *Bitmap) CheckedAdd(id uint32) bool {
	return b.rb.CheckedAdd(id)
}

// Remove removes an id from the bitmap.
func (b *Bitmap) Remove(id uint32) {
	b.rb.Remove(id)
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of ids in the bitmap.
func (b *Bitmap) Cardinality() int {
	return int(b.rb.GetCardinality())
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{
		rb: b.rb.Clone(),
	}
}

// Iterator yields ids in ascending order.
func (b *Bitmap) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
