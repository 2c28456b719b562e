// Package index implements the key index of a hash array.
//
// The index maps each normalized key value to a posting list of sequence ids:
//
//	buckets: map[keyvalue.Value]*Bitmap
//
// Posting lists are Roaring Bitmaps. Sequence ids grow with insertion order,
// so ascending bitmap iteration yields bucket members in the order they were
// added to the collection. Empty buckets are deleted eagerly; a key with no
// members is never present.
//
// Keys are typed Go values, never strings looked up on a shared object, so
// names like "constructor" or "__proto__" are ordinary keys.
//
// # Thread Safety
//
// Index is not safe for concurrent use. The owning collection serializes
// access.
package index
