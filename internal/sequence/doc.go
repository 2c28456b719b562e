// Package sequence holds the insertion-ordered item list of a hash array.
//
// Every item gets a monotonically increasing 32-bit id when it is appended.
// A Roaring Bitmap of live ids gives the iteration order; a reverse map from
// item to id gives O(1) identity checks and removal. Removal leaves a gap in
// the id space instead of shifting the remaining entries.
//
// When the id space is exhausted, Renumber compacts the live entries back to
// 0..n-1 without changing their relative order. The caller must rebuild any
// structure keyed by the old ids.
package sequence
