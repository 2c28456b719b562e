package hasharray

import (
	"github.com/hupe1980/hasharray/internal/index"
	"github.com/hupe1980/hasharray/keyvalue"
)

// Wildcard selects every item when it is the only element of a Selector.
const Wildcard = "*"

// Selector lists the key values whose buckets an operation works on.
type Selector []any

// Everything selects the full item sequence.
var Everything = Selector{Wildcard}

// Keys builds a Selector from key values. With no values it selects
// nothing; it is never nil.
func Keys(values ...any) Selector {
	return append(Selector{}, values...)
}

// IsWildcard reports whether s selects every item.
func (s Selector) IsWildcard() bool {
	if len(s) != 1 {
		return false
	}
	w, ok := s[0].(string)
	return ok && w == Wildcard
}

// GetAll returns the union of the buckets selected by sel.
//
// Buckets are visited in selector order and each item appears once, at its
// first occurrence. Everything returns the full sequence in insertion order.
func (c *Collection[T]) GetAll(sel Selector) []T {
	if sel.IsWildcard() {
		return c.seq.Slice()
	}

	seen := index.GetBitmap()
	defer index.PutBitmap(seen)

	var out []T
	for _, key := range sel {
		v, ok := keyvalue.FromAny(key)
		if !ok {
			continue
		}
		b, ok := c.index.Lookup(v)
		if !ok {
			continue
		}
		for id := range b.Iterator() {
			if !seen.CheckedAdd(id) {
				continue
			}
			if e, ok := c.seq.Get(id); ok {
				out = append(out, e.Item)
			}
		}
	}
	return out
}
