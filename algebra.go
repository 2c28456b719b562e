package hasharray

import "time"

// Intersection returns the items of c that collide with other: every item
// sharing at least one key value with any item of other, through any key
// field. The result is a new collection with c's key fields and no observer.
func (c *Collection[T]) Intersection(other *Collection[T]) *Collection[T] {
	return c.partition("intersection", other, true)
}

// Complement returns the items of c that do not collide with other. The
// result is a new collection with c's key fields and no observer.
func (c *Collection[T]) Complement(other *Collection[T]) *Collection[T] {
	return c.partition("complement", other, false)
}

func (c *Collection[T]) partition(op string, other *Collection[T], keep bool) *Collection[T] {
	start := time.Now()
	out := c.derive()
	for e := range c.seq.Entries() {
		if other.Collides(e.Item) == keep {
			out.adopt(e)
		}
	}

	c.metrics.RecordDerive(op, out.Len(), time.Since(start))
	c.logger.LogDerive(op, c.Len(), out.Len())
	return out
}

// derive builds an observer-less empty collection for derived results.
func (c *Collection[T]) derive() *Collection[T] {
	return c.CloneEmpty(WithObserver[T](nil))
}
