package hasharray

import (
	"time"

	"github.com/hupe1980/hasharray/keypath"
	"github.com/hupe1980/hasharray/keyvalue"
)

// ForEach calls fn for every item selected by sel, in GetAll order.
func (c *Collection[T]) ForEach(sel Selector, fn func(item T)) {
	for _, item := range c.GetAll(sel) {
		fn(item)
	}
}

// ForEachDeep is ForEach that also passes the value p resolves to on each
// item. Items where p does not resolve receive a nil value.
func (c *Collection[T]) ForEachDeep(sel Selector, p keypath.KeyPath, fn func(value any, item T)) {
	for _, item := range c.GetAll(sel) {
		v, _ := keypath.Resolve(item, p)
		fn(v, item)
	}
}

// Sum adds up the numeric values at p over the selected items. Missing or
// non-numeric values count as zero.
func (c *Collection[T]) Sum(sel Selector, p keypath.KeyPath) float64 {
	var sum float64
	c.ForEachDeep(sel, p, func(v any, _ T) {
		sum += number(v)
	})
	return sum
}

// WeightedSum adds up value(p) * value(weight) over the selected items.
func (c *Collection[T]) WeightedSum(sel Selector, p, weight keypath.KeyPath) float64 {
	var sum float64
	c.ForEachDeep(sel, p, func(v any, item T) {
		w, _ := keypath.Resolve(item, weight)
		sum += number(v) * number(w)
	})
	return sum
}

// Average returns the mean of the values at p over the selected items.
// Every selected item counts toward the denominator; an empty selection
// averages to zero.
func (c *Collection[T]) Average(sel Selector, p keypath.KeyPath) float64 {
	var sum float64
	var n int
	c.ForEachDeep(sel, p, func(v any, _ T) {
		sum += number(v)
		n++
	})
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// WeightedAverage returns the weighted mean of the values at p, each weighted
// by the value at weight. Weights are normalized by their total, so they need
// not sum to one. A zero total weight averages to zero.
func (c *Collection[T]) WeightedAverage(sel Selector, p, weight keypath.KeyPath) float64 {
	items := c.GetAll(sel)

	var total float64
	for _, item := range items {
		w, _ := keypath.Resolve(item, weight)
		total += number(w)
	}
	if total == 0 {
		return 0
	}

	var avg float64
	for _, item := range items {
		v, _ := keypath.Resolve(item, p)
		w, _ := keypath.Resolve(item, weight)
		avg += number(v) * (number(w) / total)
	}
	return avg
}

func number(v any) float64 {
	f, _ := keyvalue.Float64(v)
	return f
}

// Filter returns a new collection holding the selected items for which pred
// is true. The source collection is not modified and the result has no
// observer.
func (c *Collection[T]) Filter(sel Selector, pred func(item T) bool) *Collection[T] {
	start := time.Now()
	out := c.derive()
	for _, item := range c.GetAll(sel) {
		if !pred(item) {
			continue
		}
		if e, ok := c.seq.Lookup(item); ok {
			out.adopt(e)
		}
	}

	c.metrics.RecordDerive("filter", out.Len(), time.Since(start))
	c.logger.LogDerive("filter", c.Len(), out.Len())
	return out
}

// FilterBy is Filter with a predicate that keeps items whose value at p is
// present and not false.
func (c *Collection[T]) FilterBy(sel Selector, p keypath.KeyPath) *Collection[T] {
	return c.Filter(sel, func(item T) bool {
		v, ok := keypath.Resolve(item, p)
		return ok && keyvalue.Truthy(v)
	})
}

// Sample draws up to n distinct items uniformly at random without
// replacement from the items selected by sel, or from every item when sel is
// nil. n is clamped to the population size.
func (c *Collection[T]) Sample(n int, sel Selector) []T {
	if sel == nil {
		return c.sampleSequence(n)
	}

	pool := c.GetAll(sel)
	n = max(0, min(n, len(pool)))
	// Partial Fisher-Yates: the first n slots end up holding the draw.
	for i := 0; i < n; i++ {
		j := i + c.random.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n]
}

// sampleSequence is a partial Fisher-Yates over sequence positions that
// records only the swapped slots, so it touches n items instead of copying
// the whole sequence.
func (c *Collection[T]) sampleSequence(n int) []T {
	size := c.seq.Len()
	n = max(0, min(n, size))

	swapped := make(map[int]int, n)
	slot := func(i int) int {
		if p, ok := swapped[i]; ok {
			return p
		}
		return i
	}

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		j := i + c.random.IntN(size-i)
		pos := slot(j)
		swapped[j] = slot(i)
		if item, ok := c.seq.At(pos); ok {
			out = append(out, item)
		}
	}
	return out
}
