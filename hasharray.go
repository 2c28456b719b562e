package hasharray

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/hupe1980/hasharray/internal/index"
	"github.com/hupe1980/hasharray/internal/sequence"
	"github.com/hupe1980/hasharray/keypath"
	"github.com/hupe1980/hasharray/keyvalue"
)

// Collection indexes items by one or more key paths at once.
//
// Items are held by identity (Go ==), so use pointer types for reference
// semantics. The key-field list is fixed at construction.
//
// A Collection is not safe for concurrent use.
type Collection[T comparable] struct {
	keyFields []keypath.KeyPath
	index     *index.Index
	seq       *sequence.Sequence[T]

	opts     options
	observer Observer[T]
	logger   *Logger
	metrics  MetricsCollector
	random   RandomSource
}

// New creates a collection indexed by keyFields.
//
// It fails with ErrNoKeyFields when keyFields is empty and with
// *ErrInvalidKeyPath when a path is empty or contains an empty segment.
func New[T comparable](keyFields []keypath.KeyPath, optFns ...Option) (*Collection[T], error) {
	if err := validateKeyFields(keyFields); err != nil {
		return nil, err
	}

	fields := make([]keypath.KeyPath, len(keyFields))
	for i, p := range keyFields {
		fields[i] = p.Clone()
	}

	return newCollection[T](fields, applyOptions(options{}, optFns))
}

// MustNew is like New but panics on configuration errors.
func MustNew[T comparable](keyFields []keypath.KeyPath, optFns ...Option) *Collection[T] {
	c, err := New[T](keyFields, optFns...)
	if err != nil {
		panic(err)
	}
	return c
}

func newCollection[T comparable](fields []keypath.KeyPath, o options) (*Collection[T], error) {
	var observer Observer[T]
	if o.observer != nil {
		fn, ok := o.observer.(Observer[T])
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrObserverType, o.observer)
		}
		observer = fn
	}

	random := o.random
	if random == nil {
		random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) // nolint gosec
	}

	c := &Collection[T]{
		keyFields: fields,
		index:     index.New(),
		seq:       sequence.New[T](),
		opts:      o,
		observer:  observer,
		logger:    o.logger.WithKeyFields(fields),
		metrics:   o.metricsCollector,
		random:    random,
	}

	c.notify(EventConstruct, nil)
	return c, nil
}

// KeyFields returns a copy of the configured key paths.
func (c *Collection[T]) KeyFields() []keypath.KeyPath {
	out := make([]keypath.KeyPath, len(c.keyFields))
	for i, p := range c.keyFields {
		out[i] = p.Clone()
	}
	return out
}

// IgnoreDuplicates reports whether the ignore-duplicates policy is active.
func (c *Collection[T]) IgnoreDuplicates() bool {
	return c.opts.ignoreDuplicates
}

// SetObserver replaces the mutation observer. nil disables notifications.
func (c *Collection[T]) SetObserver(fn Observer[T]) {
	c.observer = fn
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	return c.seq.Len()
}

// All returns the items in insertion order. The slice is a copy.
func (c *Collection[T]) All() []T {
	return c.seq.Slice()
}

// Map returns a snapshot of the index: every key value with its bucket in
// insertion order.
func (c *Collection[T]) Map() map[keyvalue.Value][]T {
	out := make(map[keyvalue.Value][]T, c.index.Len())
	for v, b := range c.index.Buckets() {
		out[v] = c.materialize(b)
	}
	return out
}

// Keys returns every key value currently indexed, in no particular order.
func (c *Collection[T]) Keys() []keyvalue.Value {
	out := make([]keyvalue.Value, 0, c.index.Len())
	for v := range c.index.Keys() {
		out = append(out, v)
	}
	return out
}

// Add inserts items in order.
//
// Each item is indexed under every key value its key paths resolve to. Under
// the ignore-duplicates policy an item with any colliding key value is
// skipped entirely. Adding an item that is already present is a no-op.
func (c *Collection[T]) Add(items ...T) *Collection[T] {
	return c.add(items, nil)
}

// AddAll is Add for a slice. Batches of at least parallelResolveThreshold
// items resolve their keys concurrently when WithResolveWorkers is set.
func (c *Collection[T]) AddAll(items []T) *Collection[T] {
	if c.opts.resolveWorkers > 1 && len(items) >= parallelResolveThreshold {
		return c.add(items, c.resolveBatch(items))
	}
	return c.add(items, nil)
}

func (c *Collection[T]) add(items []T, resolved [][]keyvalue.Value) *Collection[T] {
	start := time.Now()
	accepted := make([]T, 0, len(items))
	rejected := 0

	for i, item := range items {
		if c.seq.Contains(item) {
			continue
		}

		var keys []keyvalue.Value
		if resolved != nil {
			keys = resolved[i]
		} else {
			keys = c.resolveKeys(item)
		}

		if c.opts.ignoreDuplicates && c.collidesAny(keys) {
			rejected++
			continue
		}

		if !c.insert(item, keys) {
			rejected++
			continue
		}
		accepted = append(accepted, item)
	}

	c.metrics.RecordAdd(EventAdd, len(accepted), rejected, time.Since(start))
	c.logger.LogAdd(EventAdd, len(accepted), rejected, c.seq.Len())
	c.notify(EventAdd, accepted)
	return c
}

// AddMap indexes item under an explicit key value in addition to the values
// its key paths resolve to. The item joins the collection if it is not
// already present. The alias is dropped when the item is removed.
//
// Under the ignore-duplicates policy the call is rejected when key already
// collides, or, for a new item, when any of its own key values collide.
func (c *Collection[T]) AddMap(key any, item T) *Collection[T] {
	start := time.Now()
	var accepted []T

	v, ok := keyvalue.FromAny(key)
	switch {
	case !ok:
	case c.opts.ignoreDuplicates && c.index.Collides(v):
	default:
		if e, exists := c.seq.Lookup(item); exists {
			if !e.HasKey(v) {
				e.Keys = append(e.Keys, v)
				c.index.Add(v, e.ID)
			}
			accepted = []T{item}
			break
		}

		keys := c.resolveKeys(item)
		if c.opts.ignoreDuplicates && c.collidesAny(keys) {
			break
		}
		if c.insert(item, append(keys, v)) {
			accepted = []T{item}
		}
	}

	c.metrics.RecordAdd(EventAddMap, len(accepted), 1-len(accepted), time.Since(start))
	c.logger.LogAdd(EventAddMap, len(accepted), 1-len(accepted), c.seq.Len())
	c.notify(EventAddMap, accepted)
	return c
}

// insert appends a new item and indexes it under keys. It reports false
// when every sequence id is live even after renumbering.
func (c *Collection[T]) insert(item T, keys []keyvalue.Value) bool {
	if c.seq.Exhausted() {
		c.renumber()
	}

	keys = dedupeKeys(keys)
	e, ok := c.seq.Append(item, keys)
	if !ok {
		c.logger.LogFull(c.seq.Len())
		return false
	}
	for _, v := range keys {
		c.index.Add(v, e.ID)
	}
	return true
}

// renumber compacts sequence ids and rebuilds the index around them.
func (c *Collection[T]) renumber() {
	c.seq.Renumber()
	c.index.Reset()
	for e := range c.seq.Entries() {
		for _, v := range e.Keys {
			c.index.Add(v, e.ID)
		}
	}
	c.logger.LogRenumber(c.seq.Len(), c.index.Len())
}

// Get returns the bucket for key.
//
// With exactly one member, item holds it and group is nil. With more, group
// holds the members in insertion order and item is the zero value. ok is
// false when key has no bucket.
func (c *Collection[T]) Get(key any) (item T, group []T, ok bool) {
	members := c.GetAsArray(key)
	switch len(members) {
	case 0:
		return item, nil, false
	case 1:
		return members[0], nil, true
	default:
		return item, members, true
	}
}

// GetAsArray returns the members of the bucket for key in insertion order.
// The result is never nil.
func (c *Collection[T]) GetAsArray(key any) []T {
	b, ok := c.lookup(key)
	if !ok {
		return []T{}
	}
	return c.materialize(b)
}

// First returns the earliest inserted member of the bucket for key.
func (c *Collection[T]) First(key any) (T, bool) {
	var zero T
	b, ok := c.lookup(key)
	if !ok {
		return zero, false
	}
	for id := range b.Iterator() {
		if e, ok := c.seq.Get(id); ok {
			return e.Item, true
		}
	}
	return zero, false
}

// Has reports whether key has a bucket.
func (c *Collection[T]) Has(key any) bool {
	_, ok := c.lookup(key)
	return ok
}

// HasMultiple reports whether the bucket for key has more than one member.
func (c *Collection[T]) HasMultiple(key any) bool {
	b, ok := c.lookup(key)
	return ok && b.Cardinality() > 1
}

// Count returns the number of members in the bucket for key.
func (c *Collection[T]) Count(key any) int {
	v, ok := keyvalue.FromAny(key)
	if !ok {
		c.metrics.RecordLookup(false)
		return 0
	}
	n := c.index.Count(v)
	c.metrics.RecordLookup(n > 0)
	return n
}

func (c *Collection[T]) lookup(key any) (*index.Bitmap, bool) {
	v, ok := keyvalue.FromAny(key)
	if !ok {
		c.metrics.RecordLookup(false)
		return nil, false
	}
	b, ok := c.index.Lookup(v)
	c.metrics.RecordLookup(ok)
	return b, ok
}

func (c *Collection[T]) materialize(b *index.Bitmap) []T {
	out := make([]T, 0, b.Cardinality())
	for id := range b.Iterator() {
		if e, ok := c.seq.Get(id); ok {
			out = append(out, e.Item)
		}
	}
	return out
}

// Remove deletes items from the sequence and from every bucket they are
// indexed under. Items not in the collection are ignored.
func (c *Collection[T]) Remove(items ...T) *Collection[T] {
	start := time.Now()
	removed := make([]T, 0, len(items))
	for _, item := range items {
		if c.removeOne(item) {
			removed = append(removed, item)
		}
	}

	c.metrics.RecordRemove(EventRemove, len(removed), time.Since(start))
	c.logger.LogRemove(EventRemove, len(removed), c.seq.Len())
	c.notify(EventRemove, removed)
	return c
}

// RemoveByKey deletes every item in the buckets for keys. Each removed item
// is purged from all of its buckets, not only the named one.
func (c *Collection[T]) RemoveByKey(keys ...any) *Collection[T] {
	start := time.Now()
	var removed []T
	for _, key := range keys {
		v, ok := keyvalue.FromAny(key)
		if !ok {
			continue
		}
		b, ok := c.index.Lookup(v)
		if !ok {
			continue
		}
		// Removal mutates b, so walk a snapshot of its ids.
		for _, item := range c.materialize(b.Clone()) {
			if c.removeOne(item) {
				removed = append(removed, item)
			}
		}
	}

	c.metrics.RecordRemove(EventRemoveByKey, len(removed), time.Since(start))
	c.logger.LogRemove(EventRemoveByKey, len(removed), c.seq.Len())
	c.notify(EventRemoveByKey, removed)
	return c
}

// RemoveAll empties the collection.
func (c *Collection[T]) RemoveAll() *Collection[T] {
	start := time.Now()
	removed := c.seq.Slice()
	c.seq.Reset()
	c.index.Reset()

	c.metrics.RecordRemove(EventRemove, len(removed), time.Since(start))
	c.logger.LogRemove(EventRemove, len(removed), 0)
	c.notify(EventRemove, removed)
	return c
}

func (c *Collection[T]) removeOne(item T) bool {
	e, ok := c.seq.Remove(item)
	if !ok {
		return false
	}
	for _, v := range e.Keys {
		c.index.Remove(v, e.ID)
	}
	return true
}

// Collides reports whether any key value of item is already indexed. item
// need not be a member; only its resolved key values matter.
func (c *Collection[T]) Collides(item T) bool {
	return c.collidesAny(c.resolveKeys(item))
}

func (c *Collection[T]) collidesAny(keys []keyvalue.Value) bool {
	for _, v := range keys {
		if c.index.Collides(v) {
			return true
		}
	}
	return false
}

// Clone returns an independent collection with the same key fields,
// configuration and items. optFns override the inherited configuration.
//
// Items are re-added in order, including AddMap aliases, so an override such
// as WithIgnoreDuplicates applies to the copy.
func (c *Collection[T]) Clone(optFns ...Option) *Collection[T] {
	n := c.CloneEmpty(optFns...)
	accepted := make([]T, 0, c.seq.Len())
	for e := range c.seq.Entries() {
		if n.adopt(e) {
			accepted = append(accepted, e.Item)
		}
	}
	n.notify(EventAdd, accepted)
	return n
}

// adopt inserts an entry of another collection with the same key fields,
// reusing its key values. It reports false when the duplicate policy
// rejects it.
func (c *Collection[T]) adopt(e *sequence.Entry[T]) bool {
	if c.seq.Contains(e.Item) {
		return false
	}
	keys := append([]keyvalue.Value(nil), e.Keys...)
	if c.opts.ignoreDuplicates && c.collidesAny(keys) {
		return false
	}
	return c.insert(e.Item, keys)
}

// CloneEmpty returns a collection with the same key fields and configuration
// but no items. optFns override the inherited configuration.
//
// It panics if optFns carry an observer for a different item type.
func (c *Collection[T]) CloneEmpty(optFns ...Option) *Collection[T] {
	base := c.opts
	base.observer = nil
	if c.observer != nil {
		base.observer = c.observer
	}

	n, err := newCollection[T](c.KeyFields(), applyOptions(base, optFns))
	if err != nil {
		panic(err)
	}
	return n
}

func (c *Collection[T]) notify(kind EventKind, items []T) {
	if c.observer == nil {
		return
	}
	if kind != EventConstruct && items == nil {
		items = []T{}
	}
	c.observer(kind, items)
}

func dedupeKeys(keys []keyvalue.Value) []keyvalue.Value {
	if len(keys) < 2 {
		return keys
	}
	out := make([]keyvalue.Value, 0, len(keys))
	for _, v := range keys {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
