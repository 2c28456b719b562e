package hasharray

import (
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hasharray/keypath"
	"github.com/hupe1980/hasharray/keyvalue"
)

// parallelResolveThreshold is the AddAll batch size from which key
// resolution is spread over WithResolveWorkers goroutines.
const parallelResolveThreshold = 100

// resolveKeys returns the key values of item in key-field order. Paths that
// do not resolve to a scalar are skipped.
func (c *Collection[T]) resolveKeys(item T) []keyvalue.Value {
	return resolveKeys(item, c.keyFields)
}

func resolveKeys(item any, fields []keypath.KeyPath) []keyvalue.Value {
	keys := make([]keyvalue.Value, 0, len(fields))
	for _, p := range fields {
		raw, ok := keypath.Resolve(item, p)
		if !ok {
			continue
		}
		v, ok := keyvalue.FromAny(raw)
		if !ok {
			continue
		}
		keys = append(keys, v)
	}
	return keys
}

// resolveBatch resolves the keys of every item concurrently. Resolution is
// read-only; the results are applied to the index sequentially by add.
func (c *Collection[T]) resolveBatch(items []T) [][]keyvalue.Value {
	out := make([][]keyvalue.Value, len(items))

	workers := c.opts.resolveWorkers
	chunk := (len(items) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(items); lo += chunk {
		hi := min(lo+chunk, len(items))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = resolveKeys(items[i], c.keyFields)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return out
}
