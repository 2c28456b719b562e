// Package hasharray provides an in-memory collection that indexes records by
// several key paths at once.
//
// A Collection keeps its items in insertion order and maintains a multimap
// from every key value to the items carrying it. Key paths may point into
// nested maps and structs, and an item is indexed under every path that
// resolves.
//
// # Quick Start
//
//	type Order struct {
//	    ID       string
//	    Customer struct{ Email string }
//	    Total    float64
//	}
//
//	orders := hasharray.MustNew[*Order]([]keypath.KeyPath{
//	    keypath.Field("ID"),
//	    keypath.Path("Customer", "Email"),
//	})
//	orders.Add(o1, o2, o3)
//
//	item, group, ok := orders.Get("alice@example.com")
//	all := orders.GetAll(hasharray.Keys("o-1", "o-2"))
//	total := orders.Sum(hasharray.Everything, keypath.Field("Total"))
//
// # Identity
//
// Items are compared with Go ==. Use pointer types to get reference
// identity: adding the same pointer twice is a no-op, while two distinct
// pointers with equal fields are two items.
//
// # Duplicate Policies
//
// By default colliding items share a bucket, and Get returns the whole group.
// WithIgnoreDuplicates switches to first-writer-wins: an item with any key
// value already in the index is rejected as a whole.
//
// # Derived Collections
//
// Intersection, Complement and Filter build new collections with the same key
// fields. The source is never modified.
//
// # Observers
//
// WithObserver or SetObserver register a function that is called
// synchronously once per mutating call with an EventKind and the affected
// items.
//
// # Thread Safety
//
// A Collection is not safe for concurrent use. Callers that share one across
// goroutines must synchronize access themselves.
package hasharray
