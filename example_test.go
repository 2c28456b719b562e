package hasharray_test

import (
	"fmt"

	"github.com/hupe1980/hasharray"
	"github.com/hupe1980/hasharray/keypath"
)

type Order struct {
	ID       string `json:"id"`
	Customer struct {
		Email string `json:"email"`
	} `json:"customer"`
	Total  float64 `json:"total"`
	Weight float64 `json:"weight"`
}

func newOrder(id, email string, total float64) *Order {
	o := &Order{ID: id, Total: total, Weight: 1}
	o.Customer.Email = email
	return o
}

func ids(orders []*Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

// Example_multipleKeys demonstrates indexing by a top-level and a nested field.
func Example_multipleKeys() {
	orders := hasharray.MustNew[*Order]([]keypath.KeyPath{
		keypath.Field("id"),
		keypath.Parse("customer.email"),
	})

	orders.Add(
		newOrder("o-1", "alice@example.com", 30),
		newOrder("o-2", "bob@example.com", 12),
		newOrder("o-3", "alice@example.com", 8),
	)

	single, _, _ := orders.Get("o-2")
	fmt.Println(single.Customer.Email)

	_, group, _ := orders.Get("alice@example.com")
	fmt.Println(len(group), group[0].ID, group[1].ID)

	fmt.Println(orders.Sum(hasharray.Keys("alice@example.com"), keypath.Field("total")))
	// Output:
	// bob@example.com
	// 2 o-1 o-3
	// 38
}

// Example_ignoreDuplicates demonstrates first-writer-wins insertion.
func Example_ignoreDuplicates() {
	users := hasharray.MustNew[*Order](keypath.Fields("id"), hasharray.WithIgnoreDuplicates())

	first := newOrder("o-1", "alice@example.com", 1)
	users.Add(first, newOrder("o-1", "mallory@example.com", 2))

	fmt.Println(users.Len(), users.All()[0] == first)
	// Output: 1 true
}

// Example_setAlgebra demonstrates intersection and complement.
func Example_setAlgebra() {
	a := hasharray.MustNew[*Order](keypath.Fields("id"))
	b := hasharray.MustNew[*Order](keypath.Fields("id"))

	a.Add(newOrder("o-1", "", 0), newOrder("o-2", "", 0), newOrder("o-3", "", 0))
	b.Add(newOrder("o-1", "", 0), newOrder("o-3", "", 0), newOrder("o-4", "", 0))

	fmt.Println(ids(a.Intersection(b).All()))
	fmt.Println(ids(a.Complement(b).All()))
	// Output:
	// [o-1 o-3]
	// [o-2]
}

// Example_observer demonstrates mutation notifications.
func Example_observer() {
	orders := hasharray.MustNew[*Order](keypath.Fields("id"),
		hasharray.WithObserver(func(kind hasharray.EventKind, items []*Order) {
			fmt.Println(kind, len(items))
		}),
	)

	orders.Add(newOrder("o-1", "", 0), newOrder("o-2", "", 0))
	orders.RemoveByKey("o-1")
	orders.RemoveAll()
	// Output:
	// construct 0
	// add 2
	// removeByKey 1
	// remove 1
}
