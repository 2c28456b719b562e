// Package keypath resolves key paths against arbitrary records.
//
// A KeyPath is either a single field name or an ordered sequence of field
// names walking into nested structures:
//
//	keypath.Field("id")             // item.id
//	keypath.Path("child", "key")    // item.child.key
//	keypath.Parse("child.key")      // same as above
//
// Resolution never fails. A missing field, a nil intermediate or a value
// that cannot be traversed (a string, a slice) yields "absent" and the
// caller simply does not index the item under that path.
//
// # Traversal rules
//
//   - Values implementing Fielder are asked first.
//   - Pointers and interfaces are dereferenced; nil is absent.
//   - Maps with string-kinded keys are indexed by the field name.
//   - Structs are searched by `hasharray:"name"` tag, then `json:"name"`
//     tag, then exported field name. A tagged field with the omitempty
//     option resolves as absent while it holds its zero value.
package keypath
