// Package keyvalue normalizes resolved field values into comparable index keys.
//
// A Value is a small typed scalar. Strings are interned via unique.Handle so
// that repeated keys share storage. Integer types of every width normalize to
// KindInt and integral floats normalize to KindInt as well, so 3, int8(3) and
// 3.0 all address the same bucket.
//
//	v, ok := keyvalue.FromAny("tech")   // KindString
//	v, ok  = keyvalue.FromAny(uint16(7)) // KindInt
//	_, ok  = keyvalue.FromAny([]int{1})  // not a key, ok == false
//
// Value is comparable and is used directly as a Go map key.
package keyvalue
