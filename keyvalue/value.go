package keyvalue

import (
	"math"
	"reflect"
	"strconv"
	"unique"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a non-integral float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is a comparable index key.
//
// The zero Value is invalid and never stored in an index.
type Value struct {
	kind Kind
	i64  int64
	f64  float64
	s    unique.Handle[string]
	b    bool
}

// Int returns an int64 Value.
func Int(v int64) Value { return Value{kind: KindInt, i64: v} }

// Float returns a float Value. Integral floats are stored as KindInt.
func Float(v float64) Value {
	if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
		return Int(int64(v))
	}
	return Value{kind: KindFloat, f64: v}
}

// String returns a string Value.
func String(v string) Value { return Value{kind: KindString, s: unique.Make(v)} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds a key.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i64, true
}

// AsFloat64 returns the numeric value for KindInt and KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i64), true
	case KindFloat:
		return v.f64, true
	default:
		return 0, false
	}
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s.Value(), true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Interface returns the value as a plain Go value (int64, float64, string or bool).
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i64
	case KindFloat:
		return v.f64
	case KindString:
		return v.s.Value()
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String renders the value for logs and debugging.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case KindString:
		return v.s.Value()
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}

// FromAny converts a resolved field value into a Value.
//
// nil, NaN and non-scalar values (slices, maps, structs, funcs) report false.
// Named types are accepted when their underlying kind is a scalar.
func FromAny(x any) (Value, bool) {
	switch t := x.(type) {
	case nil:
		return Value{}, false
	case Value:
		return t, t.IsValid()
	case string:
		return String(t), true
	case int:
		return Int(int64(t)), true
	case int64:
		return Int(t), true
	case int32:
		return Int(int64(t)), true
	case float64:
		return fromFloat(t)
	case bool:
		return Bool(t), true
	}
	return fromReflect(reflect.ValueOf(x))
}

func fromFloat(f float64) (Value, bool) {
	if math.IsNaN(f) {
		return Value{}, false
	}
	return Float(f), true
}

func fromReflect(rv reflect.Value) (Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Value{}, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return String(rv.String()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Value{kind: KindFloat, f64: float64(u)}, true
		}
		return Int(int64(u)), true
	case reflect.Float32, reflect.Float64:
		return fromFloat(rv.Float())
	case reflect.Bool:
		return Bool(rv.Bool()), true
	default:
		return Value{}, false
	}
}

// Float64 converts a resolved field value to a number.
//
// Signed, unsigned and floating point kinds (including named types and
// pointers to them) convert; everything else reports false.
func Float64(x any) (float64, bool) {
	switch t := x.(type) {
	case nil:
		return 0, false
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float32:
		return float64(t), true
	case Value:
		return t.AsFloat64()
	}

	rv := reflect.ValueOf(x)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// Truthy reports whether a resolved value is present and not false.
func Truthy(x any) bool {
	if x == nil {
		return false
	}
	if b, ok := x.(bool); ok {
		return b
	}

	rv := reflect.ValueOf(x)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Bool {
		return rv.Bool()
	}
	return true
}
