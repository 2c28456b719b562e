package keypath

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Fielder is implemented by records that expose their own fields.
//
// Implementations must not have side effects; Resolve may call Field from
// several goroutines during batch resolution.
type Fielder interface {
	Field(name string) (any, bool)
}

// Resolve walks p left to right against item.
//
// It reports false the moment any step is missing, nil or non-traversable.
// A final nil value is also reported as absent.
func Resolve(item any, p KeyPath) (any, bool) {
	if len(p) == 0 {
		return nil, false
	}

	cur := item
	for _, name := range p {
		next, ok := step(cur, name)
		if !ok {
			return nil, false
		}
		cur = next
	}

	if isNil(cur) {
		return nil, false
	}
	return cur, true
}

func step(cur any, name string) (any, bool) {
	if isNil(cur) {
		return nil, false
	}

	switch t := cur.(type) {
	case Fielder:
		return t.Field(name)
	case map[string]any:
		v, ok := t[name]
		return v, ok
	}

	rv := reflect.ValueOf(cur)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
		if rv.CanInterface() {
			if f, ok := rv.Interface().(Fielder); ok {
				return f.Field(name)
			}
		}
	}

	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true

	case reflect.Struct:
		f, ok := lookupField(rv.Type(), name)
		if !ok {
			return nil, false
		}
		fv, err := rv.FieldByIndexErr(f.index)
		if err != nil || !fv.CanInterface() {
			return nil, false
		}
		if f.omitEmpty && fv.IsZero() {
			return nil, false
		}
		return fv.Interface(), true

	default:
		return nil, false
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

type fieldInfo struct {
	index     []int
	omitEmpty bool
}

// fieldCache maps struct type -> field name -> field info.
var fieldCache sync.Map

func lookupField(t reflect.Type, name string) (fieldInfo, bool) {
	var names map[string]fieldInfo
	if cached, ok := fieldCache.Load(t); ok {
		names = cached.(map[string]fieldInfo)
	} else {
		names = buildFieldNames(t, nil, map[reflect.Type]bool{})
		fieldCache.Store(t, names)
	}
	f, ok := names[name]
	return f, ok
}

// buildFieldNames registers exported fields by name, json tag and hasharray
// tag, in increasing precedence. Fields of untagged embedded structs are
// promoted below the fields of t itself. A field tagged "-" is skipped and a
// zero field tagged omitempty resolves as absent.
func buildFieldNames(t reflect.Type, prefix []int, visiting map[reflect.Type]bool) map[string]fieldInfo {
	visiting[t] = true
	defer delete(visiting, t)

	names := make(map[string]fieldInfo, t.NumField())
	var embedded []reflect.StructField

	for _, tagKey := range []string{"", "json", "hasharray"} {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if ignored(f) {
				continue
			}
			index := append(slices.Clone(prefix), i)
			if tagKey == "" {
				if f.Anonymous && !tagged(f) {
					embedded = append(embedded, f)
				}
				if f.IsExported() {
					names[f.Name] = fieldInfo{index: index}
				}
				continue
			}
			if !f.IsExported() {
				continue
			}
			name, omitEmpty := parseTag(f.Tag.Get(tagKey))
			if name != "" {
				names[name] = fieldInfo{index: index, omitEmpty: omitEmpty}
			}
		}
	}

	for _, f := range embedded {
		et := f.Type
		if et.Kind() == reflect.Pointer {
			if !f.IsExported() {
				continue
			}
			et = et.Elem()
		}
		if et.Kind() != reflect.Struct || visiting[et] {
			continue
		}
		promoted := buildFieldNames(et, append(slices.Clone(prefix), f.Index...), visiting)
		for name, info := range promoted {
			if _, ok := names[name]; !ok {
				names[name] = info
			}
		}
	}
	return names
}

// ignored reports whether f is unexported and not embedded, or tagged "-".
func ignored(f reflect.StructField) bool {
	if !f.IsExported() && !f.Anonymous {
		return true
	}
	return f.Tag.Get("json") == "-" || f.Tag.Get("hasharray") == "-"
}

// tagged reports whether f carries an explicit json or hasharray name.
func tagged(f reflect.StructField) bool {
	for _, key := range []string{"json", "hasharray"} {
		if name, _ := parseTag(f.Tag.Get(key)); name != "" {
			return true
		}
	}
	return false
}

func parseTag(tag string) (string, bool) {
	name, opts, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", false
	}
	omitEmpty := false
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}
