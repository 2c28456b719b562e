package keypath

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyPath is returned when a key path has no segments.
	ErrEmptyPath = errors.New("key path is empty")
	// ErrEmptySegment is returned when a key path contains an empty field name.
	ErrEmptySegment = errors.New("key path contains an empty segment")
)

// KeyPath locates a value inside a record.
type KeyPath []string

// Field returns a single-field key path.
func Field(name string) KeyPath {
	return KeyPath{name}
}

// Path returns a nested key path.
func Path(names ...string) KeyPath {
	return append(KeyPath(nil), names...)
}

// Parse splits a dotted path ("child.key") into a KeyPath.
func Parse(s string) KeyPath {
	if s == "" {
		return nil
	}
	return KeyPath(strings.Split(s, "."))
}

// Fields builds one single-field key path per name.
func Fields(names ...string) []KeyPath {
	paths := make([]KeyPath, len(names))
	for i, n := range names {
		paths[i] = Field(n)
	}
	return paths
}

// Validate reports whether the path can be resolved at all.
func (p KeyPath) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	for _, seg := range p {
		if seg == "" {
			return ErrEmptySegment
		}
	}
	return nil
}

// IsNested reports whether the path has more than one segment.
func (p KeyPath) IsNested() bool { return len(p) > 1 }

// String renders the path in dotted form.
func (p KeyPath) String() string {
	return strings.Join(p, ".")
}

// Clone returns a copy of the path.
func (p KeyPath) Clone() KeyPath {
	return append(KeyPath(nil), p...)
}

// Resolve walks the path against item.
func (p KeyPath) Resolve(item any) (any, bool) {
	return Resolve(item, p)
}
