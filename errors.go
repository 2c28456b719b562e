package hasharray

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hasharray/keypath"
)

var (
	// ErrNoKeyFields is returned when a collection is configured without key paths.
	ErrNoKeyFields = errors.New("at least one key field is required")

	// ErrObserverType is returned when WithObserver was given an observer for
	// a different item type than the collection holds.
	ErrObserverType = errors.New("observer item type does not match collection")
)

// ErrInvalidKeyPath indicates a malformed key path in the key-field list.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrInvalidKeyPath struct {
	Position int
	Path     keypath.KeyPath
	cause    error
}

func (e *ErrInvalidKeyPath) Error() string {
	return fmt.Sprintf("invalid key field %d (%q): %v", e.Position, e.Path.String(), e.cause)
}

func (e *ErrInvalidKeyPath) Unwrap() error { return e.cause }

func validateKeyFields(paths []keypath.KeyPath) error {
	if len(paths) == 0 {
		return ErrNoKeyFields
	}
	for i, p := range paths {
		if err := p.Validate(); err != nil {
			return &ErrInvalidKeyPath{Position: i, Path: p, cause: err}
		}
	}
	return nil
}
