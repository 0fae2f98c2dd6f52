package bedazzle

import "errors"

var (
	// ErrDecoratorNil a nil Decorator was passed to a pipeline
	ErrDecoratorNil = errors.New("decorator is nil")

	// ErrKeyNotFound state has no entry for the key
	ErrKeyNotFound = errors.New("key not found")

	// ErrTypeMismatch state entry is not of the requested type
	ErrTypeMismatch = errors.New("type mismatch")
)
