package bedazzle

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// State is a composed object, or a partial one returned by a decorator.
// Methods are stored as function values.
type State map[string]any

// Clone returns a shallow copy of s. Clone of a nil State is an empty State.
func Clone(s State) State {
	cloned := make(State, len(s))
	maps.Copy(cloned, s)
	return cloned
}

// Merge returns a new State holding the entries of dst overwritten by the entries of src.
// Neither argument is modified.
func Merge(dst, src State) State {
	merged := make(State, len(dst)+len(src))
	maps.Copy(merged, dst)
	maps.Copy(merged, src)
	return merged
}

// Get returns the value stored under key if it is a T.
func Get[T any](s State, key string) (T, bool) {
	v, ok := s[key].(T)
	return v, ok
}

// Lookup returns the value stored under key, failing with ErrKeyNotFound or ErrTypeMismatch.
func Lookup[T any](s State, key string) (T, error) {
	var zero T
	raw, ok := s[key]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, not %s", ErrTypeMismatch, key, raw, reflect.TypeOf(&zero).Elem())
	}
	return v, nil
}

// Data returns the entries of s that are not functions.
func Data(s State) State {
	data := make(State, len(s))
	for k, v := range s {
		if !isFunc(v) {
			data[k] = v
		}
	}
	return data
}

// Methods returns the sorted keys of s holding functions.
func Methods(s State) []string {
	var methods []string
	for k, v := range s {
		if isFunc(v) {
			methods = append(methods, k)
		}
	}
	slices.Sort(methods)
	return methods
}

// Equal reports whether a and b hold the same keys and deeply equal data.
// Functions cannot be compared, they only need to be present under the same keys.
func Equal(a, b State) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		af, bf := isFunc(av), isFunc(bv)
		if af != bf {
			return false
		}
		if af {
			continue
		}
		if !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
