package functional

import "iter"

// Container is the common view over Option, Result and Identity: a value
// holder containing zero or one values.
type Container[T any] interface {
	// Value returns the contained value and whether it is present.
	Value() (T, bool)
	// All returns a restartable iterator over the zero or one contained
	// values.
	All() iter.Seq[T]
}

// UnwrapValues extracts the present values from a sequence of containers of
// any kind, skipping absent and failed entries.
func UnwrapValues[T any](seq iter.Seq[Container[T]]) []T {
	values := []T{}
	for c := range seq {
		if v, ok := c.Value(); ok {
			values = append(values, v)
		}
	}
	return values
}
