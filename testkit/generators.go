// Package testkit provides rapid generators for the container types, used
// by property-based tests.
package testkit

import (
	"pgregory.net/rapid"

	functional "github.com/auth-platform/functional-go"
)

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return functional.Some(valueGen.Draw(t, "value"))
		}
		return functional.None[T]()
	})
}

// SomeGen generates Some values only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		return functional.Some(valueGen.Draw(t, "value"))
	})
}

// NoneGen generates None values only.
func NoneGen[T any]() *rapid.Generator[functional.Option[T]] {
	return rapid.Just(functional.None[T]())
}

// ResultGen generates Result[T, E] values.
func ResultGen[T, E any](valueGen *rapid.Generator[T], errGen *rapid.Generator[E]) *rapid.Generator[functional.Result[T, E]] {
	return rapid.Custom(func(t *rapid.T) functional.Result[T, E] {
		if rapid.Bool().Draw(t, "isOk") {
			return functional.Ok[E](valueGen.Draw(t, "value"))
		}
		return functional.Err[T](errGen.Draw(t, "error"))
	})
}

// OkGen generates Ok values only.
func OkGen[E, T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Result[T, E]] {
	return rapid.Custom(func(t *rapid.T) functional.Result[T, E] {
		return functional.Ok[E](valueGen.Draw(t, "value"))
	})
}

// ErrGen generates Err values only.
func ErrGen[T, E any](errGen *rapid.Generator[E]) *rapid.Generator[functional.Result[T, E]] {
	return rapid.Custom(func(t *rapid.T) functional.Result[T, E] {
		return functional.Err[T](errGen.Draw(t, "error"))
	})
}

// IdentityGen generates Identity[T] values.
func IdentityGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Identity[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Identity[T] {
		return functional.NewIdentity(valueGen.Draw(t, "value"))
	})
}
