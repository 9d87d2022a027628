package functional

import "iter"

// Identity is a trivial wrapper that always holds exactly one value. It
// shares Option's method surface so optionality can be added to or removed
// from call sites with minimal churn.
type Identity[T any] struct {
	value T
}

// NewIdentity creates an Identity holding value.
func NewIdentity[T any](value T) Identity[T] {
	return Identity[T]{value: value}
}

// Get returns the held value.
func (i Identity[T]) Get() T {
	return i.value
}

// Value returns the held value and true; an Identity is never absent.
func (i Identity[T]) Value() (T, bool) {
	return i.value, true
}

// Unwrap returns the held value. It never panics.
func (i Identity[T]) Unwrap() T {
	return i.value
}

// Expect returns the held value; the message is never used.
func (i Identity[T]) Expect(msg string) T {
	return i.value
}

// ExpectFunc returns the held value; msgFn is never called.
func (i Identity[T]) ExpectFunc(msgFn func() string) T {
	return i.value
}

// UnwrapOr returns the held value; the default is never used.
func (i Identity[T]) UnwrapOr(defaultValue T) T {
	return i.value
}

// UnwrapOrElse returns the held value; fn is never called.
func (i Identity[T]) UnwrapOrElse(fn func() T) T {
	return i.value
}

// UnwrapOrZero returns the held value.
func (i Identity[T]) UnwrapOrZero() T {
	return i.value
}

// ToPtr returns a pointer to the held value.
func (i Identity[T]) ToPtr() *T {
	return &i.value
}

// Map applies a type-preserving function to the held value.
func (i Identity[T]) Map(fn func(T) T) Identity[T] {
	return Identity[T]{value: fn(i.value)}
}

// Tap calls fn with the Identity and returns it unchanged.
func (i Identity[T]) Tap(fn func(Identity[T])) Identity[T] {
	fn(i)
	return i
}

// TapIdentity calls fn with the held value and returns the Identity
// unchanged.
func (i Identity[T]) TapIdentity(fn func(T)) Identity[T] {
	fn(i.value)
	return i
}

// All returns an iterator yielding the single held value. The sequence is
// restartable.
func (i Identity[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(i.value)
	}
}

// ToSlice converts the Identity to a single-element slice.
func (i Identity[T]) ToSlice() []T {
	return []T{i.value}
}

// MapIdentity applies a transformation function to the held value.
func MapIdentity[T, U any](i Identity[T], fn func(T) U) Identity[U] {
	return Identity[U]{value: fn(i.value)}
}

// MapIdentityOr applies fn to the held value; the default is never used but
// keeps the call shape aligned with Option.
func MapIdentityOr[T, U any](i Identity[T], defaultValue U, fn func(T) U) U {
	return fn(i.value)
}

// MapIdentityOrElse applies fn to the held value; defaultFn is never called.
func MapIdentityOrElse[T, U any](i Identity[T], defaultFn func() U, fn func(T) U) U {
	return fn(i.value)
}

// FlatMapIdentity applies a function that returns an Identity, without
// double wrapping.
func FlatMapIdentity[T, U any](i Identity[T], fn func(T) Identity[U]) Identity[U] {
	return fn(i.value)
}

// AndThenIdentity is an alias for FlatMapIdentity.
func AndThenIdentity[T, U any](i Identity[T], fn func(T) Identity[U]) Identity[U] {
	return FlatMapIdentity(i, fn)
}

// ZipIdentity pairs the values of two Identities.
func ZipIdentity[A, B any](a Identity[A], b Identity[B]) Identity[Pair[A, B]] {
	return Identity[Pair[A, B]]{value: NewPair(a.value, b.value)}
}

// ZipIdentityWith combines the values of two Identities with fn.
func ZipIdentityWith[A, B, C any](a Identity[A], b Identity[B], fn func(A, B) C) Identity[C] {
	return Identity[C]{value: fn(a.value, b.value)}
}

// FlattenIdentity removes one level of Identity nesting.
func FlattenIdentity[T any](i Identity[Identity[T]]) Identity[T] {
	return i.value
}

// JoinIdentity is an alias for FlattenIdentity.
func JoinIdentity[T any](i Identity[Identity[T]]) Identity[T] {
	return FlattenIdentity(i)
}

// IdentityOkOr converts an Identity to a Result. The result is always Ok;
// the error argument only fixes the error type.
func IdentityOkOr[E, T any](i Identity[T], err E) Result[T, E] {
	return Ok[E](i.value)
}

// IdentityOkOrElse converts an Identity to a Result. The result is always
// Ok; errFn is never called.
func IdentityOkOrElse[E, T any](i Identity[T], errFn func() E) Result[T, E] {
	return Ok[E](i.value)
}
