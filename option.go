package functional

import "iter"

// Option represents an optional value that may or may not be present.
// It provides a type-safe alternative to nil pointers.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr creates an Option from a pointer, mapping nil to None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// IsSomeAnd returns true if the Option contains a value and the value
// satisfies the predicate.
func (o Option[T]) IsSomeAnd(predicate func(T) bool) bool {
	return o.present && predicate(o.value)
}

// Unwrap returns the contained value or panics if empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("called Unwrap on None")
	}
	return o.value
}

// UnwrapWith returns the contained value, or panics with the error produced
// by errFn if empty.
func (o Option[T]) UnwrapWith(errFn func() error) T {
	if !o.present {
		panic(errFn())
	}
	return o.value
}

// Expect returns the contained value, or panics with exactly msg if empty.
// By convention the message reads naturally after "should", for example
// "config should be present".
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(msg)
	}
	return o.value
}

// ExpectFunc returns the contained value, or panics with the message
// produced by msgFn if empty.
func (o Option[T]) ExpectFunc(msgFn func() string) T {
	if !o.present {
		panic(msgFn())
	}
	return o.value
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes a default.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// UnwrapOrZero returns the contained value or the zero value of T.
func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// UnwrapUnchecked returns the stored value without checking presence.
// For None this is the zero value of T. It carries no safety guarantee and
// is intended only for use after an external IsSome check.
func (o Option[T]) UnwrapUnchecked() T {
	return o.value
}

// Value returns the value and a boolean indicating presence.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.present
}

// ToPtr converts the Option to a pointer, mapping None to nil.
func (o Option[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

// Filter returns the Option unchanged if it contains a value satisfying the
// predicate, None otherwise.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Map applies a type-preserving function to the contained value if present.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if o.present {
		return Some(fn(o.value))
	}
	return o
}

// And returns other if the Option contains a value, None otherwise.
func (o Option[T]) And(other Option[T]) Option[T] {
	if o.present {
		return other
	}
	return None[T]()
}

// Or returns the Option if it contains a value, other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

// OrElse returns the Option if it contains a value, the Option produced by
// fn otherwise.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return fn()
}

// Xor returns whichever of the two Options contains a value if exactly one
// does, None otherwise.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.present && !other.present:
		return o
	case !o.present && other.present:
		return other
	default:
		return None[T]()
	}
}

// Tap calls fn with the Option and returns the Option unchanged. It is used
// to insert side effects into a chain without altering it.
func (o Option[T]) Tap(fn func(Option[T])) Option[T] {
	fn(o)
	return o
}

// TapSome calls fn with the contained value if present and returns the
// Option unchanged.
func (o Option[T]) TapSome(fn func(T)) Option[T] {
	if o.present {
		fn(o.value)
	}
	return o
}

// TapNone calls fn if the Option is empty and returns the Option unchanged.
func (o Option[T]) TapNone(fn func()) Option[T] {
	if !o.present {
		fn()
	}
	return o
}

// Match executes exactly one of the two branches based on presence.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// All returns an iterator over the Option: one element for Some, none for
// None. The sequence is restartable.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// ToSlice converts the Option to a slice (empty or single element).
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// MapOption applies a transformation function to the contained value.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// MapOptionOr applies fn to the contained value, or returns defaultValue if
// empty.
func MapOptionOr[T, U any](o Option[T], defaultValue U, fn func(T) U) U {
	if o.present {
		return fn(o.value)
	}
	return defaultValue
}

// MapOptionOrElse applies fn to the contained value, or computes a default
// if empty.
func MapOptionOrElse[T, U any](o Option[T], defaultFn func() U, fn func(T) U) U {
	if o.present {
		return fn(o.value)
	}
	return defaultFn()
}

// MapOptionOrZero applies fn to the contained value, or returns the zero
// value of U if empty.
func MapOptionOrZero[T, U any](o Option[T], fn func(T) U) U {
	if o.present {
		return fn(o.value)
	}
	var zero U
	return zero
}

// MapOptionPtr applies a pointer-returning function to the contained value,
// collapsing a nil result to None.
func MapOptionPtr[T, U any](o Option[T], fn func(T) *U) Option[U] {
	if o.present {
		return FromPtr(fn(o.value))
	}
	return None[U]()
}

// FlatMapOption applies a function that returns an Option, without double
// wrapping.
func FlatMapOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}

// AndThenOption is an alias for FlatMapOption.
func AndThenOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	return FlatMapOption(o, fn)
}

// AndOption returns other if o contains a value, None otherwise.
func AndOption[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.present {
		return other
	}
	return None[U]()
}

// ZipOption pairs the values of two Options, yielding None if either is
// empty.
func ZipOption[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.present && b.present {
		return Some(NewPair(a.value, b.value))
	}
	return None[Pair[A, B]]()
}

// ZipOptionWith combines the values of two Options with fn, yielding None
// if either is empty.
func ZipOptionWith[A, B, C any](a Option[A], b Option[B], fn func(A, B) C) Option[C] {
	if a.present && b.present {
		return Some(fn(a.value, b.value))
	}
	return None[C]()
}

// FlattenOption removes one level of Option nesting.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if o.present {
		return o.value
	}
	return None[T]()
}

// OkOr converts an Option to a Result, using err for None.
func OkOr[E, T any](o Option[T], err E) Result[T, E] {
	if o.present {
		return Ok[E](o.value)
	}
	return Err[T](err)
}

// OkOrElse converts an Option to a Result, computing the error for None.
func OkOrElse[E, T any](o Option[T], errFn func() E) Result[T, E] {
	if o.present {
		return Ok[E](o.value)
	}
	return Err[T](errFn())
}

// TransposeOption swaps the nesting of an Option of a Result into a Result
// of an Option: None becomes Ok(None), Some(Ok(x)) becomes Ok(Some(x)) and
// Some(Err(e)) becomes Err(e).
func TransposeOption[T, E any](o Option[Result[T, E]]) Result[Option[T], E] {
	if !o.present {
		return Ok[E](None[T]())
	}
	if o.value.ok {
		return Ok[E](Some(o.value.value))
	}
	return Err[Option[T]](o.value.err)
}

// MatchOption executes exactly one of the two branches and returns its
// result.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// CollectOptions walks a sequence of Options collecting the contained
// values. It stops at the first None and returns None immediately without
// consuming the rest of the sequence; otherwise it returns Some of the
// collected values.
func CollectOptions[T any](seq iter.Seq[Option[T]]) Option[[]T] {
	values := []T{}
	for o := range seq {
		if !o.present {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// FromOptions is an alias for CollectOptions.
func FromOptions[T any](seq iter.Seq[Option[T]]) Option[[]T] {
	return CollectOptions(seq)
}
