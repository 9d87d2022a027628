package functional

import (
	"fmt"
	"iter"
)

// Result represents the outcome of an operation that may fail. It contains
// either a success value of type T or an error value of type E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok creates a successful Result. The error type parameter comes first so
// callers can write Ok[error](value) and let T be inferred.
func Ok[E, T any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err creates a failed Result. The value type parameter comes first so
// callers can write Err[int](err) and let E be inferred.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// Try wraps a function that may return an error. This is the designated
// bridge from error-returning code.
func Try[T any](fn func() (T, error)) Result[T, error] {
	value, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](value)
}

// TryFunc wraps a function call with error handling.
func TryFunc[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](value)
}

// Catch calls fn and converts a panic into an Err. A recovered value that is
// not an error is formatted into one.
func Catch[T any](fn func() T) (result Result[T, error]) {
	defer func() {
		if rec := recover(); rec != nil {
			if err, ok := rec.(error); ok {
				result = Err[T](err)
			} else {
				result = Err[T](fmt.Errorf("%v", rec))
			}
		}
	}()
	return Ok[error](fn())
}

// FromPtrOr creates a Result from a pointer, mapping nil to Err(err).
func FromPtrOr[E, T any](err E, ptr *T) Result[T, E] {
	if ptr == nil {
		return Err[T](err)
	}
	return Ok[E](*ptr)
}

// FromPtrOrElse creates a Result from a pointer, computing the error for
// nil.
func FromPtrOrElse[E, T any](errFn func() E, ptr *T) Result[T, E] {
	if ptr == nil {
		return Err[T](errFn())
	}
	return Ok[E](*ptr)
}

// IsOk returns true if the Result is successful.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd returns true if the Result is successful and the value satisfies
// the predicate.
func (r Result[T, E]) IsOkAnd(predicate func(T) bool) bool {
	return r.ok && predicate(r.value)
}

// IsErrAnd returns true if the Result is a failure and the error satisfies
// the predicate.
func (r Result[T, E]) IsErrAnd(predicate func(E) bool) bool {
	return !r.ok && predicate(r.err)
}

// Unwrap returns the success value, or panics with the raw error value on
// failure. The error is panicked as-is, never wrapped.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(r.err)
	}
	return r.value
}

// UnwrapWith returns the success value, or panics with the error produced
// by errFn on failure.
func (r Result[T, E]) UnwrapWith(errFn func() error) T {
	if !r.ok {
		panic(errFn())
	}
	return r.value
}

// Expect returns the success value, or panics with exactly msg on failure.
// The carried error is ignored.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(msg)
	}
	return r.value
}

// ExpectFunc returns the success value, or panics with the message produced
// by msgFn on failure.
func (r Result[T, E]) ExpectFunc(msgFn func() string) T {
	if !r.ok {
		panic(msgFn())
	}
	return r.value
}

// UnwrapErr returns the error value, or panics on success.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic("called UnwrapErr on Ok")
	}
	return r.err
}

// UnwrapErrWith returns the error value, or panics with the error produced
// by errFn on success.
func (r Result[T, E]) UnwrapErrWith(errFn func() error) E {
	if r.ok {
		panic(errFn())
	}
	return r.err
}

// ExpectErr returns the error value, or panics with exactly msg on success.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(msg)
	}
	return r.err
}

// ExpectErrFunc returns the error value, or panics with the message
// produced by msgFn on success.
func (r Result[T, E]) ExpectErrFunc(msgFn func() string) E {
	if r.ok {
		panic(msgFn())
	}
	return r.err
}

// UnwrapOr returns the success value or a default.
func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse returns the success value or computes a default from the
// error.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// UnwrapOrZero returns the success value or the zero value of T.
func (r Result[T, E]) UnwrapOrZero() T {
	return r.value
}

// UnwrapUnchecked returns the stored success value without checking the
// variant. For Err this is the zero value of T. No safety guarantee.
func (r Result[T, E]) UnwrapUnchecked() T {
	return r.value
}

// UnwrapErrUnchecked returns the stored error value without checking the
// variant. For Ok this is the zero value of E. No safety guarantee.
func (r Result[T, E]) UnwrapErrUnchecked() E {
	return r.err
}

// Value returns the success value and a boolean indicating success.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// ErrValue returns the error value and a boolean indicating failure.
func (r Result[T, E]) ErrValue() (E, bool) {
	return r.err, !r.ok
}

// ToPtr converts the Result to a pointer to the success value, mapping Err
// to nil.
func (r Result[T, E]) ToPtr() *T {
	if r.ok {
		return &r.value
	}
	return nil
}

// Map applies a type-preserving function to the success value. The error
// channel passes through untouched.
func (r Result[T, E]) Map(fn func(T) T) Result[T, E] {
	if r.ok {
		return Ok[E](fn(r.value))
	}
	return r
}

// And returns other if the Result is successful, the failure otherwise.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	if r.ok {
		return other
	}
	return r
}

// Or returns the Result if successful, other otherwise.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// OrElse returns the Result if successful, the Result produced from the
// error otherwise.
func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// Ok converts the Result to an Option of the success value, discarding the
// error.
func (r Result[T, E]) Ok() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Err converts the Result to an Option of the error value, discarding the
// success value.
func (r Result[T, E]) Err() Option[E] {
	if !r.ok {
		return Some(r.err)
	}
	return None[E]()
}

// Tap calls fn with the Result and returns the Result unchanged.
func (r Result[T, E]) Tap(fn func(Result[T, E])) Result[T, E] {
	fn(r)
	return r
}

// TapOk calls fn with the success value if successful and returns the
// Result unchanged.
func (r Result[T, E]) TapOk(fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// TapErr calls fn with the error value on failure and returns the Result
// unchanged.
func (r Result[T, E]) TapErr(fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// Match executes exactly one of the two branches based on the variant.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// All returns an iterator over the Result: one element for Ok, none for
// Err. The sequence is restartable.
func (r Result[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// ToSlice converts the Result to a slice (empty or single element).
func (r Result[T, E]) ToSlice() []T {
	if r.ok {
		return []T{r.value}
	}
	return []T{}
}

// MapResult applies a transformation function to the success value.
func MapResult[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[E](fn(r.value))
	}
	return Err[U](r.err)
}

// MapResultErr applies a transformation function to the error value.
func MapResultErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return Err[T](fn(r.err))
}

// MapResultOr applies fn to the success value, or returns defaultValue on
// failure.
func MapResultOr[T, E, U any](r Result[T, E], defaultValue U, fn func(T) U) U {
	if r.ok {
		return fn(r.value)
	}
	return defaultValue
}

// MapResultOrElse applies fn to the success value, or computes a default
// from the error on failure.
func MapResultOrElse[T, E, U any](r Result[T, E], defaultFn func(E) U, fn func(T) U) U {
	if r.ok {
		return fn(r.value)
	}
	return defaultFn(r.err)
}

// MapResultOrZero applies fn to the success value, or returns the zero
// value of U on failure.
func MapResultOrZero[T, E, U any](r Result[T, E], fn func(T) U) U {
	if r.ok {
		return fn(r.value)
	}
	var zero U
	return zero
}

// MapResultPtrOr applies a pointer-returning function to the success value.
// A nil result becomes Err(defaultErr); a failure passes through unchanged.
func MapResultPtrOr[T, E, U any](r Result[T, E], defaultErr E, fn func(T) *U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	if ptr := fn(r.value); ptr != nil {
		return Ok[E](*ptr)
	}
	return Err[U](defaultErr)
}

// MapResultPtrOrElse applies a pointer-returning function to the success
// value, computing the error for a nil result. A failure passes through
// unchanged.
func MapResultPtrOrElse[T, E, U any](r Result[T, E], errFn func() E, fn func(T) *U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	if ptr := fn(r.value); ptr != nil {
		return Ok[E](*ptr)
	}
	return Err[U](errFn())
}

// FlatMapResult applies a function that returns a Result, without double
// wrapping.
func FlatMapResult[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// AndThenResult is an alias for FlatMapResult.
func AndThenResult[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	return FlatMapResult(r, fn)
}

// AndResult returns other if r is successful, the failure otherwise.
func AndResult[T, E, U any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.ok {
		return other
	}
	return Err[U](r.err)
}

// FlattenResult removes one level of Result nesting.
func FlattenResult[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.ok {
		return r.value
	}
	return Err[T](r.err)
}

// TransposeResult swaps the nesting of a Result of an Option into an Option
// of a Result: Ok(None) becomes None, Ok(Some(x)) becomes Some(Ok(x)) and
// Err(e) becomes Some(Err(e)).
func TransposeResult[T, E any](r Result[Option[T], E]) Option[Result[T, E]] {
	if !r.ok {
		return Some(Err[T](r.err))
	}
	if r.value.present {
		return Some(Ok[E](r.value.value))
	}
	return None[Result[T, E]]()
}

// MatchResult executes exactly one of the two branches and returns its
// result.
func MatchResult[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// CollectResults walks a sequence of Results collecting the success values.
// It stops at the first Err and returns it immediately without consuming
// the rest of the sequence; otherwise it returns Ok of the collected
// values.
func CollectResults[T, E any](seq iter.Seq[Result[T, E]]) Result[[]T, E] {
	values := []T{}
	for r := range seq {
		if !r.ok {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[E](values)
}

// FromResults is an alias for CollectResults.
func FromResults[T, E any](seq iter.Seq[Result[T, E]]) Result[[]T, E] {
	return CollectResults(seq)
}
