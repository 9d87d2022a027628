// Package concurrency bridges Result to asynchronous computation. A Future
// is the promise-shaped view of a Result: waiting on it always yields a
// Result and never panics, and a Result can be lifted into an
// already-completed Future.
package concurrency

import (
	"context"
	"sync"

	functional "github.com/auth-platform/functional-go"
)

// Future represents an asynchronous computation producing a Result.
type Future[T any] struct {
	result functional.Result[T, error]
	done   chan struct{}
}

// NewFuture creates a future from an async operation.
func NewFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{
		done: make(chan struct{}),
	}
	go func() {
		f.result = functional.TryFunc(fn())
		close(f.done)
	}()
	return f
}

// NewFutureWithContext creates a future with context support.
func NewFutureWithContext[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{
		done: make(chan struct{}),
	}
	go func() {
		f.result = functional.TryFunc(fn(ctx))
		close(f.done)
	}()
	return f
}

// FromResult creates a completed future carrying r. This is the lifting
// direction: an Err result yields a future whose Wait reports that error.
func FromResult[T any](r functional.Result[T, error]) *Future[T] {
	f := &Future[T]{
		done:   make(chan struct{}),
		result: r,
	}
	close(f.done)
	return f
}

// Resolve creates a completed future with a value.
func Resolve[T any](value T) *Future[T] {
	return FromResult(functional.Ok[error](value))
}

// Reject creates a completed future with an error.
func Reject[T any](err error) *Future[T] {
	return FromResult(functional.Err[T](err))
}

// Wait blocks until the future completes and returns its Result. It always
// returns, fulfillment as Ok and rejection as Err.
func (f *Future[T]) Wait() functional.Result[T, error] {
	<-f.done
	return f.result
}

// WaitContext blocks until the future completes or the context is
// cancelled, in which case the context error is returned as an Err.
func (f *Future[T]) WaitContext(ctx context.Context) functional.Result[T, error] {
	select {
	case <-f.done:
		return f.result
	case <-ctx.Done():
		return functional.Err[T](ctx.Err())
	}
}

// IsDone returns true if the future has completed.
func (f *Future[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Poll returns the Result if the future has completed, None otherwise.
func (f *Future[T]) Poll() functional.Option[functional.Result[T, error]] {
	if f.IsDone() {
		return functional.Some(f.result)
	}
	return functional.None[functional.Result[T, error]]()
}

// Map transforms the future value.
func Map[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return NewFuture(func() (U, error) {
		result := f.Wait()
		if result.IsErr() {
			var zero U
			return zero, result.UnwrapErr()
		}
		return fn(result.UnwrapUnchecked()), nil
	})
}

// FlatMap chains futures.
func FlatMap[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	return NewFuture(func() (U, error) {
		result := f.Wait()
		if result.IsErr() {
			var zero U
			return zero, result.UnwrapErr()
		}
		inner := fn(result.UnwrapUnchecked()).Wait()
		if inner.IsErr() {
			var zero U
			return zero, inner.UnwrapErr()
		}
		return inner.UnwrapUnchecked(), nil
	})
}

// All waits for all futures to complete.
func All[T any](futures ...*Future[T]) []functional.Result[T, error] {
	results := make([]functional.Result[T, error], len(futures))
	var wg sync.WaitGroup
	wg.Add(len(futures))
	for i, f := range futures {
		go func(idx int, fut *Future[T]) {
			defer wg.Done()
			results[idx] = fut.Wait()
		}(i, f)
	}
	wg.Wait()
	return results
}

// Race returns the result of the first future to complete.
func Race[T any](futures ...*Future[T]) functional.Result[T, error] {
	result := make(chan functional.Result[T, error], 1)
	for _, f := range futures {
		go func(fut *Future[T]) {
			select {
			case result <- fut.Wait():
			default:
			}
		}(f)
	}
	return <-result
}
