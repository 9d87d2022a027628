// Package functional provides algebraic container types for optional values
// and fallible computations: Option, Result and Identity.
//
// Option[T] makes the presence or absence of a value explicit in the type
// system, Result[T, E] does the same for success or failure, and Identity[T]
// is a trivial always-present wrapper that shares Option's method surface so
// optionality can be added or removed with minimal call-site churn.
//
// All three are immutable value types. Combinators never mutate; they return
// a new container, or the receiver unchanged when the operation is a no-op
// for that variant. An absent or failed state propagates through Map and
// FlatMap chains untouched until an explicit recovery (Or, UnwrapOr, OkOr, a
// match) or a terminal unwrap intervenes. Only Unwrap-style terminals can
// panic; every other operation is total.
//
// Operations whose result type differs from the receiver's type parameters
// are package-level functions (MapOption, FlatMapResult, ZipOption, ...)
// because Go methods cannot introduce type parameters.
package functional
