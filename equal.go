package functional

import "reflect"

// The *Like interfaces below are implemented by every instantiation of the
// corresponding container type, regardless of its type arguments. They let
// equality recurse through nested containers and let the free predicates
// test family membership without knowing the inner types.

type optionLike interface {
	optionValue() (any, bool)
}

type resultLike interface {
	resultValue() (value any, err any, ok bool)
}

type identityLike interface {
	identityValue() any
}

func (o Option[T]) optionValue() (any, bool) {
	return o.value, o.present
}

func (r Result[T, E]) resultValue() (any, any, bool) {
	return r.value, r.err, r.ok
}

func (i Identity[T]) identityValue() any {
	return i.value
}

// equalValues implements the shared equality rule: containers of the same
// family compare recursively, a container never equals a non-container, and
// plain values compare by identity, not deep structure. Values whose
// dynamic types differ or are not comparable are unequal.
func equalValues(x, y any) bool {
	if xo, ok := x.(optionLike); ok {
		yo, ok := y.(optionLike)
		if !ok {
			return false
		}
		xv, xp := xo.optionValue()
		yv, yp := yo.optionValue()
		if xp != yp {
			return false
		}
		return !xp || equalValues(xv, yv)
	}
	if xr, ok := x.(resultLike); ok {
		yr, ok := y.(resultLike)
		if !ok {
			return false
		}
		xv, xe, xok := xr.resultValue()
		yv, ye, yok := yr.resultValue()
		if xok != yok {
			return false
		}
		if xok {
			return equalValues(xv, yv)
		}
		return equalValues(xe, ye)
	}
	if xi, ok := x.(identityLike); ok {
		yi, ok := y.(identityLike)
		if !ok {
			return false
		}
		return equalValues(xi.identityValue(), yi.identityValue())
	}
	if isContainer(y) {
		return false
	}
	return identical(x, y)
}

func isContainer(v any) bool {
	switch v.(type) {
	case optionLike, resultLike, identityLike:
		return true
	}
	return false
}

func identical(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	tx := reflect.TypeOf(x)
	if tx != reflect.TypeOf(y) || !tx.Comparable() {
		return false
	}
	return x == y
}

// Equal reports whether two Options are equal: both None, or both Some with
// equal values per the shared equality rule.
func (o Option[T]) Equal(other Option[T]) bool {
	return EqualOptions(o, other)
}

// EqualOptions reports whether two Options, possibly of different inner
// types, are equal per the shared equality rule.
func EqualOptions[T, U any](a Option[T], b Option[U]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || equalValues(any(a.value), any(b.value))
}

// EqualOptionsFunc is EqualOptions with a custom value comparator. A nil
// comparator falls back to the shared equality rule.
func EqualOptionsFunc[T, U any](a Option[T], b Option[U], eq func(T, U) bool) bool {
	if a.present != b.present {
		return false
	}
	if !a.present {
		return true
	}
	if eq != nil {
		return eq(a.value, b.value)
	}
	return equalValues(any(a.value), any(b.value))
}

// Equal reports whether two Results are equal: both Ok with equal success
// values, or both Err with equal error values, per the shared equality
// rule.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	return EqualResults(r, other)
}

// EqualResults reports whether two Results, possibly of different inner
// types, are equal per the shared equality rule.
func EqualResults[T, E, U, F any](a Result[T, E], b Result[U, F]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return equalValues(any(a.value), any(b.value))
	}
	return equalValues(any(a.err), any(b.err))
}

// EqualResultsFunc is EqualResults with custom comparators for the success
// and error channels. Each nil comparator independently falls back to the
// shared equality rule for its channel.
func EqualResultsFunc[T, E, U, F any](a Result[T, E], b Result[U, F], okEq func(T, U) bool, errEq func(E, F) bool) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		if okEq != nil {
			return okEq(a.value, b.value)
		}
		return equalValues(any(a.value), any(b.value))
	}
	if errEq != nil {
		return errEq(a.err, b.err)
	}
	return equalValues(any(a.err), any(b.err))
}

// Equal reports whether two Identities hold equal values per the shared
// equality rule.
func (i Identity[T]) Equal(other Identity[T]) bool {
	return EqualIdentities(i, other)
}

// EqualIdentities reports whether two Identities, possibly of different
// inner types, hold equal values per the shared equality rule.
func EqualIdentities[T, U any](a Identity[T], b Identity[U]) bool {
	return equalValues(any(a.value), any(b.value))
}

// EqualIdentitiesFunc is EqualIdentities with a custom value comparator. A
// nil comparator falls back to the shared equality rule.
func EqualIdentitiesFunc[T, U any](a Identity[T], b Identity[U], eq func(T, U) bool) bool {
	if eq != nil {
		return eq(a.value, b.value)
	}
	return equalValues(any(a.value), any(b.value))
}

// IsOption reports whether v is an Option of any inner type.
func IsOption(v any) bool {
	_, ok := v.(optionLike)
	return ok
}

// IsSome reports whether v is an Option containing a value.
func IsSome(v any) bool {
	o, ok := v.(optionLike)
	if !ok {
		return false
	}
	_, present := o.optionValue()
	return present
}

// IsNone reports whether v is an empty Option.
func IsNone(v any) bool {
	o, ok := v.(optionLike)
	if !ok {
		return false
	}
	_, present := o.optionValue()
	return !present
}

// IsResult reports whether v is a Result of any inner types.
func IsResult(v any) bool {
	_, ok := v.(resultLike)
	return ok
}

// IsOk reports whether v is a successful Result.
func IsOk(v any) bool {
	r, ok := v.(resultLike)
	if !ok {
		return false
	}
	_, _, success := r.resultValue()
	return success
}

// IsErr reports whether v is a failed Result.
func IsErr(v any) bool {
	r, ok := v.(resultLike)
	if !ok {
		return false
	}
	_, _, success := r.resultValue()
	return !success
}

// IsIdentity reports whether v is an Identity of any inner type.
func IsIdentity(v any) bool {
	_, ok := v.(identityLike)
	return ok
}
