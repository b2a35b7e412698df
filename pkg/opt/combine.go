package opt

// JoinN structs carry the two handlers of the CombineN family: OnValues
// receives every unwrapped value positionally when all inputs are present,
// OnMissing receives the absent positions otherwise. Both must be set.

type Join2[A, B, R any] struct {
	OnValues  func(a A, b B) R
	OnMissing func(m Missing) R
}

type Join3[A, B, C, R any] struct {
	OnValues  func(a A, b B, c C) R
	OnMissing func(m Missing) R
}

type Join4[A, B, C, D, R any] struct {
	OnValues  func(a A, b B, c C, d D) R
	OnMissing func(m Missing) R
}

type Join5[A, B, C, D, E, R any] struct {
	OnValues  func(a A, b B, c C, d D, e E) R
	OnMissing func(m Missing) R
}

// JoinAll is the handler pair of CombineAll; OnValues receives the unwrapped
// values in input order.
type JoinAll[T, R any] struct {
	OnValues  func(values []T) R
	OnMissing func(m Missing) R
}

// Combine2 dispatches on the joint presence of two options: OnValues with
// both values if both are present, OnMissing with the absent positions
// otherwise. Absence never stops at the first hit; every absent position is
// reported, in ascending order.
func Combine2[A, B, R any](a Option[A], b Option[B], join Join2[A, B, R]) R {
	if m, all := absentOf(a.some, b.some); !all {
		return join.OnMissing(m)
	}
	return join.OnValues(a.value, b.value)
}

// Combine3 is Combine2 over three typed options.
func Combine3[A, B, C, R any](a Option[A], b Option[B], c Option[C],
	join Join3[A, B, C, R]) R {

	if m, all := absentOf(a.some, b.some, c.some); !all {
		return join.OnMissing(m)
	}
	return join.OnValues(a.value, b.value, c.value)
}

// Combine4 is Combine2 over four typed options.
func Combine4[A, B, C, D, R any](a Option[A], b Option[B], c Option[C], d Option[D],
	join Join4[A, B, C, D, R]) R {

	if m, all := absentOf(a.some, b.some, c.some, d.some); !all {
		return join.OnMissing(m)
	}
	return join.OnValues(a.value, b.value, c.value, d.value)
}

// Combine5 is Combine2 over five typed options.
func Combine5[A, B, C, D, E, R any](a Option[A], b Option[B], c Option[C], d Option[D],
	e Option[E], join Join5[A, B, C, D, E, R]) R {

	if m, all := absentOf(a.some, b.some, c.some, d.some, e.some); !all {
		return join.OnMissing(m)
	}
	return join.OnValues(a.value, b.value, c.value, d.value, e.value)
}

// CombineAll is the dynamically sized sibling of the CombineN family for a
// homogeneous slice of options. The missing bookkeeping and the Describe
// label fallback are identical; positions beyond the fifth label as
// "<unspecified value>" unless named by the caller.
func CombineAll[T, R any](opts []Option[T], join JoinAll[T, R]) R {
	present := make([]bool, len(opts))
	for i, o := range opts {
		present[i] = o.some
	}

	if m, all := absentOf(present...); !all {
		return join.OnMissing(m)
	}

	values := make([]T, len(opts))
	for i, o := range opts {
		values[i] = o.value
	}
	return join.OnValues(values)
}
