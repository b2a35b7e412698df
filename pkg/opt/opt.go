package opt

import "reflect"

// Option holds either a present value of type T or nothing. The zero value
// is None.
type Option[T any] struct {
	value T
	some  bool
}

// UnwrapError is the panic payload of Unwrap on an absent option.
type UnwrapError struct {
	msg string
}

func (e *UnwrapError) Error() string {
	return e.msg
}

// Some wraps a present value. A nil value constructs None, see the package
// nil policy.
func Some[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Option[T]{value: v, some: true}
}

// None constructs an absent option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNullable dispatches on whether v is nil: None for nil, Some otherwise.
func FromNullable[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Option[T]{value: v, some: true}
}

// FromPtr converts a possibly nil pointer: None for nil, else Some of the
// pointed-to value.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the held value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// UnwrapOr returns the held value if present, otherwise def. Never panics.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// Unwrap returns the held value or panics with *UnwrapError if the option
// is absent. Prefer UnwrapOr, Get or Match.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(&UnwrapError{msg: "tried to unwrap a present value but option is none"})
	}
	return o.value
}

// Matcher carries the two handlers of Match. Both must be set.
type Matcher[T, R any] struct {
	OnSome func(v T) R
	OnNone func() R
}

// Match calls exactly one handler depending on the option state and returns
// its result.
func Match[T, R any](o Option[T], m Matcher[T, R]) R {
	if o.some {
		return m.OnSome(o.value)
	}
	return m.OnNone()
}

// Map transforms the present value into a new option; an absent input
// produces an absent output without invoking onSome.
func Map[In, Out any](o Option[In], onSome func(v In) Out) Option[Out] {
	if o.some {
		return Some(onSome(o.value))
	}
	return None[Out]()
}

// Equal reports structural equality: two nones are equal, two somes are
// equal iff their values are, some and none never are.
func Equal[T comparable](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}

// IsNil reports whether i is nil or holds a nil pointer, map, slice,
// function or channel.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
