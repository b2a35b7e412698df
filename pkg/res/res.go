package res

import "github.com/ib-77/opt3/pkg/opt"

// Result holds exactly one of a success value of type T or an error value
// of type E. A result constructed as Ok never exposes an error and vice
// versa. The zero value is Err of E's zero value.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// UnwrapError is the panic payload of Unwrap and UnwrapErr on the wrong
// state.
type UnwrapError struct {
	msg string
}

func (e *UnwrapError) Error() string {
	return e.msg
}

// Ok wraps a success value.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err wraps an error value.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk returns true if the result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the result holds an error value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value or panics with *UnwrapError on an Err
// result. Prefer UnwrapOr or Match.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&UnwrapError{msg: "tried to unwrap an ok value but result is err"})
	}
	return r.value
}

// UnwrapOr returns the success value if present, otherwise def. Never
// panics.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapErr returns the error value or panics with *UnwrapError on an Ok
// result.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&UnwrapError{msg: "tried to unwrap an err value but result is ok"})
	}
	return r.err
}

// UnwrapErrOr returns the error value if present, otherwise def. Never
// panics.
func (r Result[T, E]) UnwrapErrOr(def E) E {
	if !r.ok {
		return r.err
	}
	return def
}

// OkOption converts to an option of the success side, discarding the error.
// The opt nil policy applies: an Ok holding nil converts to None.
func (r Result[T, E]) OkOption() opt.Option[T] {
	if r.ok {
		return opt.Some(r.value)
	}
	return opt.None[T]()
}

// ErrOption converts to an option of the error side, discarding the success
// value.
func (r Result[T, E]) ErrOption() opt.Option[E] {
	if !r.ok {
		return opt.Some(r.err)
	}
	return opt.None[E]()
}

// Matcher carries the two handlers of Match. Both must be set.
type Matcher[T, E, R any] struct {
	OnOk  func(v T) R
	OnErr func(e E) R
}

// Match calls exactly one handler depending on the result state and returns
// its result.
func Match[T, E, R any](r Result[T, E], m Matcher[T, E, R]) R {
	if r.ok {
		return m.OnOk(r.value)
	}
	return m.OnErr(r.err)
}

// Map transforms the success value; an Err input passes through with its
// error untouched and onOk uninvoked.
func Map[In, Out, E any](r Result[In, E], onOk func(v In) Out) Result[Out, E] {
	if r.ok {
		return Ok[Out, E](onOk(r.value))
	}
	return Err[Out](r.err)
}

// MapErr transforms the error value; an Ok input passes through untouched.
func MapErr[T, In, Out any](r Result[T, In], onErr func(e In) Out) Result[T, Out] {
	if r.ok {
		return Ok[T, Out](r.value)
	}
	return Err[T](onErr(r.err))
}

// And returns other if r is Ok, else propagates r's error.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.ok {
		return other
	}
	return Err[U](r.err)
}

// AndThen invokes onOk with the success value and returns its result; an
// Err input short-circuits without invoking onOk.
func AndThen[In, Out, E any](r Result[In, E], onOk func(v In) Result[Out, E]) Result[Out, E] {
	if r.ok {
		return onOk(r.value)
	}
	return Err[Out](r.err)
}
