package pipe

import "github.com/ib-77/opt3/pkg/res"

// Chain wraps a res.Result to enable fluent chaining.
type Chain[T, E any] struct {
	res res.Result[T, E]
}

// Start creates a new chain from a res.Result.
func Start[T, E any](r res.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from an ok value.
func FromValue[T, E any](v T) Chain[T, E] {
	return Start(res.Ok[T, E](v))
}

// Result returns the underlying res.Result.
func (c Chain[T, E]) Result() res.Result[T, E] {
	return c.res
}

// Then composes a function that already returns a res.Result.
func (c Chain[T, E]) Then(onOk func(v T) res.Result[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{res: onOk(c.res.Unwrap())}
}

// Map transforms the ok value in place.
func (c Chain[T, E]) Map(onOk func(v T) T) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{res: res.Ok[T, E](onOk(c.res.Unwrap()))}
}

// Tee triggers a side effect on ok only, leaving the chain unchanged.
func (c Chain[T, E]) Tee(onOk func(v T)) Chain[T, E] {
	if c.res.IsOk() {
		onOk(c.res.Unwrap())
	}
	return c
}

// Or returns the first ok chain of the receiver and alternative; when both
// are err, the receiver wins.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// Finally collapses the chain into a final value via res.Match.
func Finally[T, E, R any](c Chain[T, E], m res.Matcher[T, E, R]) R {
	return res.Match(c.res, m)
}
