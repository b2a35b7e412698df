// Package res provides Result[T, E], a container holding exactly one of a
// success value or an error value. The error side is a free type parameter,
// not the error interface, so any displayable payload can travel on it.
//
// Key operations:
// - Ok/Err: construct Result[T, E]
// - IsOk/IsErr/Unwrap/UnwrapOr/UnwrapErr/UnwrapErrOr: inspect and extract
// - Match: exhaustive handler dispatch
// - Map/MapErr: transform one side, the other passes through untouched
// - And/AndThen: short-circuiting composition
// - OkOption/ErrOption: convert to opt.Option, discarding the other side
//
// Result is a peer of opt.Option, not built on top of it; the two only meet
// in the conversion methods.
package res
