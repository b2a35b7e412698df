// Package opt provides Option[T], a container holding either a present value
// or nothing, together with fixed-arity combinators that inspect several
// options at once.
//
// Key operations:
// - Some/None/FromNullable/FromPtr: construct Option[T]
// - IsSome/IsNone/Get/UnwrapOr/Unwrap: inspect and extract
// - Match: exhaustive handler dispatch without exposing the raw state
// - Map: transform the present value, absence passes through
// - Combine2..Combine5: dispatch on joint presence of 2..5 typed options
// - CombineAll: same dispatch over a homogeneous slice of options
//
// Nil policy: Some of a nil value (nil interface, pointer, map, slice,
// function or channel) constructs None, not a present option holding nil.
// Callers depend on this conflation of "present but nil" with "absent";
// it is deliberate, not an oversight.
package opt
