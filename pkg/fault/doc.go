// Package fault provides Fault, an error value carrying a message and an
// optional cause, forming a singly linked chain of predecessors. Fault
// implements the error interface, so chains interoperate with errors.Is and
// errors.As through Unwrap.
//
// Key operations:
// - New: construct a Fault from any displayable value
// - Wrap: return a new Fault with the cause slot set; the receiver is
//   untouched, so wrapping never rewrites the history of an existing value
// - Flatten: the chain as an outermost-first slice
// - Text/Error: the chain messages joined with ": "
//
// Chains are linear by convention only. No cycle detection is performed;
// a Fault wrapped into its own chain makes Flatten and Text loop forever.
package fault
