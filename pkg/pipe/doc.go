// Package pipe provides a minimal fluent Chain[T, E] for synchronous
// composition of res.Result values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then: compose result-returning functions, short-circuiting on err
// - Map/Tee: transform or observe the ok value
// - Or: prefer the first ok chain among alternatives
// - Finally: reduce to a concrete value via handlers
//
// Pipe is ideal where lightweight synchronous chaining improves readability
// over branching on every intermediate result.
package pipe
