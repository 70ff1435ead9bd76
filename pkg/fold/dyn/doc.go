// Package dyn provides the dynamic-dispatch folding containers. The
// combining function is a runtime value fixed at construction, so one
// container type covers any output/input pairing.
//
// Common usage:
// - New: create a Folder from an initial value and a combining function
// - Fold/Extend/ExtendSlice: fold in single values, sequences, or slices
// - Peek/Snapshot: observe the running value without consuming
// - IntoInner: consume the container and take the final value
// - NewReducer/NewReducerFrom: same-typed reduction without an initial value
//
// For compile-time resolved combining functions and zero-value
// construction, see package impl.
package dyn
