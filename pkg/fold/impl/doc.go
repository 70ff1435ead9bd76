// Package impl provides the static-dispatch folding containers. The
// combining operation is fixed per type instantiation through a Combiner or
// Reducible type parameter, so calls resolve at compile time and containers
// can be built from the zero value alone.
//
// Common usage:
// - New/NewDefault: create a Folder from an initial or the zero value
// - Collect: fold an entire sequence into a fresh zero-valued Folder
// - Fold/Extend/ExtendSlice: fold in single values, sequences, or slices
// - Peek/Snapshot: observe the running value without consuming
// - IntoInner: consume the container and take the final value
// - NewReducer/CollectReduce: same-typed reduction without an initial value
//
// The package mirrors dyn operation for operation; switching between the
// two dispatch styles is a construction-site change only.
package impl
