// Package minmax provides selection containers that keep only the smallest
// value, the largest value, or both extremes of everything reduced into
// them.
//
// Common usage:
// - NewMin/NewMax: empty containers, first value absorbed as-is
// - NewMinFrom/NewMaxFrom: seeded containers
// - NewMinNum/NewMaxNum: numeric containers seeded with the type bound,
//   so Peek and IntoInner never report empty
// - NewMinMax: track both extremes at once
// - Reduce/Eval/Extend/ExtendSlice: fold in values
//
// Comparison is the built-in < and > on ordered types; unordered values
// (float NaN) never displace a held value.
package minmax
