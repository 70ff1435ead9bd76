// Package adder provides a folding container whose combining operation is
// the built-in + operator. New starts from the zero value, so Collect can
// sum a sequence directly, matching the zero-value construction idiom of
// package impl.
package adder
