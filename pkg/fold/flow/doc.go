// Package flow provides channel-driven helpers for feeding folding
// containers from concurrent producers. The containers stay single-owner
// and lock-free; producers serialize through channels and each worker folds
// into a private container, merged afterward with an explicit reduction
// step.
//
// Common usage:
// - Feed: drain a channel into one folder under a context
// - Parallel: one folder per worker, partials merged on completion
package flow
