// Package ord defines the total-ordering capability with standard three-way
// compare semantics, plus the usual derived helpers (Reverse, Min, Max,
// Clamp, Between).
package ord
