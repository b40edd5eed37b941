// Package semigroup defines the associative-combination capability used by
// either.Validate to accumulate failures.
package semigroup
