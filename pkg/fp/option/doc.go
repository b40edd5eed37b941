// Package option provides Option[A], a two-variant container for a value
// that may be absent, with the usual combinators as free generic functions.
//
// Common usage:
// - Some/None/Of/FromNullable/FromPredicate: construct
// - Map/FlatMap/Ap: compose while Some, short-circuit on None
// - Match/GetOrElse: collapse into a plain value
// - Tap: success-only side effects
// - SequenceList/TraverseList: in-order list traversal with short-circuit
//
// For failure-carrying variants see packages either and taskeither.
package option
