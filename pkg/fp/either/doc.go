// Package either provides Either[E, A], a right-biased two-variant
// container carrying a failure E or a success A, with combinators as free
// generic functions.
//
// Common usage:
// - Left/Right/Of/FromPredicate/FromOption/TryCatch: construct
// - Map/MapLeft/FlatMap/Ap: compose while Right, short-circuit on Left
// - Match/GetOrElse: collapse into a plain value
// - Tap/ChainFirst: success-only side effects
// - Swap: invert the failure/success convention
// - SequenceList/TraverseList: in-order list traversal with short-circuit
// - Validate: run all checks, accumulating failures via a Semigroup
//
// For the asynchronous variant see package taskeither.
package either
