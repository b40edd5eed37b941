// Package fp provides small function-composition helpers shared by the
// container packages and their callers.
//
// - Identity/Const/Const1: trivial building blocks for combinator arguments
// - Compose: left-to-right composition of two functions
// - Pipe: apply a sequence of same-type transformations to a value
//
// Container types live in the subpackages option, either and taskeither;
// capability interfaces live in eq, ord, semigroup, monoid and bounded.
package fp
