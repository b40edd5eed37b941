// Package taskeither provides TaskEither[E, A], a re-invocable description
// of an asynchronous computation that eventually produces an
// either.Either[E, A], plus Task[A] for its collapsed forms.
//
// Invoking a TaskEither starts a fresh single-shot goroutine and returns a
// channel delivering exactly one Either. Results are never memoized;
// callers wanting compute-once must cache the resolved value themselves.
//
// A Left is data, not a fault. Faults (panics inside a producer or
// callback) propagate; only Tap recovers, around its own side-effect
// function. The library never cancels a started run; ctx is handed
// through to wrapped producers and the channel bridges only.
//
// Common usage:
// - Right/Left/Of/From/FromEither/FromOption/FromPredicate/Try: construct
// - Map/MapLeft/FlatMap/Ap: compose; continuations are only scheduled
//   after the prior step resolves successfully
// - Match/GetOrElse: collapse into a Task
// - SequenceList/TraverseList/TraverseChan: strictly sequential traversal;
//   element i+1 never starts before element i resolves
package taskeither
