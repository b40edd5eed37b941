// Package chain provides a minimal fluent wrapper over
// either.Either[error, T] for synchronous pipelines.
//
// - Start/FromValue/Fail: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/Then (free functions): type-changing composition
// - Ensure: trigger side effects on success only
// - Finally: reduce to a concrete value via handlers
//
// Each chain carries a uuid and UTC creation time for pipeline tracing.
package chain
