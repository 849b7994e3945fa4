// Package unwrap provides Option[T] and Outcome[T, E] containers with
// clearer names for the classic unwrap family:
// - OrPanic: value or panic (unwrap)
// - PanicOr / PanicOrElse / PanicOrDefault: value or a substitute, never panic
// - PanicWith: value or panic with the caller's message (expect)
// - OrPanicErr / PanicErrWith: the failure side of an Outcome (unwrap_err / expect_err)
//
// Panics are reserved for programmer errors; nothing in this package
// recovers them.
package unwrap
