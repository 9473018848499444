// Package errors provides structured error types for the component wire protocol.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go type and component names, and
// a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidByteCount).
//		Path("cylinder_mesh", "length").
//		Detail("got 3 bytes, expected 4").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidByteCount(errors.PhaseDecode, path, 3, 4)
//	err := errors.CountMismatch(errors.PhaseBroadcast, "Motion", 2, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares phase and kind, so callers can test for a
// category (say, any decode-phase invalid_discriminant) without inspecting
// the message.
package errors
