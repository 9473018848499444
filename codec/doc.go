// Package codec converts component values to and from their packed wire
// representation.
//
// Records are encoded field by field in schema order with no padding between
// fields, each numeric field little-endian. Enumerated fields occupy their
// declared width: one discriminant byte, the selected variant's payload, and
// zero padding up to the width of the widest variant.
//
// Decoding is strict about extent. A span whose length differs from the
// schema's declared size is rejected before any field is read, an empty enum
// span is missing its discriminant, and an out-of-range discriminant names
// the offending byte. All failures are reported through the structured
// errors package; nothing here panics on wire input.
//
// Validate provides the per-schema self-test the protocol relies on instead
// of per-call size checks: it proves the zero value encodes to the declared
// size and that decode followed by encode reproduces arbitrary well-formed
// buffers byte for byte.
package codec
