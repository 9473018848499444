// Package dispatch consumes construction buffers on the engine side.
//
// A Dispatcher walks the packets of a buffer, resolves each type ID in its
// registry, cross-checks the header's size and alignment words against the
// registered schema, decodes the records, and materializes the resulting
// entities in a Store. An unknown type ID or a layout disagreement signals
// that the producer and consumer were built from different component
// definitions; the buffer is rejected whole, and no entity is created.
package dispatch
