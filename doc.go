// Package impactwire implements the binary wire protocol that game setup
// scripts use to hand entity components to the engine.
//
// A component is a plain struct with a registered binary schema. Components
// travel in construction buffers: sequences of self-describing packets, each
// carrying a type ID, the encoded size and alignment, and the packed field
// bytes. The engine parses a buffer, checks every header against its own
// registry, and materializes the components into entities.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	impactwire/          Root package with protocol documentation
//	├── schema/          Component schemas, type IDs, and Go type bindings
//	├── codec/           Packed field encoding and decoding
//	├── packet/          Packet framing for construction buffers
//	├── entity/          Buffer builders and per-entity argument broadcasting
//	├── dispatch/        Buffer parsing into an entity store
//	├── components/      Built-in engine component definitions
//	├── scripthost/      wazero host for running guest setup scripts
//	├── vecmath/         Fixed-layout vector and quaternion types
//	└── errors/          Structured error types shared by every phase
//
// # Quick Start
//
// Build a construction buffer and dispatch it:
//
//	enc := codec.NewEncoder(components.Registry())
//	data := entity.NewData(enc)
//	data.Append(components.SphereMesh{NRings: 16})
//	data.Append(components.ReferenceFrame{Orientation: vecmath.Identity()})
//
//	d := dispatch.NewDispatcher(codec.NewDecoder(components.Registry()), dispatch.NewStore())
//	id, err := d.CreateEntity(data.Bytes())
//
// # Wire Format
//
// All integers are little-endian. A single-value packet is three u64 header
// words (type ID, size, alignment) followed by the packed payload. A
// multi-value packet adds a fourth count word and carries count payloads
// back to back. Fields are packed with no padding between them; enums take
// one discriminant byte plus the widest variant payload, zero-padded.
//
// # Validation
//
// Encoded layouts are proven once per schema rather than checked on every
// call: codec.Validate round-trips patterned buffers through a binding and
// fails on any size or byte disagreement. Run codec.ValidateAll against a
// registry at startup or in tests.
package impactwire
