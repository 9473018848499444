// Package schema declares component layouts and derives their wire identity.
//
// A component type is described once as data: an ordered list of FieldSpec
// values, each naming a field and its semantic Kind. From the declaration
// the package derives the triple that travels in every packet header:
//
//	TypeID     stable 64-bit FNV-1a hash of the fully-qualified name
//	Size       packed byte width of one record (no padding between fields)
//	Alignment  largest field alignment requirement
//
// The triple is computed at definition time and cached as constants on the
// Schema; it is never recomputed per call. Both sides of the wire must
// derive identical triples for a given logical type; a mismatch is a build
// defect, not a runtime condition.
//
// A Registry binds each Schema to the Go struct type holding its records
// and compiles the reflection metadata the codec package walks. Binding is
// checked field by field: a schema field of kind u32 must resolve to a
// uint32-kinded exported struct field, a vector3 to a struct of three
// float32, and so on. Field resolution matches the wire name against a
// `wire:"..."` struct tag, then case-insensitively, then against the
// snake_case form of the Go field name.
//
// Enumerated fields declare their variants with an EnumSpec. Unit enums
// bind to a uint8-kinded Go type carrying the discriminant; enums with
// payloads bind to a tagged-union struct whose first field is the
// discriminant and whose remaining fields hold one variant payload each.
package schema
