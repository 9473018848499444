// Package vecmath provides the fixed-layout geometric value types used in
// component fields.
//
// All types are plain structs of floating-point coordinates with no methods
// that mutate in place. Their wire encoding is the concatenation of their
// coordinates in declaration order with no padding.
package vecmath

// Vector3 is a vector in 3D space with 32-bit components.
type Vector3 struct {
	X, Y, Z float32
}

// Point3 is a position in 3D space with 32-bit components.
type Point3 struct {
	X, Y, Z float32
}

// UnitVector3 is a direction in 3D space with 32-bit components.
// Constructors are expected to hand in normalized coordinates; the codec
// does not renormalize.
type UnitVector3 struct {
	X, Y, Z float32
}

// UnitQuaternion is a rotation in 3D space with 32-bit components, stored
// with the vector part first (X, Y, Z, W).
type UnitQuaternion struct {
	X, Y, Z, W float32
}

// Vector3F64 is a vector in 3D space with 64-bit components.
type Vector3F64 struct {
	X, Y, Z float64
}

// Point3F64 is a position in 3D space with 64-bit components.
type Point3F64 struct {
	X, Y, Z float64
}

// Identity returns the identity rotation.
func Identity() UnitQuaternion {
	return UnitQuaternion{W: 1}
}
