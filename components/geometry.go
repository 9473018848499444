package components

import (
	"github.com/lars-frogner/impact-wire/schema"
	"github.com/lars-frogner/impact-wire/vecmath"
)

// ReferenceFrame is the spatial reference frame of an entity: a position and
// an orientation relative to the parent frame.
type ReferenceFrame struct {
	Position    vecmath.Point3
	Orientation vecmath.UnitQuaternion
}

// ModelTransform maps an entity's model space to its reference frame.
type ModelTransform struct {
	// Offset is the model-space translation applied before scaling.
	Offset vecmath.Vector3
	Scale  float32
}

var (
	ReferenceFrameSchema = schema.MustNew("impact_geometry::ReferenceFrame",
		schema.FieldSpec{Name: "position", Kind: schema.KindPoint3},
		schema.FieldSpec{Name: "orientation", Kind: schema.KindUnitQuaternion},
	)
	ModelTransformSchema = schema.MustNew("impact_geometry::ModelTransform",
		schema.FieldSpec{Name: "offset", Kind: schema.KindVector3},
		schema.FieldSpec{Name: "scale", Kind: schema.KindF32},
	)
)
