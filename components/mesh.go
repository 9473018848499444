package components

import "github.com/lars-frogner/impact-wire/schema"

// RectangleMesh requests a mesh consisting of an axis-aligned horizontal
// rectangle centered on the origin, whose front face is on the positive y
// side.
type RectangleMesh struct {
	ExtentX float32
	ExtentZ float32
}

// BoxMesh requests a mesh consisting of an axis-aligned box centered on the
// origin.
type BoxMesh struct {
	ExtentX float32
	ExtentY float32
	ExtentZ float32
	// FrontFacesOnOutside is nonzero when the faces point away from the box
	// interior.
	FrontFacesOnOutside uint32
}

// CylinderMesh requests a mesh consisting of a vertical cylinder with the
// bottom centered on the origin.
type CylinderMesh struct {
	Length   float32
	Diameter float32
	// NCircumferenceVertices is the number of vertices representing a
	// circular cross-section of the cylinder.
	NCircumferenceVertices uint32
}

// ConeMesh requests a mesh consisting of an upward-pointing cone with the
// bottom centered on the origin.
type ConeMesh struct {
	Length                 float32
	MaxDiameter            float32
	NCircumferenceVertices uint32
}

// CircularFrustumMesh requests a mesh consisting of a vertical circular
// frustum with the bottom centered on the origin.
type CircularFrustumMesh struct {
	Length                 float32
	BottomDiameter         float32
	TopDiameter            float32
	NCircumferenceVertices uint32
}

// SphereMesh requests a mesh consisting of a unit diameter sphere centered
// on the origin. NRings is the number of horizontal circular cross-sections
// of vertices making up the sphere.
type SphereMesh struct {
	NRings uint32
}

// HemisphereMesh requests a mesh consisting of a unit diameter hemisphere
// whose disk lies in the xz-plane and is centered on the origin.
type HemisphereMesh struct {
	NRings uint32
}

var (
	RectangleMeshSchema = schema.MustNew("impact_mesh::setup::RectangleMesh",
		schema.FieldSpec{Name: "extent_x", Kind: schema.KindF32},
		schema.FieldSpec{Name: "extent_z", Kind: schema.KindF32},
	)
	BoxMeshSchema = schema.MustNew("impact_mesh::setup::BoxMesh",
		schema.FieldSpec{Name: "extent_x", Kind: schema.KindF32},
		schema.FieldSpec{Name: "extent_y", Kind: schema.KindF32},
		schema.FieldSpec{Name: "extent_z", Kind: schema.KindF32},
		schema.FieldSpec{Name: "front_faces_on_outside", Kind: schema.KindU32},
	)
	CylinderMeshSchema = schema.MustNew("impact_mesh::setup::CylinderMesh",
		schema.FieldSpec{Name: "length", Kind: schema.KindF32},
		schema.FieldSpec{Name: "diameter", Kind: schema.KindF32},
		schema.FieldSpec{Name: "n_circumference_vertices", Kind: schema.KindU32},
	)
	ConeMeshSchema = schema.MustNew("impact_mesh::setup::ConeMesh",
		schema.FieldSpec{Name: "length", Kind: schema.KindF32},
		schema.FieldSpec{Name: "max_diameter", Kind: schema.KindF32},
		schema.FieldSpec{Name: "n_circumference_vertices", Kind: schema.KindU32},
	)
	CircularFrustumMeshSchema = schema.MustNew("impact_mesh::setup::CircularFrustumMesh",
		schema.FieldSpec{Name: "length", Kind: schema.KindF32},
		schema.FieldSpec{Name: "bottom_diameter", Kind: schema.KindF32},
		schema.FieldSpec{Name: "top_diameter", Kind: schema.KindF32},
		schema.FieldSpec{Name: "n_circumference_vertices", Kind: schema.KindU32},
	)
	SphereMeshSchema = schema.MustNew("impact_mesh::setup::SphereMesh",
		schema.FieldSpec{Name: "n_rings", Kind: schema.KindU32},
	)
	HemisphereMeshSchema = schema.MustNew("impact_mesh::setup::HemisphereMesh",
		schema.FieldSpec{Name: "n_rings", Kind: schema.KindU32},
	)
)
