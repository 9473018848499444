package components

import (
	"github.com/lars-frogner/impact-wire/schema"
	"github.com/lars-frogner/impact-wire/vecmath"
)

// AmbientEmission is a spatially uniform and isotropic (ambient) light
// field. The illuminance is an RGB incident flux per area in lux.
type AmbientEmission struct {
	Illuminance vecmath.Vector3
}

// OmnidirectionalEmission is uniform emission of light in all directions,
// without shadows. The luminous intensity is RGB in candela; the source
// extent (in meters) determines the extent of specular highlights.
type OmnidirectionalEmission struct {
	LuminousIntensity vecmath.Vector3
	SourceExtent      float32
}

// ShadowableOmnidirectionalEmission is OmnidirectionalEmission for light
// that can be shadowed; the source extent additionally determines shadow
// softness.
type ShadowableOmnidirectionalEmission struct {
	LuminousIntensity vecmath.Vector3
	SourceExtent      float32
}

// UnidirectionalEmission is emission of light in a single direction, without
// shadows. The perpendicular illuminance is RGB in lux; the angular source
// extent is in degrees.
type UnidirectionalEmission struct {
	PerpendicularIlluminance vecmath.Vector3
	Direction                vecmath.UnitVector3
	AngularSourceExtent      float32
}

// ShadowableUnidirectionalEmission is UnidirectionalEmission for light that
// can be shadowed.
type ShadowableUnidirectionalEmission struct {
	PerpendicularIlluminance vecmath.Vector3
	Direction                vecmath.UnitVector3
	AngularSourceExtent      float32
}

var (
	AmbientEmissionSchema = schema.MustNew("impact_light::AmbientEmission",
		schema.FieldSpec{Name: "illuminance", Kind: schema.KindVector3},
	)
	OmnidirectionalEmissionSchema = schema.MustNew("impact_light::OmnidirectionalEmission",
		schema.FieldSpec{Name: "luminous_intensity", Kind: schema.KindVector3},
		schema.FieldSpec{Name: "source_extent", Kind: schema.KindF32},
	)
	ShadowableOmnidirectionalEmissionSchema = schema.MustNew("impact_light::ShadowableOmnidirectionalEmission",
		schema.FieldSpec{Name: "luminous_intensity", Kind: schema.KindVector3},
		schema.FieldSpec{Name: "source_extent", Kind: schema.KindF32},
	)
	UnidirectionalEmissionSchema = schema.MustNew("impact_light::UnidirectionalEmission",
		schema.FieldSpec{Name: "perpendicular_illuminance", Kind: schema.KindVector3},
		schema.FieldSpec{Name: "direction", Kind: schema.KindUnitVector3},
		schema.FieldSpec{Name: "angular_source_extent", Kind: schema.KindF32},
	)
	ShadowableUnidirectionalEmissionSchema = schema.MustNew("impact_light::ShadowableUnidirectionalEmission",
		schema.FieldSpec{Name: "perpendicular_illuminance", Kind: schema.KindVector3},
		schema.FieldSpec{Name: "direction", Kind: schema.KindUnitVector3},
		schema.FieldSpec{Name: "angular_source_extent", Kind: schema.KindF32},
	)
)
