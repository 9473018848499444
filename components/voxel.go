package components

import "github.com/lars-frogner/impact-wire/schema"

// VoxelTypeArraySize is the fixed capacity of the voxel type table carried
// by GradientNoiseVoxelTypes.
const VoxelTypeArraySize = 256

// SameVoxelType requests a voxel object where every voxel has the type named
// by the given 32-bit name hash.
type SameVoxelType struct {
	VoxelTypeNameHash uint32
}

// GradientNoiseVoxelTypes requests a set of voxel types distributed
// according to a gradient noise pattern.
type GradientNoiseVoxelTypes struct {
	NVoxelTypes         uint64
	VoxelTypeNameHashes [VoxelTypeArraySize]uint32
	NoiseFrequency      float64
	VoxelTypeFrequency  float64
	Seed                uint64
}

// VoxelBox requests a voxel object filling an axis-aligned box.
type VoxelBox struct {
	// VoxelExtent is the edge length of a single voxel.
	VoxelExtent float64
	ExtentX     float64
	ExtentY     float64
	ExtentZ     float64
}

// VoxelSphere requests a voxel object filling a sphere.
type VoxelSphere struct {
	VoxelExtent float64
	Radius      float64
}

// VoxelGradientNoisePattern requests a voxel object filling an extent
// according to a gradient noise pattern.
type VoxelGradientNoisePattern struct {
	VoxelExtent    float64
	ExtentX        float64
	ExtentY        float64
	ExtentZ        float64
	NoiseFrequency float64
	NoiseThreshold float64
	Seed           uint64
}

// MultiscaleSphereSDFModification modifies a voxel signed distance field
// based on unions with a multiscale sphere grid.
type MultiscaleSphereSDFModification struct {
	Octaves     uint64
	MaxScale    float64
	Persistence float64
	Inflation   float64
	Smoothness  float64
	Seed        uint64
}

// MultifractalNoiseSDFModification modifies a voxel signed distance field
// with multifractal noise.
type MultifractalNoiseSDFModification struct {
	Octaves     uint64
	Frequency   float64
	Lacunarity  float64
	Persistence float64
	Amplitude   float64
	Seed        uint64
}

// DynamicVoxels marks the entity's voxel object as mutable after creation.
// The component carries no data; its presence is its entire meaning.
type DynamicVoxels struct{}

var (
	SameVoxelTypeSchema = schema.MustNew("impact_voxel::setup::SameVoxelType",
		schema.FieldSpec{Name: "voxel_type_name_hash", Kind: schema.KindU32},
	)
	GradientNoiseVoxelTypesSchema = schema.MustNew("impact_voxel::setup::GradientNoiseVoxelTypes",
		schema.FieldSpec{Name: "n_voxel_types", Kind: schema.KindU64},
		schema.FieldSpec{Name: "voxel_type_name_hashes", Kind: schema.KindU32, Len: VoxelTypeArraySize},
		schema.FieldSpec{Name: "noise_frequency", Kind: schema.KindF64},
		schema.FieldSpec{Name: "voxel_type_frequency", Kind: schema.KindF64},
		schema.FieldSpec{Name: "seed", Kind: schema.KindU64},
	)
	VoxelBoxSchema = schema.MustNew("impact_voxel::setup::VoxelBox",
		schema.FieldSpec{Name: "voxel_extent", Kind: schema.KindF64},
		schema.FieldSpec{Name: "extent_x", Kind: schema.KindF64},
		schema.FieldSpec{Name: "extent_y", Kind: schema.KindF64},
		schema.FieldSpec{Name: "extent_z", Kind: schema.KindF64},
	)
	VoxelSphereSchema = schema.MustNew("impact_voxel::setup::VoxelSphere",
		schema.FieldSpec{Name: "voxel_extent", Kind: schema.KindF64},
		schema.FieldSpec{Name: "radius", Kind: schema.KindF64},
	)
	VoxelGradientNoisePatternSchema = schema.MustNew("impact_voxel::setup::VoxelGradientNoisePattern",
		schema.FieldSpec{Name: "voxel_extent", Kind: schema.KindF64},
		schema.FieldSpec{Name: "extent_x", Kind: schema.KindF64},
		schema.FieldSpec{Name: "extent_y", Kind: schema.KindF64},
		schema.FieldSpec{Name: "extent_z", Kind: schema.KindF64},
		schema.FieldSpec{Name: "noise_frequency", Kind: schema.KindF64},
		schema.FieldSpec{Name: "noise_threshold", Kind: schema.KindF64},
		schema.FieldSpec{Name: "seed", Kind: schema.KindU64},
	)
	MultiscaleSphereSDFModificationSchema = schema.MustNew("impact_voxel::setup::MultiscaleSphereSDFModification",
		schema.FieldSpec{Name: "octaves", Kind: schema.KindU64},
		schema.FieldSpec{Name: "max_scale", Kind: schema.KindF64},
		schema.FieldSpec{Name: "persistence", Kind: schema.KindF64},
		schema.FieldSpec{Name: "inflation", Kind: schema.KindF64},
		schema.FieldSpec{Name: "smoothness", Kind: schema.KindF64},
		schema.FieldSpec{Name: "seed", Kind: schema.KindU64},
	)
	MultifractalNoiseSDFModificationSchema = schema.MustNew("impact_voxel::setup::MultifractalNoiseSDFModification",
		schema.FieldSpec{Name: "octaves", Kind: schema.KindU64},
		schema.FieldSpec{Name: "frequency", Kind: schema.KindF64},
		schema.FieldSpec{Name: "lacunarity", Kind: schema.KindF64},
		schema.FieldSpec{Name: "persistence", Kind: schema.KindF64},
		schema.FieldSpec{Name: "amplitude", Kind: schema.KindF64},
		schema.FieldSpec{Name: "seed", Kind: schema.KindU64},
	)
	DynamicVoxelsSchema = schema.MustNew("impact_voxel::setup::DynamicVoxels")
)
