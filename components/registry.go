package components

import (
	"sync"

	"github.com/lars-frogner/impact-wire/codec"
	"github.com/lars-frogner/impact-wire/schema"
)

var (
	registry     *schema.Registry
	registryOnce sync.Once
)

// Registry returns the shared registry holding every component type defined
// by this package. Built on first use; the result is safe for concurrent
// lookups.
func Registry() *schema.Registry {
	registryOnce.Do(func() {
		reg := schema.NewRegistry()

		reg.MustRegister(RectangleMeshSchema, RectangleMesh{})
		reg.MustRegister(BoxMeshSchema, BoxMesh{})
		reg.MustRegister(CylinderMeshSchema, CylinderMesh{})
		reg.MustRegister(ConeMeshSchema, ConeMesh{})
		reg.MustRegister(CircularFrustumMeshSchema, CircularFrustumMesh{})
		reg.MustRegister(SphereMeshSchema, SphereMesh{})
		reg.MustRegister(HemisphereMeshSchema, HemisphereMesh{})

		reg.MustRegister(MotionSchema, Motion{})
		reg.MustRegister(CollidableSchema, Collidable{})
		reg.MustRegister(AlignmentTorqueSchema, AlignmentTorque{})

		reg.MustRegister(AmbientEmissionSchema, AmbientEmission{})
		reg.MustRegister(OmnidirectionalEmissionSchema, OmnidirectionalEmission{})
		reg.MustRegister(ShadowableOmnidirectionalEmissionSchema, ShadowableOmnidirectionalEmission{})
		reg.MustRegister(UnidirectionalEmissionSchema, UnidirectionalEmission{})
		reg.MustRegister(ShadowableUnidirectionalEmissionSchema, ShadowableUnidirectionalEmission{})

		reg.MustRegister(SameVoxelTypeSchema, SameVoxelType{})
		reg.MustRegister(GradientNoiseVoxelTypesSchema, GradientNoiseVoxelTypes{})
		reg.MustRegister(VoxelBoxSchema, VoxelBox{})
		reg.MustRegister(VoxelSphereSchema, VoxelSphere{})
		reg.MustRegister(VoxelGradientNoisePatternSchema, VoxelGradientNoisePattern{})
		reg.MustRegister(MultiscaleSphereSDFModificationSchema, MultiscaleSphereSDFModification{})
		reg.MustRegister(MultifractalNoiseSDFModificationSchema, MultifractalNoiseSDFModification{})
		reg.MustRegister(DynamicVoxelsSchema, DynamicVoxels{})

		reg.MustRegister(SceneEntityFlagsSchema, SceneEntityFlags{})

		reg.MustRegister(ReferenceFrameSchema, ReferenceFrame{})
		reg.MustRegister(ModelTransformSchema, ModelTransform{})

		// Layout round trips are proven once, when the registry is built.
		if err := codec.ValidateAll(reg); err != nil {
			panic(err)
		}

		registry = reg
	})
	return registry
}
