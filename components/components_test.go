package components_test

import (
	"testing"

	"github.com/lars-frogner/impact-wire/codec"
	"github.com/lars-frogner/impact-wire/components"
	"github.com/lars-frogner/impact-wire/dispatch"
	"github.com/lars-frogner/impact-wire/entity"
	"github.com/lars-frogner/impact-wire/schema"
	"github.com/lars-frogner/impact-wire/vecmath"
)

func TestSchemaLayouts(t *testing.T) {
	tests := []struct {
		s     *schema.Schema
		size  int
		align int
	}{
		{components.RectangleMeshSchema, 8, 4},
		{components.BoxMeshSchema, 16, 4},
		{components.CylinderMeshSchema, 12, 4},
		{components.ConeMeshSchema, 12, 4},
		{components.CircularFrustumMeshSchema, 16, 4},
		{components.SphereMeshSchema, 4, 4},
		{components.HemisphereMeshSchema, 4, 4},
		{components.MotionSchema, 28, 4},
		{components.CollidableSchema, 1, 1},
		{components.AlignmentTorqueSchema, 37, 4},
		{components.AmbientEmissionSchema, 12, 4},
		{components.OmnidirectionalEmissionSchema, 16, 4},
		{components.UnidirectionalEmissionSchema, 28, 4},
		{components.SameVoxelTypeSchema, 4, 4},
		{components.GradientNoiseVoxelTypesSchema, 1056, 8},
		{components.VoxelBoxSchema, 32, 8},
		{components.VoxelSphereSchema, 16, 8},
		{components.DynamicVoxelsSchema, 0, 1},
		{components.SceneEntityFlagsSchema, 1, 1},
		{components.ReferenceFrameSchema, 28, 4},
		{components.ModelTransformSchema, 16, 4},
	}

	for _, tc := range tests {
		t.Run(tc.s.Name(), func(t *testing.T) {
			if got := tc.s.Size(); got != tc.size {
				t.Errorf("size: got %d, want %d", got, tc.size)
			}
			if got := tc.s.Alignment(); got != tc.align {
				t.Errorf("align: got %d, want %d", got, tc.align)
			}
			if tc.s.TypeID() == 0 {
				t.Error("type ID zero is reserved")
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	reg := components.Registry()

	t.Run("distinct_type_ids", func(t *testing.T) {
		bindings := reg.Bindings()
		seen := make(map[schema.TypeID]string, len(bindings))
		for _, b := range bindings {
			id := b.Schema().TypeID()
			if prev, dup := seen[id]; dup {
				t.Errorf("%s and %s share type ID %s", prev, b.Schema().Name(), id)
			}
			seen[id] = b.Schema().Name()
		}
	})

	t.Run("all_bindings_validate", func(t *testing.T) {
		if err := codec.ValidateAll(reg); err != nil {
			t.Errorf("validate: %v", err)
		}
	})

	t.Run("shared_instance", func(t *testing.T) {
		if components.Registry() != reg {
			t.Error("Registry returned a second instance")
		}
	})
}

func TestEndToEnd(t *testing.T) {
	enc := codec.NewEncoder(components.Registry())
	d := dispatch.NewDispatcher(codec.NewDecoder(components.Registry()), dispatch.NewStore())

	t.Run("single_entity", func(t *testing.T) {
		data := entity.NewData(enc)
		mesh := components.CylinderMesh{Length: 2.5, Diameter: 0.5, NCircumferenceVertices: 32}
		frame := components.ReferenceFrame{
			Position:    vecmath.Point3{X: 1, Y: 2, Z: 3},
			Orientation: vecmath.Identity(),
		}
		torque := components.AlignmentTorque{
			AxisToAlign: vecmath.UnitVector3{Y: 1},
			AlignmentDirection: components.AlignmentDirection{
				Which: components.AlignmentGravityForce,
			},
			SettlingTime: 0.5,
		}
		for _, c := range []any{mesh, frame, torque, components.DynamicVoxels{}} {
			if err := data.Append(c); err != nil {
				t.Fatalf("append %T: %v", c, err)
			}
		}
		// Each packet is a 24-byte header plus the record.
		wantLen := 24 + 12 + 24 + 28 + 24 + 37 + 24
		if len(data.Bytes()) != wantLen {
			t.Fatalf("buffer is %d bytes, want %d", len(data.Bytes()), wantLen)
		}

		id, err := d.CreateEntity(data.Bytes())
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		got, ok := d.Store().Get(id, components.CylinderMeshSchema.TypeID())
		if !ok || got.(components.CylinderMesh) != mesh {
			t.Errorf("mesh component: got %+v, want %+v", got, mesh)
		}
		got, ok = d.Store().Get(id, components.AlignmentTorqueSchema.TypeID())
		if !ok || got.(components.AlignmentTorque) != torque {
			t.Errorf("torque component: got %+v, want %+v", got, torque)
		}
		if !d.Store().Has(id, components.DynamicVoxelsSchema.TypeID()) {
			t.Error("marker component missing")
		}
	})

	t.Run("entity_batch_with_broadcast", func(t *testing.T) {
		const n = 3
		meshes, err := entity.Broadcast2(n,
			entity.All([]float32{1, 2, 3}),
			entity.Same(uint32(16)),
			func(length float32, vertices uint32) (components.CylinderMesh, error) {
				return components.CylinderMesh{Length: length, Diameter: length / 4, NCircumferenceVertices: vertices}, nil
			},
		)
		if err != nil {
			t.Fatalf("broadcast: %v", err)
		}

		data := entity.NewMultiData(enc, n)
		if err := entity.AppendSlice(data, meshes); err != nil {
			t.Fatalf("append meshes: %v", err)
		}
		if err := entity.AppendSame(data, components.Collidable{Kind: components.CollidableStatic}); err != nil {
			t.Fatalf("append collidable: %v", err)
		}

		ids, err := d.CreateEntities(data.Bytes())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if len(ids) != n {
			t.Fatalf("created %d entities, want %d", len(ids), n)
		}
		for i, id := range ids {
			got, ok := d.Store().Get(id, components.CylinderMeshSchema.TypeID())
			if !ok || got.(components.CylinderMesh) != meshes[i] {
				t.Errorf("entity %d: got %+v, want %+v", i, got, meshes[i])
			}
			c, ok := d.Store().Get(id, components.CollidableSchema.TypeID())
			if !ok || c.(components.Collidable).Kind != components.CollidableStatic {
				t.Errorf("entity %d: collidable %+v", i, c)
			}
		}
	})
}
