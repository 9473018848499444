package schema

import (
	"testing"
)

func TestKindLayouts(t *testing.T) {
	tests := []struct {
		kind  Kind
		name  string
		size  int
		align int
	}{
		{KindBool, "bool", 1, 1},
		{KindU8, "u8", 1, 1},
		{KindU16, "u16", 2, 2},
		{KindU32, "u32", 4, 4},
		{KindU64, "u64", 8, 8},
		{KindI8, "i8", 1, 1},
		{KindI16, "i16", 2, 2},
		{KindI32, "i32", 4, 4},
		{KindI64, "i64", 8, 8},
		{KindF32, "f32", 4, 4},
		{KindF64, "f64", 8, 8},
		{KindVector3, "vector3", 12, 4},
		{KindPoint3, "point3", 12, 4},
		{KindUnitVector3, "unit_vector3", 12, 4},
		{KindUnitQuaternion, "unit_quaternion", 16, 4},
		{KindVector3F64, "vector3_f64", 24, 8},
		{KindPoint3F64, "point3_f64", 24, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.kind.Size(); got != tc.size {
				t.Errorf("size: got %d, want %d", got, tc.size)
			}
			if got := tc.kind.Alignment(); got != tc.align {
				t.Errorf("align: got %d, want %d", got, tc.align)
			}
			if got := tc.kind.String(); got != tc.name {
				t.Errorf("name: got %q, want %q", got, tc.name)
			}
		})
	}
}

func TestSchemaLayout(t *testing.T) {
	t.Run("packed_size_max_align", func(t *testing.T) {
		s := MustNew("test::Mixed",
			FieldSpec{Name: "a", Kind: KindU8},
			FieldSpec{Name: "b", Kind: KindU32},
			FieldSpec{Name: "c", Kind: KindU8},
		)
		// Packed: 1 + 4 + 1, no padding between fields.
		if s.Size() != 6 {
			t.Errorf("size: got %d, want 6", s.Size())
		}
		if s.Alignment() != 4 {
			t.Errorf("align: got %d, want 4", s.Alignment())
		}
	})

	t.Run("zero_field_marker", func(t *testing.T) {
		s := MustNew("test::Marker")
		if s.Size() != 0 {
			t.Errorf("size: got %d, want 0", s.Size())
		}
		if s.Alignment() != 1 {
			t.Errorf("align: got %d, want 1", s.Alignment())
		}
	})

	t.Run("composite_fields", func(t *testing.T) {
		s := MustNew("test::Frame",
			FieldSpec{Name: "position", Kind: KindPoint3},
			FieldSpec{Name: "orientation", Kind: KindUnitQuaternion},
		)
		if s.Size() != 28 {
			t.Errorf("size: got %d, want 28", s.Size())
		}
		if s.Alignment() != 4 {
			t.Errorf("align: got %d, want 4", s.Alignment())
		}
	})

	t.Run("array_field", func(t *testing.T) {
		s := MustNew("test::Hashes",
			FieldSpec{Name: "name_hashes", Kind: KindU32, Len: 4},
			FieldSpec{Name: "seed", Kind: KindU64},
		)
		if s.Size() != 24 {
			t.Errorf("size: got %d, want 24", s.Size())
		}
		if s.Alignment() != 8 {
			t.Errorf("align: got %d, want 8", s.Alignment())
		}
	})

	t.Run("duplicate_field_rejected", func(t *testing.T) {
		_, err := New("test::Dup",
			FieldSpec{Name: "x", Kind: KindF32},
			FieldSpec{Name: "x", Kind: KindF32},
		)
		if err == nil {
			t.Fatal("expected error for duplicate field name")
		}
	})
}

func TestEnumSpecLayout(t *testing.T) {
	t.Run("unit_enum", func(t *testing.T) {
		e := MustNewEnum("test::Side",
			VariantSpec{Name: "outside"},
			VariantSpec{Name: "inside"},
		)
		if e.Size() != 1 {
			t.Errorf("size: got %d, want 1", e.Size())
		}
		if e.Alignment() != 1 {
			t.Errorf("align: got %d, want 1", e.Alignment())
		}
		if !e.IsUnit() {
			t.Error("expected unit enum")
		}
	})

	t.Run("payload_enum", func(t *testing.T) {
		e := MustNewEnum("test::Shape",
			VariantSpec{Name: "empty"},
			VariantSpec{Name: "sphere", Fields: []FieldSpec{
				{Name: "radius", Kind: KindF64},
			}},
			VariantSpec{Name: "box", Fields: []FieldSpec{
				{Name: "extent_x", Kind: KindF32},
				{Name: "extent_y", Kind: KindF32},
				{Name: "extent_z", Kind: KindF32},
			}},
		)
		// 1 discriminant byte + widest payload (box, 12 bytes).
		if e.Size() != 13 {
			t.Errorf("size: got %d, want 13", e.Size())
		}
		if e.Alignment() != 8 {
			t.Errorf("align: got %d, want 8", e.Alignment())
		}
		if e.IsUnit() {
			t.Error("expected payload enum")
		}
	})

	t.Run("nested_enum_rejected", func(t *testing.T) {
		inner := MustNewEnum("test::Inner", VariantSpec{Name: "only"})
		_, err := NewEnum("test::Outer",
			VariantSpec{Name: "nested", Fields: []FieldSpec{
				{Name: "inner", Kind: KindEnum, Enum: inner},
			}},
		)
		if err == nil {
			t.Fatal("expected error for nested enum")
		}
	})
}

func TestTypeIDOf(t *testing.T) {
	t.Run("stable", func(t *testing.T) {
		a := TypeIDOf("impact_mesh::setup::CylinderMesh")
		b := TypeIDOf("impact_mesh::setup::CylinderMesh")
		if a != b {
			t.Errorf("same name produced different IDs: %s vs %s", a, b)
		}
	})

	t.Run("distinct", func(t *testing.T) {
		a := TypeIDOf("impact_mesh::setup::BoxMesh")
		b := TypeIDOf("impact_mesh::setup::SphereMesh")
		if a == b {
			t.Error("different names produced the same ID")
		}
	})

	t.Run("known_fnv1a_value", func(t *testing.T) {
		// FNV-1a 64 of the empty string is the offset basis.
		if got := TypeIDOf(""); got.Uint64() != 0xcbf29ce484222325 {
			t.Errorf("got %#x, want FNV-1a offset basis", got.Uint64())
		}
	})

	t.Run("zero_reserved", func(t *testing.T) {
		if TypeIDOf("anything") == 0 {
			t.Error("type ID zero is reserved")
		}
	})
}
