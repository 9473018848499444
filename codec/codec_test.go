package codec_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/lars-frogner/impact-wire/codec"
	wireerrors "github.com/lars-frogner/impact-wire/errors"
	"github.com/lars-frogner/impact-wire/schema"
	"github.com/lars-frogner/impact-wire/vecmath"
)

type cylinderMesh struct {
	Length                 float32
	Diameter               float32
	NCircumferenceVertices uint32
}

type referenceFrame struct {
	Position    vecmath.Point3
	Orientation vecmath.UnitQuaternion
}

type noiseVoxels struct {
	NameHashes [4]uint32
	Seed       uint64
}

type renderFlags struct {
	Visible bool
	Layer   uint8
}

type faceSide struct {
	Side uint8
}

type sphereShape struct {
	Radius float64
}

type boxShape struct {
	ExtentX, ExtentY, ExtentZ float32
}

type shapeUnion struct {
	Which  uint8
	Sphere sphereShape
	Box    boxShape
}

type voxelShape struct {
	Shape shapeUnion
}

var (
	cylinderSchema = schema.MustNew("codec_test::CylinderMesh",
		schema.FieldSpec{Name: "length", Kind: schema.KindF32},
		schema.FieldSpec{Name: "diameter", Kind: schema.KindF32},
		schema.FieldSpec{Name: "n_circumference_vertices", Kind: schema.KindU32},
	)
	frameSchema = schema.MustNew("codec_test::ReferenceFrame",
		schema.FieldSpec{Name: "position", Kind: schema.KindPoint3},
		schema.FieldSpec{Name: "orientation", Kind: schema.KindUnitQuaternion},
	)
	noiseSchema = schema.MustNew("codec_test::NoiseVoxels",
		schema.FieldSpec{Name: "name_hashes", Kind: schema.KindU32, Len: 4},
		schema.FieldSpec{Name: "seed", Kind: schema.KindU64},
	)
	flagsSchema = schema.MustNew("codec_test::RenderFlags",
		schema.FieldSpec{Name: "visible", Kind: schema.KindBool},
		schema.FieldSpec{Name: "layer", Kind: schema.KindU8},
	)
	sideEnum = schema.MustNewEnum("codec_test::Side",
		schema.VariantSpec{Name: "outside"},
		schema.VariantSpec{Name: "inside"},
	)
	sideSchema = schema.MustNew("codec_test::FaceSide",
		schema.FieldSpec{Name: "side", Kind: schema.KindEnum, Enum: sideEnum},
	)
	shapeEnum = schema.MustNewEnum("codec_test::Shape",
		schema.VariantSpec{Name: "empty"},
		schema.VariantSpec{Name: "sphere", Fields: []schema.FieldSpec{
			{Name: "radius", Kind: schema.KindF64},
		}},
		schema.VariantSpec{Name: "box", Fields: []schema.FieldSpec{
			{Name: "extent_x", Kind: schema.KindF32},
			{Name: "extent_y", Kind: schema.KindF32},
			{Name: "extent_z", Kind: schema.KindF32},
		}},
	)
	shapeSchema = schema.MustNew("codec_test::VoxelShape",
		schema.FieldSpec{Name: "shape", Kind: schema.KindEnum, Enum: shapeEnum},
	)
)

func newTestRegistry(t testing.TB) *schema.Registry {
	t.Helper()
	reg := schema.NewRegistry()
	reg.MustRegister(cylinderSchema, cylinderMesh{})
	reg.MustRegister(frameSchema, referenceFrame{})
	reg.MustRegister(noiseSchema, noiseVoxels{})
	reg.MustRegister(flagsSchema, renderFlags{})
	reg.MustRegister(sideSchema, faceSide{})
	reg.MustRegister(shapeSchema, voxelShape{})
	return reg
}

func TestFieldCodec(t *testing.T) {
	t.Run("u32_round_trip", func(t *testing.T) {
		buf := codec.AppendU32(nil, 0xdeadbeef)
		if len(buf) != 4 {
			t.Fatalf("encoded %d bytes, want 4", len(buf))
		}
		v, err := codec.DecodeU32(buf)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if v != 0xdeadbeef {
			t.Errorf("got %#x, want 0xdeadbeef", v)
		}
	})

	t.Run("i16_negative", func(t *testing.T) {
		buf := codec.AppendI16(nil, -12345)
		v, err := codec.DecodeI16(buf)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if v != -12345 {
			t.Errorf("got %d, want -12345", v)
		}
	})

	t.Run("f32_nan_bits_preserved", func(t *testing.T) {
		nan := math.Float32frombits(0x7fc00001)
		buf := codec.AppendF32(nil, nan)
		v, err := codec.DecodeF32(buf)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if math.Float32bits(v) != 0x7fc00001 {
			t.Errorf("bit pattern changed: %#x", math.Float32bits(v))
		}
	})

	t.Run("little_endian", func(t *testing.T) {
		buf := codec.AppendU16(nil, 0x0102)
		if buf[0] != 0x02 || buf[1] != 0x01 {
			t.Errorf("got % x, want low byte first", buf)
		}
	})

	t.Run("wrong_width_rejected", func(t *testing.T) {
		_, err := codec.DecodeU64([]byte{1, 2, 3})
		target := &wireerrors.Error{Phase: wireerrors.PhaseDecode, Kind: wireerrors.KindInvalidByteCount}
		if !errors.Is(err, target) {
			t.Errorf("got %v, want decode/invalid_byte_count", err)
		}
	})
}

func TestRecordRoundTrip(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name  string
		value any
		size  int
	}{
		{
			name:  "primitive_fields",
			value: cylinderMesh{Length: 2.5, Diameter: 0.5, NCircumferenceVertices: 32},
			size:  12,
		},
		{
			name: "composite_fields",
			value: referenceFrame{
				Position:    vecmath.Point3{X: 1, Y: -2, Z: 3},
				Orientation: vecmath.Identity(),
			},
			size: 28,
		},
		{
			name:  "array_field",
			value: noiseVoxels{NameHashes: [4]uint32{10, 20, 30, 40}, Seed: 0xfeedface},
			size:  24,
		},
		{
			name:  "bool_field",
			value: renderFlags{Visible: true, Layer: 7},
			size:  2,
		},
		{
			name:  "unit_enum",
			value: faceSide{Side: 1},
			size:  1,
		},
		{
			name:  "payload_enum_unit_variant",
			value: voxelShape{Shape: shapeUnion{Which: 0}},
			size:  13,
		},
		{
			name:  "payload_enum_sphere_variant",
			value: voxelShape{Shape: shapeUnion{Which: 1, Sphere: sphereShape{Radius: 4.5}}},
			size:  13,
		},
		{
			name:  "payload_enum_box_variant",
			value: voxelShape{Shape: shapeUnion{Which: 2, Box: boxShape{ExtentX: 1, ExtentY: 2, ExtentZ: 3}}},
			size:  13,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, ok := reg.LookupValue(tc.value)
			if !ok {
				t.Fatal("value type not registered")
			}
			enc, err := codec.AppendRecord(nil, b, tc.value)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if len(enc) != tc.size {
				t.Fatalf("encoded %d bytes, want %d", len(enc), tc.size)
			}
			if len(enc) != b.Schema().Size() {
				t.Fatalf("encoded %d bytes, schema declares %d", len(enc), b.Schema().Size())
			}
			dec, err := codec.DecodeRecord(b, enc)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(dec, tc.value) {
				t.Errorf("round trip changed the value:\n got %+v\nwant %+v", dec, tc.value)
			}
		})
	}
}

func TestEnumEncoding(t *testing.T) {
	reg := newTestRegistry(t)
	b, _ := reg.LookupValue(voxelShape{})

	t.Run("narrow_variant_zero_padded", func(t *testing.T) {
		enc, err := codec.AppendRecord(nil, b, voxelShape{
			Shape: shapeUnion{Which: 1, Sphere: sphereShape{Radius: 1}},
		})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		// Discriminant byte, 8 payload bytes, then padding to the widest
		// variant (12 bytes).
		if enc[0] != 1 {
			t.Errorf("discriminant byte is %d, want 1", enc[0])
		}
		for i := 9; i < 13; i++ {
			if enc[i] != 0 {
				t.Errorf("padding byte %d is %#x, want 0", i, enc[i])
			}
		}
	})

	t.Run("unit_variant_fully_padded", func(t *testing.T) {
		enc, err := codec.AppendRecord(nil, b, voxelShape{Shape: shapeUnion{Which: 0}})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		for i := 1; i < 13; i++ {
			if enc[i] != 0 {
				t.Errorf("padding byte %d is %#x, want 0", i, enc[i])
			}
		}
	})

	t.Run("out_of_range_discriminant_rejected", func(t *testing.T) {
		_, err := codec.AppendRecord(nil, b, voxelShape{Shape: shapeUnion{Which: 3}})
		target := &wireerrors.Error{Phase: wireerrors.PhaseEncode, Kind: wireerrors.KindInvalidDiscriminant}
		if !errors.Is(err, target) {
			t.Errorf("got %v, want encode/invalid_discriminant", err)
		}
	})
}

func TestDecodeErrors(t *testing.T) {
	reg := newTestRegistry(t)

	t.Run("wrong_span_length", func(t *testing.T) {
		b, _ := reg.LookupValue(cylinderMesh{})
		_, err := codec.DecodeRecord(b, make([]byte, 11))
		target := &wireerrors.Error{Phase: wireerrors.PhaseDecode, Kind: wireerrors.KindInvalidByteCount}
		if !errors.Is(err, target) {
			t.Errorf("got %v, want decode/invalid_byte_count", err)
		}
	})

	t.Run("unknown_type_id", func(t *testing.T) {
		d := codec.NewDecoder(reg)
		_, err := d.Decode(schema.TypeIDOf("codec_test::Unregistered"), nil)
		target := &wireerrors.Error{Phase: wireerrors.PhaseDispatch, Kind: wireerrors.KindUnknownType}
		if !errors.Is(err, target) {
			t.Errorf("got %v, want dispatch/unknown_type", err)
		}
	})

	t.Run("invalid_discriminant_in_buffer", func(t *testing.T) {
		b, _ := reg.LookupValue(voxelShape{})
		buf := make([]byte, 13)
		buf[0] = 7
		_, err := codec.DecodeRecord(b, buf)
		target := &wireerrors.Error{Phase: wireerrors.PhaseDecode, Kind: wireerrors.KindInvalidDiscriminant}
		if !errors.Is(err, target) {
			t.Errorf("got %v, want decode/invalid_discriminant", err)
		}
	})
}

func TestDecodeEnumDiscriminant(t *testing.T) {
	t.Run("empty_span", func(t *testing.T) {
		_, err := codec.DecodeEnumDiscriminant(sideEnum, nil)
		target := &wireerrors.Error{Phase: wireerrors.PhaseDecode, Kind: wireerrors.KindMissingDiscriminant}
		if !errors.Is(err, target) {
			t.Errorf("got %v, want decode/missing_discriminant", err)
		}
	})

	t.Run("multi_byte_span_for_one_byte_enum", func(t *testing.T) {
		_, err := codec.DecodeEnumDiscriminant(sideEnum, []byte{0, 0})
		target := &wireerrors.Error{Phase: wireerrors.PhaseDecode, Kind: wireerrors.KindInvalidByteCount}
		if !errors.Is(err, target) {
			t.Errorf("got %v, want decode/invalid_byte_count", err)
		}
	})

	t.Run("out_of_range", func(t *testing.T) {
		_, err := codec.DecodeEnumDiscriminant(sideEnum, []byte{2})
		target := &wireerrors.Error{Phase: wireerrors.PhaseDecode, Kind: wireerrors.KindInvalidDiscriminant}
		if !errors.Is(err, target) {
			t.Errorf("got %v, want decode/invalid_discriminant", err)
		}
	})

	t.Run("all_declared_values_accepted", func(t *testing.T) {
		for d := 0; d < sideEnum.NumVariants(); d++ {
			got, err := codec.DecodeEnumDiscriminant(sideEnum, []byte{byte(d)})
			if err != nil {
				t.Fatalf("discriminant %d: %v", d, err)
			}
			if got != uint8(d) {
				t.Errorf("got %d, want %d", got, d)
			}
		}
	})
}

func TestValidate(t *testing.T) {
	reg := newTestRegistry(t)
	for _, b := range reg.Bindings() {
		t.Run(b.Schema().Name(), func(t *testing.T) {
			if err := codec.Validate(b); err != nil {
				t.Errorf("validate: %v", err)
			}
		})
	}

	t.Run("all", func(t *testing.T) {
		if err := codec.ValidateAll(reg); err != nil {
			t.Errorf("validate all: %v", err)
		}
	})
}

func FuzzDecodeRecord(f *testing.F) {
	reg := schema.NewRegistry()
	b := reg.MustRegister(shapeSchema, voxelShape{})

	seed, _ := codec.AppendRecord(nil, b, voxelShape{
		Shape: shapeUnion{Which: 1, Sphere: sphereShape{Radius: 2}},
	})
	f.Add(seed)
	f.Add(make([]byte, 13))
	f.Add([]byte{2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		v, err := codec.DecodeRecord(b, data)
		if len(data) != b.Schema().Size() {
			if err == nil {
				t.Fatalf("decoded a %d-byte span, schema declares %d", len(data), b.Schema().Size())
			}
			return
		}
		if err != nil {
			return
		}
		re, err := codec.AppendRecord(nil, b, v)
		if err != nil {
			t.Fatalf("decoded value does not re-encode: %v", err)
		}
		if len(re) != b.Schema().Size() {
			t.Fatalf("re-encoded %d bytes, schema declares %d", len(re), b.Schema().Size())
		}
	})
}

func BenchmarkAppendRecord(b *testing.B) {
	reg := newTestRegistry(b)
	bind, _ := reg.LookupValue(referenceFrame{})
	frame := referenceFrame{
		Position:    vecmath.Point3{X: 1, Y: 2, Z: 3},
		Orientation: vecmath.Identity(),
	}
	buf := make([]byte, 0, 64)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		buf, err = codec.AppendRecord(buf[:0], bind, frame)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeRecord(b *testing.B) {
	reg := newTestRegistry(b)
	bind, _ := reg.LookupValue(referenceFrame{})
	buf, err := codec.AppendRecord(nil, bind, referenceFrame{
		Position:    vecmath.Point3{X: 1, Y: 2, Z: 3},
		Orientation: vecmath.Identity(),
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.DecodeRecord(bind, buf); err != nil {
			b.Fatal(err)
		}
	}
}
