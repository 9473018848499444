package schema

// Kind identifies the semantic type of a component field.
type Kind uint8

const (
	KindBool Kind = iota
	KindU8
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindVector3
	KindPoint3
	KindUnitVector3
	KindUnitQuaternion
	KindVector3F64
	KindPoint3F64
	KindEnum
)

var kindNames = [...]string{
	KindBool:           "bool",
	KindU8:             "u8",
	KindU16:            "u16",
	KindU32:            "u32",
	KindU64:            "u64",
	KindI8:             "i8",
	KindI16:            "i16",
	KindI32:            "i32",
	KindI64:            "i64",
	KindF32:            "f32",
	KindF64:            "f64",
	KindVector3:        "vector3",
	KindPoint3:         "point3",
	KindUnitVector3:    "unit_vector3",
	KindUnitQuaternion: "unit_quaternion",
	KindVector3F64:     "vector3_f64",
	KindPoint3F64:      "point3_f64",
	KindEnum:           "enum",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPrimitive reports whether k is a single fixed-width numeric type.
func (k Kind) IsPrimitive() bool {
	return k <= KindF64
}

// IsComposite reports whether k is a multi-component geometric type.
func (k Kind) IsComposite() bool {
	return k >= KindVector3 && k <= KindPoint3F64
}

// kindLayouts gives the packed byte width and alignment requirement of every
// non-enum kind. Composite types encode as their components in order with no
// padding, so their width is the component sum while their alignment is the
// component alignment.
var kindLayouts = [...]struct{ size, align int }{
	KindBool:           {1, 1},
	KindU8:             {1, 1},
	KindU16:            {2, 2},
	KindU32:            {4, 4},
	KindU64:            {8, 8},
	KindI8:             {1, 1},
	KindI16:            {2, 2},
	KindI32:            {4, 4},
	KindI64:            {8, 8},
	KindF32:            {4, 4},
	KindF64:            {8, 8},
	KindVector3:        {12, 4},
	KindPoint3:         {12, 4},
	KindUnitVector3:    {12, 4},
	KindUnitQuaternion: {16, 4},
	KindVector3F64:     {24, 8},
	KindPoint3F64:      {24, 8},
}

// Size returns the packed byte width of k. Enum widths depend on the enum's
// declared variants; use EnumSpec.Size for those.
func (k Kind) Size() int {
	if int(k) < len(kindLayouts) {
		return kindLayouts[k].size
	}
	return 0
}

// Alignment returns the alignment requirement of k.
func (k Kind) Alignment() int {
	if int(k) < len(kindLayouts) {
		return kindLayouts[k].align
	}
	return 1
}
