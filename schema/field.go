package schema

import (
	"github.com/lars-frogner/impact-wire/errors"
)

// FieldSpec declares one field of a component schema.
type FieldSpec struct {
	// Name is the field's wire name, conventionally snake_case.
	Name string
	// Kind is the field's semantic type.
	Kind Kind
	// Enum gives the variant declaration for KindEnum fields and must be
	// nil otherwise.
	Enum *EnumSpec
	// Len is the fixed element count for array fields; zero means a single
	// value.
	Len int
}

// Size returns the packed byte width of the field, including the array
// multiplier.
func (f FieldSpec) Size() int {
	var elem int
	if f.Kind == KindEnum {
		elem = f.Enum.Size()
	} else {
		elem = f.Kind.Size()
	}
	if f.Len > 0 {
		return elem * f.Len
	}
	return elem
}

// Alignment returns the alignment requirement of the field.
func (f FieldSpec) Alignment() int {
	if f.Kind == KindEnum {
		return f.Enum.Alignment()
	}
	return f.Kind.Alignment()
}

func (f FieldSpec) validate() error {
	if f.Name == "" {
		return errors.New(errors.PhaseRegister, errors.KindRegistration).
			Detail("field name must not be empty").
			Build()
	}
	if f.Len < 0 {
		return errors.New(errors.PhaseRegister, errors.KindRegistration).
			Path(f.Name).
			Detail("array length must not be negative").
			Build()
	}
	if (f.Kind == KindEnum) != (f.Enum != nil) {
		return errors.New(errors.PhaseRegister, errors.KindRegistration).
			Path(f.Name).
			Detail("enum spec must be set exactly for enum fields").
			Build()
	}
	return nil
}

// VariantSpec declares one variant of an enum field. Payload fields may be
// primitives and composites; nested enums are not supported, matching the
// shape of the component definitions this protocol carries.
type VariantSpec struct {
	Name   string
	Fields []FieldSpec
}

// payloadSize returns the packed byte width of the variant's payload.
func (v VariantSpec) payloadSize() int {
	total := 0
	for _, f := range v.Fields {
		total += f.Size()
	}
	return total
}

// EnumSpec declares the variants of an enumerated field and their derived
// layout. Immutable once constructed.
type EnumSpec struct {
	name      string
	variants  []VariantSpec
	size      int
	alignment int
}

// NewEnum constructs an enum declaration. Discriminant values are assigned
// densely from zero in declaration order. The enum's wire width is one
// discriminant byte plus the widest variant payload; narrower variants are
// zero-padded to that width on encode.
func NewEnum(name string, variants ...VariantSpec) (*EnumSpec, error) {
	if name == "" {
		return nil, errors.New(errors.PhaseRegister, errors.KindRegistration).
			Detail("enum name must not be empty").
			Build()
	}
	if len(variants) == 0 {
		return nil, errors.New(errors.PhaseRegister, errors.KindRegistration).
			Component(name).
			Detail("enum must declare at least one variant").
			Build()
	}
	if len(variants) > 256 {
		return nil, errors.New(errors.PhaseRegister, errors.KindRegistration).
			Component(name).
			Detail("enum has %d variants, discriminant is one byte", len(variants)).
			Build()
	}

	maxPayload := 0
	align := 1
	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if v.Name == "" {
			return nil, errors.New(errors.PhaseRegister, errors.KindRegistration).
				Component(name).
				Detail("variant name must not be empty").
				Build()
		}
		if _, dup := seen[v.Name]; dup {
			return nil, errors.New(errors.PhaseRegister, errors.KindRegistration).
				Component(name).
				Detail("duplicate variant name %q", v.Name).
				Build()
		}
		seen[v.Name] = struct{}{}

		for _, f := range v.Fields {
			if err := f.validate(); err != nil {
				return nil, err
			}
			if f.Kind == KindEnum {
				return nil, errors.New(errors.PhaseRegister, errors.KindRegistration).
					Component(name).
					Path(v.Name, f.Name).
					Detail("nested enums are not supported").
					Build()
			}
			if a := f.Alignment(); a > align {
				align = a
			}
		}
		if s := v.payloadSize(); s > maxPayload {
			maxPayload = s
		}
	}

	return &EnumSpec{
		name:      name,
		variants:  variants,
		size:      1 + maxPayload,
		alignment: align,
	}, nil
}

// MustNewEnum is NewEnum that panics on declaration defects. Enum
// declarations are compile-time constants, so a failure is a programmer
// error.
func MustNewEnum(name string, variants ...VariantSpec) *EnumSpec {
	e, err := NewEnum(name, variants...)
	if err != nil {
		panic(err)
	}
	return e
}

// Name returns the enum's declared name.
func (e *EnumSpec) Name() string { return e.name }

// Variants returns the declared variants in discriminant order.
func (e *EnumSpec) Variants() []VariantSpec { return e.variants }

// NumVariants returns the number of declared variants.
func (e *EnumSpec) NumVariants() int { return len(e.variants) }

// Size returns the enum's packed wire width: one discriminant byte plus the
// widest variant payload.
func (e *EnumSpec) Size() int { return e.size }

// Alignment returns the enum's alignment requirement.
func (e *EnumSpec) Alignment() int { return e.alignment }

// IsUnit reports whether every variant carries no payload.
func (e *EnumSpec) IsUnit() bool { return e.size == 1 }
