package schema

import (
	"github.com/lars-frogner/impact-wire/errors"
)

// Schema is the declared, ordered field list of a component type together
// with its derived type ID, packed size and alignment. Defined once,
// immutable thereafter; the derived triple must equal the receiving engine's
// compiled definition exactly.
type Schema struct {
	name      string
	typeID    TypeID
	fields    []FieldSpec
	size      int
	alignment int
}

// New constructs a schema from its fully-qualified name and ordered fields.
// The size is the packed sum of the field widths (no padding is inserted
// between fields); the alignment is the largest field alignment, at least
// one so that zero-field marker components have a valid layout.
func New(name string, fields ...FieldSpec) (*Schema, error) {
	if name == "" {
		return nil, errors.New(errors.PhaseRegister, errors.KindRegistration).
			Detail("schema name must not be empty").
			Build()
	}

	size := 0
	alignment := 1
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if err := f.validate(); err != nil {
			return nil, errors.New(errors.PhaseRegister, errors.KindRegistration).
				Component(name).
				Cause(err).
				Detail("invalid field declaration").
				Build()
		}
		if _, dup := seen[f.Name]; dup {
			return nil, errors.New(errors.PhaseRegister, errors.KindRegistration).
				Component(name).
				Detail("duplicate field name %q", f.Name).
				Build()
		}
		seen[f.Name] = struct{}{}

		size += f.Size()
		if a := f.Alignment(); a > alignment {
			alignment = a
		}
	}

	return &Schema{
		name:      name,
		typeID:    TypeIDOf(name),
		fields:    fields,
		size:      size,
		alignment: alignment,
	}, nil
}

// MustNew is New that panics on declaration defects. Schema declarations
// are compile-time constants, so a failure is a programmer error.
func MustNew(name string, fields ...FieldSpec) *Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema's fully-qualified name.
func (s *Schema) Name() string { return s.name }

// TypeID returns the schema's stable 64-bit identifier.
func (s *Schema) TypeID() TypeID { return s.typeID }

// Fields returns the declared fields in wire order.
func (s *Schema) Fields() []FieldSpec { return s.fields }

// Size returns the packed byte width of one record.
func (s *Schema) Size() int { return s.size }

// Alignment returns the record's alignment requirement.
func (s *Schema) Alignment() int { return s.alignment }

// HasEnums reports whether any field (directly) is an enum. Schemas without
// enums decode successfully from any byte buffer of the declared size, which
// the round-trip validator exploits.
func (s *Schema) HasEnums() bool {
	for _, f := range s.fields {
		if f.Kind == KindEnum {
			return true
		}
	}
	return false
}
