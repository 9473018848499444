package schema

import (
	"reflect"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/lars-frogner/impact-wire/errors"
)

// Binding pairs a schema with the Go struct type representing its records,
// plus the compiled field metadata the codec walks. Compiled once at
// registration and safe for concurrent use afterwards.
type Binding struct {
	schema *Schema
	goType reflect.Type
	fields []BoundField
}

// Schema returns the bound schema.
func (b *Binding) Schema() *Schema { return b.schema }

// GoType returns the bound Go struct type.
func (b *Binding) GoType() reflect.Type { return b.goType }

// Fields returns the compiled fields in wire order.
func (b *Binding) Fields() []BoundField { return b.fields }

// BoundField is one schema field resolved against the Go struct.
type BoundField struct {
	Spec FieldSpec
	// Index is the field's index within the bound struct.
	Index int
	// Enum holds the resolved variant layout for enum fields.
	Enum *BoundEnum
}

// BoundEnum is an enum field resolved against its Go representation.
//
// Unit enums (no variant carries a payload) bind to a uint8-kinded Go type
// holding the discriminant directly. Payload enums bind to a tagged-union
// struct: the first exported field is the uint8-kinded discriminant, and
// each payload-carrying variant has one struct field (matched by name)
// whose own fields bind to the variant's payload fields.
type BoundEnum struct {
	Spec *EnumSpec
	Unit bool
	// TagIndex is the discriminant field's index (payload enums only).
	TagIndex int
	// VariantFields[i] is the struct field index holding variant i's
	// payload, or -1 for unit variants.
	VariantFields []int
	// VariantPayloads[i] lists variant i's payload fields resolved against
	// the payload struct, nil for unit variants.
	VariantPayloads [][]BoundField
}

// Registry binds schemas to Go types. Registration happens once at startup;
// lookups afterwards are concurrency-safe.
type Registry struct {
	mu     sync.RWMutex
	byID   map[TypeID]*Binding
	byType map[reflect.Type]*Binding
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[TypeID]*Binding),
		byType: make(map[reflect.Type]*Binding),
	}
}

// Register compiles and stores the binding between s and the struct type of
// prototype. The struct is checked field by field against the schema: every
// declared field must resolve to an exported struct field of the matching
// Go kind. Registering the same type ID or Go type twice is a defect.
func (r *Registry) Register(s *Schema, prototype any) (*Binding, error) {
	goType := reflect.TypeOf(prototype)
	if goType == nil {
		return nil, errors.New(errors.PhaseRegister, errors.KindRegistration).
			Component(s.Name()).
			Detail("prototype must not be nil").
			Build()
	}
	if goType.Kind() == reflect.Ptr {
		goType = goType.Elem()
	}
	if goType.Kind() != reflect.Struct {
		return nil, errors.TypeMismatch(errors.PhaseRegister, nil, goType.String(), s.Name())
	}

	fields, err := compileFields(s.Name(), s.Fields(), goType, nil)
	if err != nil {
		return nil, err
	}

	binding := &Binding{schema: s, goType: goType, fields: fields}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byID[s.TypeID()]; ok {
		return nil, errors.New(errors.PhaseRegister, errors.KindRegistration).
			Component(s.Name()).
			Detail("type ID %s already registered for %s", s.TypeID(), existing.schema.Name()).
			Build()
	}
	if existing, ok := r.byType[goType]; ok {
		return nil, errors.New(errors.PhaseRegister, errors.KindRegistration).
			Component(s.Name()).
			GoType(goType.String()).
			Detail("Go type already bound to %s", existing.schema.Name()).
			Build()
	}
	r.byID[s.TypeID()] = binding
	r.byType[goType] = binding
	return binding, nil
}

// MustRegister is Register that panics on registration defects. Schemas and
// their Go types are fixed at build time, so a failure here is a programmer
// error, never a runtime condition.
func (r *Registry) MustRegister(s *Schema, prototype any) *Binding {
	b, err := r.Register(s, prototype)
	if err != nil {
		panic(err)
	}
	return b
}

// LookupID returns the binding registered for the given type ID.
func (r *Registry) LookupID(id TypeID) (*Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[id]
	return b, ok
}

// LookupType returns the binding registered for the given Go type.
func (r *Registry) LookupType(t reflect.Type) (*Binding, bool) {
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byType[t]
	return b, ok
}

// LookupValue returns the binding registered for the dynamic type of v.
func (r *Registry) LookupValue(v any) (*Binding, bool) {
	return r.LookupType(reflect.TypeOf(v))
}

// Bindings returns all registered bindings sorted by schema name.
func (r *Registry) Bindings() []*Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Binding, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].schema.Name() < out[j].schema.Name() })
	return out
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func compileFields(component string, specs []FieldSpec, goType reflect.Type, path []string) ([]BoundField, error) {
	fields := make([]BoundField, 0, len(specs))
	for _, spec := range specs {
		idx, ok := findGoField(goType, spec.Name)
		if !ok {
			return nil, errors.New(errors.PhaseRegister, errors.KindNotFound).
				Component(component).
				GoType(goType.String()).
				Path(append(append([]string{}, path...), spec.Name)...).
				Detail("no exported struct field matches %q", spec.Name).
				Build()
		}
		goField := goType.Field(idx)
		fieldPath := append(append([]string{}, path...), spec.Name)

		bound := BoundField{Spec: spec, Index: idx}

		fieldType := goField.Type
		if spec.Len > 0 {
			if fieldType.Kind() != reflect.Array || fieldType.Len() != spec.Len {
				return nil, errors.New(errors.PhaseRegister, errors.KindTypeMismatch).
					Component(component).
					GoType(goField.Type.String()).
					Path(fieldPath...).
					Detail("expected [%d]-element array", spec.Len).
					Build()
			}
			fieldType = fieldType.Elem()
		}

		if spec.Kind == KindEnum {
			be, err := compileEnum(component, spec.Enum, fieldType, fieldPath)
			if err != nil {
				return nil, err
			}
			bound.Enum = be
		} else if err := checkGoKind(component, spec.Kind, fieldType, fieldPath); err != nil {
			return nil, err
		}

		fields = append(fields, bound)
	}
	return fields, nil
}

func compileEnum(component string, spec *EnumSpec, goType reflect.Type, path []string) (*BoundEnum, error) {
	if spec.IsUnit() {
		if goType.Kind() != reflect.Uint8 {
			return nil, errors.New(errors.PhaseRegister, errors.KindTypeMismatch).
				Component(component).
				GoType(goType.String()).
				Path(path...).
				Detail("unit enum %s binds to a uint8-kinded type", spec.Name()).
				Build()
		}
		return &BoundEnum{Spec: spec, Unit: true}, nil
	}

	if goType.Kind() != reflect.Struct || goType.NumField() == 0 {
		return nil, errors.New(errors.PhaseRegister, errors.KindTypeMismatch).
			Component(component).
			GoType(goType.String()).
			Path(path...).
			Detail("payload enum %s binds to a tagged-union struct", spec.Name()).
			Build()
	}

	tag := goType.Field(0)
	if !tag.IsExported() || tag.Type.Kind() != reflect.Uint8 {
		return nil, errors.New(errors.PhaseRegister, errors.KindTypeMismatch).
			Component(component).
			GoType(goType.String()).
			Path(path...).
			Detail("first field of the tagged-union struct must be an exported uint8-kinded discriminant").
			Build()
	}

	variants := spec.Variants()
	variantFields := make([]int, len(variants))
	variantPayloads := make([][]BoundField, len(variants))
	for i, v := range variants {
		if len(v.Fields) == 0 {
			variantFields[i] = -1
			continue
		}
		idx, ok := findGoField(goType, v.Name)
		if !ok {
			return nil, errors.New(errors.PhaseRegister, errors.KindNotFound).
				Component(component).
				GoType(goType.String()).
				Path(append(append([]string{}, path...), v.Name)...).
				Detail("no struct field holds the payload of variant %q", v.Name).
				Build()
		}
		payloadType := goType.Field(idx).Type
		if payloadType.Kind() != reflect.Struct {
			return nil, errors.New(errors.PhaseRegister, errors.KindTypeMismatch).
				Component(component).
				GoType(payloadType.String()).
				Path(append(append([]string{}, path...), v.Name)...).
				Detail("variant payload binds to a struct").
				Build()
		}
		payload, err := compileFields(component, v.Fields, payloadType, append(append([]string{}, path...), v.Name))
		if err != nil {
			return nil, err
		}
		variantFields[i] = idx
		variantPayloads[i] = payload
	}

	return &BoundEnum{
		Spec:            spec,
		TagIndex:        0,
		VariantFields:   variantFields,
		VariantPayloads: variantPayloads,
	}, nil
}

func checkGoKind(component string, kind Kind, goType reflect.Type, path []string) error {
	ok := false
	var expected string
	switch kind {
	case KindBool:
		ok = goType.Kind() == reflect.Bool
		expected = "bool"
	case KindU8:
		ok = goType.Kind() == reflect.Uint8
		expected = "uint8"
	case KindU16:
		ok = goType.Kind() == reflect.Uint16
		expected = "uint16"
	case KindU32:
		ok = goType.Kind() == reflect.Uint32
		expected = "uint32"
	case KindU64:
		ok = goType.Kind() == reflect.Uint64
		expected = "uint64"
	case KindI8:
		ok = goType.Kind() == reflect.Int8
		expected = "int8"
	case KindI16:
		ok = goType.Kind() == reflect.Int16
		expected = "int16"
	case KindI32:
		ok = goType.Kind() == reflect.Int32
		expected = "int32"
	case KindI64:
		ok = goType.Kind() == reflect.Int64
		expected = "int64"
	case KindF32:
		ok = goType.Kind() == reflect.Float32
		expected = "float32"
	case KindF64:
		ok = goType.Kind() == reflect.Float64
		expected = "float64"
	case KindVector3, KindPoint3, KindUnitVector3:
		ok = isFloatStruct(goType, 3, reflect.Float32)
		expected = "struct of 3 float32"
	case KindUnitQuaternion:
		ok = isFloatStruct(goType, 4, reflect.Float32)
		expected = "struct of 4 float32"
	case KindVector3F64, KindPoint3F64:
		ok = isFloatStruct(goType, 3, reflect.Float64)
		expected = "struct of 3 float64"
	default:
		expected = "supported kind"
	}
	if !ok {
		return errors.New(errors.PhaseRegister, errors.KindTypeMismatch).
			Component(component).
			GoType(goType.String()).
			Path(path...).
			Detail("field kind %s requires %s", kind, expected).
			Build()
	}
	return nil
}

func isFloatStruct(t reflect.Type, n int, k reflect.Kind) bool {
	if t.Kind() != reflect.Struct || t.NumField() != n {
		return false
	}
	for i := 0; i < n; i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Type.Kind() != k {
			return false
		}
	}
	return true
}

// findGoField matches by: 1) wire:"name" tag, 2) case-insensitive,
// 3) snake_case conversion of the Go name.
func findGoField(goType reflect.Type, wireName string) (int, bool) {
	for i := 0; i < goType.NumField(); i++ {
		field := goType.Field(i)
		if !field.IsExported() {
			continue
		}

		if tag := field.Tag.Get("wire"); tag != "" {
			if tag == "-" {
				continue
			}
			if tag == wireName {
				return i, true
			}
			continue
		}

		if strings.EqualFold(field.Name, wireName) {
			return i, true
		}

		if toSnakeCase(field.Name) == wireName {
			return i, true
		}
	}
	return 0, false
}

func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteByte('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
