package codec

import (
	"reflect"

	"github.com/lars-frogner/impact-wire/errors"
	"github.com/lars-frogner/impact-wire/schema"
)

// Encoder turns registered component values into their packed wire
// representation. Stateless apart from the registry reference; safe for
// concurrent use.
type Encoder struct {
	reg *schema.Registry
}

// NewEncoder creates an encoder over the given registry.
func NewEncoder(reg *schema.Registry) *Encoder {
	return &Encoder{reg: reg}
}

// Registry returns the registry the encoder resolves bindings from.
func (e *Encoder) Registry() *schema.Registry { return e.reg }

// Append encodes v, whose dynamic type must be registered, and appends the
// packed bytes to dst.
func (e *Encoder) Append(dst []byte, v any) ([]byte, error) {
	b, ok := e.reg.LookupValue(v)
	if !ok {
		return nil, errors.New(errors.PhaseEncode, errors.KindUnknownType).
			GoType(reflect.TypeOf(v).String()).
			Detail("no schema registered for Go type").
			Build()
	}
	return AppendRecord(dst, b, v)
}

// AppendRecord encodes one record of the bound schema and appends its packed
// bytes to dst. The encoded width always equals the schema's declared size;
// that equality is checked once per schema by Validate, not per call here.
func AppendRecord(dst []byte, b *schema.Binding, v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Type() != b.GoType() {
		goType := "<nil>"
		if rv.IsValid() {
			goType = rv.Type().String()
		}
		return nil, errors.TypeMismatch(errors.PhaseEncode, nil, goType, b.Schema().Name())
	}

	var err error
	for i := range b.Fields() {
		bf := &b.Fields()[i]
		fv := rv.Field(bf.Index)
		if bf.Spec.Len > 0 {
			for j := 0; j < bf.Spec.Len; j++ {
				dst, err = appendField(dst, b.Schema().Name(), bf, fv.Index(j))
				if err != nil {
					return nil, err
				}
			}
		} else {
			dst, err = appendField(dst, b.Schema().Name(), bf, fv)
			if err != nil {
				return nil, err
			}
		}
	}
	return dst, nil
}

func appendField(dst []byte, component string, bf *schema.BoundField, fv reflect.Value) ([]byte, error) {
	switch bf.Spec.Kind {
	case schema.KindBool:
		return AppendBool(dst, fv.Bool()), nil
	case schema.KindU8:
		return AppendU8(dst, uint8(fv.Uint())), nil
	case schema.KindU16:
		return AppendU16(dst, uint16(fv.Uint())), nil
	case schema.KindU32:
		return AppendU32(dst, uint32(fv.Uint())), nil
	case schema.KindU64:
		return AppendU64(dst, fv.Uint()), nil
	case schema.KindI8:
		return AppendI8(dst, int8(fv.Int())), nil
	case schema.KindI16:
		return AppendI16(dst, int16(fv.Int())), nil
	case schema.KindI32:
		return AppendI32(dst, int32(fv.Int())), nil
	case schema.KindI64:
		return AppendI64(dst, fv.Int()), nil
	case schema.KindF32:
		return AppendF32(dst, float32(fv.Float())), nil
	case schema.KindF64:
		return AppendF64(dst, fv.Float()), nil
	case schema.KindVector3, schema.KindPoint3, schema.KindUnitVector3,
		schema.KindUnitQuaternion, schema.KindVector3F64, schema.KindPoint3F64:
		return appendComposite(dst, fv), nil
	case schema.KindEnum:
		return appendEnum(dst, component, bf, fv)
	default:
		return nil, errors.Unsupported(errors.PhaseEncode, "field kind "+bf.Spec.Kind.String())
	}
}

func appendComposite(dst []byte, fv reflect.Value) []byte {
	for i := 0; i < fv.NumField(); i++ {
		c := fv.Field(i)
		if c.Kind() == reflect.Float32 {
			dst = AppendF32(dst, float32(c.Float()))
		} else {
			dst = AppendF64(dst, c.Float())
		}
	}
	return dst
}

// appendEnum writes the discriminant byte, the selected variant's payload,
// and zero padding up to the enum's declared width.
func appendEnum(dst []byte, component string, bf *schema.BoundField, fv reflect.Value) ([]byte, error) {
	be := bf.Enum
	spec := be.Spec

	var disc uint8
	if be.Unit {
		disc = uint8(fv.Uint())
	} else {
		disc = uint8(fv.Field(be.TagIndex).Uint())
	}
	if int(disc) >= spec.NumVariants() {
		return nil, errors.New(errors.PhaseEncode, errors.KindInvalidDiscriminant).
			Component(spec.Name()).
			Path(bf.Spec.Name).
			Value(disc).
			Detail("discriminant %d out of range (enum has %d variants)", disc, spec.NumVariants()).
			Build()
	}

	start := len(dst)
	dst = append(dst, disc)

	if !be.Unit && be.VariantFields[disc] != -1 {
		pv := fv.Field(be.VariantFields[disc])
		payload := be.VariantPayloads[disc]
		var err error
		for i := range payload {
			pf := &payload[i]
			if pf.Spec.Len > 0 {
				for j := 0; j < pf.Spec.Len; j++ {
					dst, err = appendField(dst, component, pf, pv.Field(pf.Index).Index(j))
					if err != nil {
						return nil, err
					}
				}
			} else {
				dst, err = appendField(dst, component, pf, pv.Field(pf.Index))
				if err != nil {
					return nil, err
				}
			}
		}
	}

	for len(dst)-start < spec.Size() {
		dst = append(dst, 0)
	}
	return dst, nil
}
