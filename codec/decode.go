package codec

import (
	stderrors "errors"
	"reflect"

	"github.com/lars-frogner/impact-wire/errors"
	"github.com/lars-frogner/impact-wire/schema"
)

// Decoder turns packed wire spans back into registered component values.
// Stateless apart from the registry reference; safe for concurrent use.
type Decoder struct {
	reg *schema.Registry
}

// NewDecoder creates a decoder over the given registry.
func NewDecoder(reg *schema.Registry) *Decoder {
	return &Decoder{reg: reg}
}

// Registry returns the registry the decoder resolves bindings from.
func (d *Decoder) Registry() *schema.Registry { return d.reg }

// Decode resolves the type ID and decodes span into a value of the bound Go
// type. An unregistered ID signals schema skew between the two sides of the
// wire.
func (d *Decoder) Decode(id schema.TypeID, span []byte) (any, error) {
	b, ok := d.reg.LookupID(id)
	if !ok {
		return nil, errors.UnknownType(id.Uint64())
	}
	return DecodeRecord(b, span)
}

// DecodeRecord decodes one packed record of the bound schema. The span must
// be exactly the schema's declared size.
func DecodeRecord(b *schema.Binding, span []byte) (any, error) {
	s := b.Schema()
	if len(span) != s.Size() {
		return nil, errors.InvalidByteCount(errors.PhaseDecode, nil, len(span), s.Size())
	}

	out := reflect.New(b.GoType()).Elem()
	off := 0
	for i := range b.Fields() {
		bf := &b.Fields()[i]
		fv := out.Field(bf.Index)
		width := elemWidth(bf.Spec)
		if bf.Spec.Len > 0 {
			for j := 0; j < bf.Spec.Len; j++ {
				if err := decodeField(span[off:off+width], bf, fv.Index(j)); err != nil {
					return nil, err
				}
				off += width
			}
		} else {
			if err := decodeField(span[off:off+width], bf, fv); err != nil {
				return nil, err
			}
			off += width
		}
	}
	return out.Interface(), nil
}

// elemWidth is the packed width of a single element of the field, without
// the array multiplier.
func elemWidth(spec schema.FieldSpec) int {
	if spec.Kind == schema.KindEnum {
		return spec.Enum.Size()
	}
	return spec.Kind.Size()
}

func decodeField(span []byte, bf *schema.BoundField, fv reflect.Value) error {
	switch bf.Spec.Kind {
	case schema.KindBool:
		v, err := DecodeBool(span)
		if err != nil {
			return err
		}
		fv.SetBool(v)
	case schema.KindU8:
		v, err := DecodeU8(span)
		if err != nil {
			return err
		}
		fv.SetUint(uint64(v))
	case schema.KindU16:
		v, err := DecodeU16(span)
		if err != nil {
			return err
		}
		fv.SetUint(uint64(v))
	case schema.KindU32:
		v, err := DecodeU32(span)
		if err != nil {
			return err
		}
		fv.SetUint(uint64(v))
	case schema.KindU64:
		v, err := DecodeU64(span)
		if err != nil {
			return err
		}
		fv.SetUint(v)
	case schema.KindI8:
		v, err := DecodeI8(span)
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
	case schema.KindI16:
		v, err := DecodeI16(span)
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
	case schema.KindI32:
		v, err := DecodeI32(span)
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
	case schema.KindI64:
		v, err := DecodeI64(span)
		if err != nil {
			return err
		}
		fv.SetInt(v)
	case schema.KindF32:
		v, err := DecodeF32(span)
		if err != nil {
			return err
		}
		fv.SetFloat(float64(v))
	case schema.KindF64:
		v, err := DecodeF64(span)
		if err != nil {
			return err
		}
		fv.SetFloat(v)
	case schema.KindVector3, schema.KindPoint3, schema.KindUnitVector3,
		schema.KindUnitQuaternion, schema.KindVector3F64, schema.KindPoint3F64:
		return decodeComposite(span, fv)
	case schema.KindEnum:
		return decodeEnum(span, bf, fv)
	default:
		return errors.Unsupported(errors.PhaseDecode, "field kind "+bf.Spec.Kind.String())
	}
	return nil
}

func decodeComposite(span []byte, fv reflect.Value) error {
	off := 0
	for i := 0; i < fv.NumField(); i++ {
		c := fv.Field(i)
		if c.Kind() == reflect.Float32 {
			v, err := DecodeF32(span[off : off+4])
			if err != nil {
				return err
			}
			c.SetFloat(float64(v))
			off += 4
		} else {
			v, err := DecodeF64(span[off : off+8])
			if err != nil {
				return err
			}
			c.SetFloat(v)
			off += 8
		}
	}
	return nil
}

// decodeEnum reads the discriminant byte and the selected variant's payload.
// Padding bytes beyond the payload are not interpreted; the encoder always
// writes them as zero.
func decodeEnum(span []byte, bf *schema.BoundField, fv reflect.Value) error {
	be := bf.Enum
	disc, err := DecodeEnumDiscriminant(be.Spec, span)
	if err != nil {
		var werr *errors.Error
		if stderrors.As(err, &werr) && len(werr.Path) == 0 {
			werr.Path = []string{bf.Spec.Name}
		}
		return err
	}

	if be.Unit {
		fv.SetUint(uint64(disc))
		return nil
	}

	fv.Field(be.TagIndex).SetUint(uint64(disc))
	if be.VariantFields[disc] == -1 {
		return nil
	}

	pv := fv.Field(be.VariantFields[disc])
	payload := be.VariantPayloads[disc]
	off := 1
	for i := range payload {
		pf := &payload[i]
		width := elemWidth(pf.Spec)
		if pf.Spec.Len > 0 {
			for j := 0; j < pf.Spec.Len; j++ {
				if err := decodeField(span[off:off+width], pf, pv.Field(pf.Index).Index(j)); err != nil {
					return err
				}
				off += width
			}
		} else {
			if err := decodeField(span[off:off+width], pf, pv.Field(pf.Index)); err != nil {
				return err
			}
			off += width
		}
	}
	return nil
}
