package codec

import (
	"bytes"
	stderrors "errors"
	"reflect"

	"github.com/lars-frogner/impact-wire/errors"
	"github.com/lars-frogner/impact-wire/schema"
)

// Validate self-tests the binding's codec: the zero value must encode to
// exactly the schema's declared size, and decoding a synthetic buffer
// followed by re-encoding must reproduce the buffer byte for byte.
//
// Fields without interpretation constraints are filled with a deterministic
// byte pattern, so the round trip covers arbitrary content. Bool bytes are
// constrained to 0 or 1 and enum regions are checked one discriminant at a
// time with zeroed padding, since those are the only byte positions the
// codec interprets rather than copies. Each enum is additionally checked to
// reject an out-of-range discriminant.
func Validate(b *schema.Binding) error {
	s := b.Schema()

	zero := reflect.New(b.GoType()).Elem().Interface()
	enc, err := AppendRecord(nil, b, zero)
	if err != nil {
		return errors.Wrap(errors.PhaseValidate, errors.KindInvalidData, err, "zero value does not encode")
	}
	if len(enc) != s.Size() {
		return errors.SizeMismatch(errors.PhaseValidate, s.Name(), len(enc), s.Size())
	}

	sites := enumSites(b)
	if len(sites) == 0 {
		return roundTrip(b, patternBuffer(b, nil))
	}

	for si, site := range sites {
		spec := site.field.Enum.Spec
		for d := 0; d < spec.NumVariants(); d++ {
			choices := make([]uint8, len(sites))
			choices[si] = uint8(d)
			if err := roundTrip(b, patternBuffer(b, choices)); err != nil {
				return err
			}
		}

		if n := spec.NumVariants(); n < 256 {
			buf := patternBuffer(b, make([]uint8, len(sites)))
			buf[site.offset] = uint8(n)
			_, err := DecodeRecord(b, buf)
			target := &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidDiscriminant}
			if !stderrors.Is(err, target) {
				return errors.New(errors.PhaseValidate, errors.KindInvalidData).
					Component(s.Name()).
					Path(site.field.Spec.Name).
					Detail("out-of-range discriminant %d was not rejected", n).
					Cause(err).
					Build()
			}
		}
	}
	return nil
}

// ValidateAll validates every binding in the registry, returning the first
// failure.
func ValidateAll(reg *schema.Registry) error {
	for _, b := range reg.Bindings() {
		if err := Validate(b); err != nil {
			return err
		}
	}
	return nil
}

func roundTrip(b *schema.Binding, buf []byte) error {
	v, err := DecodeRecord(b, buf)
	if err != nil {
		return errors.Wrap(errors.PhaseValidate, errors.KindInvalidData, err,
			"synthetic buffer does not decode")
	}
	re, err := AppendRecord(nil, b, v)
	if err != nil {
		return errors.Wrap(errors.PhaseValidate, errors.KindInvalidData, err,
			"decoded value does not re-encode")
	}
	if !bytes.Equal(buf, re) {
		return errors.New(errors.PhaseValidate, errors.KindInvalidData).
			Component(b.Schema().Name()).
			Detail("decode/encode round trip altered the buffer").
			Build()
	}
	return nil
}

// enumSite locates one enum field's first byte within the packed record.
type enumSite struct {
	offset int
	field  *schema.BoundField
}

func enumSites(b *schema.Binding) []enumSite {
	var sites []enumSite
	off := 0
	fields := b.Fields()
	for i := range fields {
		bf := &fields[i]
		if bf.Spec.Kind == schema.KindEnum {
			sites = append(sites, enumSite{offset: off, field: bf})
		}
		off += bf.Spec.Size()
	}
	return sites
}

// patternBuffer fills a record-sized buffer with a deterministic byte
// pattern, then normalizes the interpreted positions: bool bytes become 0 or
// 1, and each enum region gets the chosen discriminant with zeroed padding.
// choices holds one discriminant per enum field in declaration order; nil
// means the binding has no enum fields.
func patternBuffer(b *schema.Binding, choices []uint8) []byte {
	buf := make([]byte, b.Schema().Size())
	for i := range buf {
		buf[i] = byte(i*31 + 7)
	}

	off := 0
	ei := 0
	fields := b.Fields()
	for i := range fields {
		bf := &fields[i]
		width := elemWidth(bf.Spec)
		n := 1
		if bf.Spec.Len > 0 {
			n = bf.Spec.Len
		}
		for j := 0; j < n; j++ {
			switch bf.Spec.Kind {
			case schema.KindBool:
				buf[off] &= 1
			case schema.KindEnum:
				fillEnumRegion(buf[off:off+width], bf.Spec.Enum, choices[ei])
			}
			off += width
		}
		if bf.Spec.Kind == schema.KindEnum {
			ei++
		}
	}
	return buf
}

func fillEnumRegion(span []byte, e *schema.EnumSpec, disc uint8) {
	span[0] = disc
	variant := e.Variants()[disc]

	payloadEnd := 1
	for _, f := range variant.Fields {
		width := elemWidth(f)
		n := 1
		if f.Len > 0 {
			n = f.Len
		}
		for j := 0; j < n; j++ {
			if f.Kind == schema.KindBool {
				span[payloadEnd] &= 1
			}
			payloadEnd += width
		}
	}

	for i := payloadEnd; i < len(span); i++ {
		span[i] = 0
	}
}
