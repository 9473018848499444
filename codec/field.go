package codec

import (
	"encoding/binary"
	"math"

	"github.com/lars-frogner/impact-wire/errors"
	"github.com/lars-frogner/impact-wire/schema"
)

// All numeric fields are encoded little-endian. The original protocol left
// the byte order implicit in the native representation of both sides; this
// implementation fixes little-endian as the wire order so heterogeneous
// platforms agree.

// AppendBool appends a single byte, 1 for true and 0 for false.
func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

// AppendU8 appends v as one byte.
func AppendU8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

// AppendU16 appends v as two little-endian bytes.
func AppendU16(dst []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, v)
}

// AppendU32 appends v as four little-endian bytes.
func AppendU32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// AppendU64 appends v as eight little-endian bytes.
func AppendU64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

// AppendI8 appends v as one two's-complement byte.
func AppendI8(dst []byte, v int8) []byte {
	return append(dst, uint8(v))
}

// AppendI16 appends v as two little-endian two's-complement bytes.
func AppendI16(dst []byte, v int16) []byte {
	return binary.LittleEndian.AppendUint16(dst, uint16(v))
}

// AppendI32 appends v as four little-endian two's-complement bytes.
func AppendI32(dst []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(dst, uint32(v))
}

// AppendI64 appends v as eight little-endian two's-complement bytes.
func AppendI64(dst []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(v))
}

// AppendF32 appends the exact IEEE-754 bit pattern of v, little-endian.
func AppendF32(dst []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
}

// AppendF64 appends the exact IEEE-754 bit pattern of v, little-endian.
func AppendF64(dst []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(v))
}

func checkWidth(span []byte, width int) error {
	if len(span) != width {
		return errors.InvalidByteCount(errors.PhaseDecode, nil, len(span), width)
	}
	return nil
}

// DecodeBool decodes a one-byte span; any nonzero byte is true.
func DecodeBool(span []byte) (bool, error) {
	if err := checkWidth(span, 1); err != nil {
		return false, err
	}
	return span[0] != 0, nil
}

// DecodeU8 decodes a one-byte span.
func DecodeU8(span []byte) (uint8, error) {
	if err := checkWidth(span, 1); err != nil {
		return 0, err
	}
	return span[0], nil
}

// DecodeU16 decodes a two-byte little-endian span.
func DecodeU16(span []byte) (uint16, error) {
	if err := checkWidth(span, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(span), nil
}

// DecodeU32 decodes a four-byte little-endian span.
func DecodeU32(span []byte) (uint32, error) {
	if err := checkWidth(span, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(span), nil
}

// DecodeU64 decodes an eight-byte little-endian span.
func DecodeU64(span []byte) (uint64, error) {
	if err := checkWidth(span, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(span), nil
}

// DecodeI8 decodes a one-byte two's-complement span.
func DecodeI8(span []byte) (int8, error) {
	if err := checkWidth(span, 1); err != nil {
		return 0, err
	}
	return int8(span[0]), nil
}

// DecodeI16 decodes a two-byte little-endian two's-complement span.
func DecodeI16(span []byte) (int16, error) {
	if err := checkWidth(span, 2); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(span)), nil
}

// DecodeI32 decodes a four-byte little-endian two's-complement span.
func DecodeI32(span []byte) (int32, error) {
	if err := checkWidth(span, 4); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(span)), nil
}

// DecodeI64 decodes an eight-byte little-endian two's-complement span.
func DecodeI64(span []byte) (int64, error) {
	if err := checkWidth(span, 8); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(span)), nil
}

// DecodeF32 decodes a four-byte IEEE-754 span, preserving the bit pattern.
func DecodeF32(span []byte) (float32, error) {
	if err := checkWidth(span, 4); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(span)), nil
}

// DecodeF64 decodes an eight-byte IEEE-754 span, preserving the bit pattern.
func DecodeF64(span []byte) (float64, error) {
	if err := checkWidth(span, 8); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(span)), nil
}

// DecodeEnumDiscriminant validates and extracts the discriminant of an enum
// span. An empty span is missing its discriminant; a span of the wrong
// declared width is an invalid byte count; an out-of-range tag is an invalid
// discriminant.
func DecodeEnumDiscriminant(e *schema.EnumSpec, span []byte) (uint8, error) {
	if len(span) == 0 {
		return 0, errors.MissingDiscriminant(nil, e.Name())
	}
	if len(span) != e.Size() {
		return 0, errors.InvalidByteCount(errors.PhaseDecode, nil, len(span), e.Size())
	}
	disc := span[0]
	if int(disc) >= e.NumVariants() {
		return 0, errors.InvalidDiscriminant(nil, e.Name(), disc, e.NumVariants())
	}
	return disc, nil
}
