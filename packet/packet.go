package packet

import (
	"encoding/binary"

	"github.com/lars-frogner/impact-wire/errors"
	"github.com/lars-frogner/impact-wire/schema"
)

// Header sizes in bytes. A single-value packet header carries the type ID,
// record size and alignment; a multi-value header adds the record count.
const (
	SingleHeaderSize = 24
	MultiHeaderSize  = 32
)

// Header is the decoded framing of one packet.
type Header struct {
	TypeID    schema.TypeID
	Size      uint64
	Alignment uint64
	// Count is the number of records in the payload; always 1 for
	// single-value packets.
	Count uint64
	// Multi reports which header form framed the packet.
	Multi bool
}

// AppendSingle frames one encoded record as a single-value packet and
// appends it to dst. The payload length must equal the schema's declared
// size.
func AppendSingle(dst []byte, s *schema.Schema, payload []byte) ([]byte, error) {
	if len(payload) != s.Size() {
		return nil, errors.InvalidByteCount(errors.PhaseFrame, []string{s.Name()}, len(payload), s.Size())
	}
	dst = binary.LittleEndian.AppendUint64(dst, s.TypeID().Uint64())
	dst = binary.LittleEndian.AppendUint64(dst, uint64(s.Size()))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(s.Alignment()))
	return append(dst, payload...), nil
}

// AppendMulti frames count encoded records as a multi-value packet and
// appends it to dst. The payload length must equal count times the schema's
// declared size; zero-size marker components carry an empty payload for any
// count.
func AppendMulti(dst []byte, s *schema.Schema, count int, payload []byte) ([]byte, error) {
	if count < 0 {
		return nil, errors.New(errors.PhaseFrame, errors.KindInvalidData).
			Component(s.Name()).
			Detail("negative record count %d", count).
			Build()
	}
	if len(payload) != s.Size()*count {
		return nil, errors.InvalidByteCount(errors.PhaseFrame, []string{s.Name()}, len(payload), s.Size()*count)
	}
	dst = binary.LittleEndian.AppendUint64(dst, s.TypeID().Uint64())
	dst = binary.LittleEndian.AppendUint64(dst, uint64(s.Size()))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(s.Alignment()))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(count))
	return append(dst, payload...), nil
}

// ParseSingleHeader decodes a single-value packet header from the start of
// buf.
func ParseSingleHeader(buf []byte) (Header, error) {
	if len(buf) < SingleHeaderSize {
		return Header{}, errors.InvalidByteCount(errors.PhaseFrame, nil, len(buf), SingleHeaderSize)
	}
	return Header{
		TypeID:    schema.TypeID(binary.LittleEndian.Uint64(buf[0:8])),
		Size:      binary.LittleEndian.Uint64(buf[8:16]),
		Alignment: binary.LittleEndian.Uint64(buf[16:24]),
		Count:     1,
	}, nil
}

// ParseMultiHeader decodes a multi-value packet header from the start of
// buf.
func ParseMultiHeader(buf []byte) (Header, error) {
	if len(buf) < MultiHeaderSize {
		return Header{}, errors.InvalidByteCount(errors.PhaseFrame, nil, len(buf), MultiHeaderSize)
	}
	return Header{
		TypeID:    schema.TypeID(binary.LittleEndian.Uint64(buf[0:8])),
		Size:      binary.LittleEndian.Uint64(buf[8:16]),
		Alignment: binary.LittleEndian.Uint64(buf[16:24]),
		Count:     binary.LittleEndian.Uint64(buf[24:32]),
		Multi:     true,
	}, nil
}

// Reader walks the packets of a construction buffer in order. The buffer
// form (single or multi) is fixed for the whole buffer; the two forms are
// never mixed.
type Reader struct {
	buf   []byte
	off   int
	multi bool
}

// NewReader creates a reader over a buffer of single-value packets.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// NewMultiReader creates a reader over a buffer of multi-value packets.
func NewMultiReader(buf []byte) *Reader {
	return &Reader{buf: buf, multi: true}
}

// More reports whether unread bytes remain.
func (r *Reader) More() bool {
	return r.off < len(r.buf)
}

// Next decodes the next packet and returns its header and payload span. The
// payload aliases the underlying buffer. A truncated header or payload is an
// invalid byte count. The size and count words come off the wire and are
// bounded against the remaining bytes before any length arithmetic, so
// forged values cannot overflow the payload span.
func (r *Reader) Next() (Header, []byte, error) {
	rest := r.buf[r.off:]

	var h Header
	var err error
	headerSize := SingleHeaderSize
	if r.multi {
		headerSize = MultiHeaderSize
		h, err = ParseMultiHeader(rest)
	} else {
		h, err = ParseSingleHeader(rest)
	}
	if err != nil {
		return Header{}, nil, err
	}

	avail := uint64(len(rest) - headerSize)
	if h.Size != 0 && h.Count > avail/h.Size {
		return Header{}, nil, errors.New(errors.PhaseFrame, errors.KindInvalidByteCount).
			Detail("header declares size %d and count %d with %d payload bytes remaining",
				h.Size, h.Count, avail).
			Build()
	}

	payloadLen := int(h.Size * h.Count)
	payload := rest[headerSize : headerSize+payloadLen]
	r.off += headerSize + payloadLen
	return h, payload, nil
}
