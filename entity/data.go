package entity

import (
	"reflect"

	"github.com/lars-frogner/impact-wire/codec"
	"github.com/lars-frogner/impact-wire/errors"
	"github.com/lars-frogner/impact-wire/packet"
	"github.com/lars-frogner/impact-wire/schema"
)

// Data accumulates the components of one entity as a buffer of single-value
// packets. Each component type may be appended at most once. Not safe for
// concurrent use; a buffer is built by one producer and then handed off.
type Data struct {
	enc  *codec.Encoder
	buf  []byte
	seen map[schema.TypeID]struct{}
}

// NewData creates an empty construction buffer for one entity.
func NewData(enc *codec.Encoder) *Data {
	return &Data{enc: enc, seen: make(map[schema.TypeID]struct{})}
}

// Append encodes v, whose dynamic type must be registered, and frames it as
// the entity's next component packet. Appending a second value of a type the
// entity already carries is rejected.
func (d *Data) Append(v any) error {
	b, ok := d.enc.Registry().LookupValue(v)
	if !ok {
		return errors.New(errors.PhaseAppend, errors.KindUnknownType).
			GoType(reflect.TypeOf(v).String()).
			Detail("no schema registered for Go type").
			Build()
	}
	s := b.Schema()
	if _, dup := d.seen[s.TypeID()]; dup {
		return errors.DuplicateComponent(s.Name(), s.TypeID().Uint64())
	}

	payload, err := codec.AppendRecord(nil, b, v)
	if err != nil {
		return err
	}
	buf, err := packet.AppendSingle(d.buf, s, payload)
	if err != nil {
		return err
	}
	d.buf = buf
	d.seen[s.TypeID()] = struct{}{}
	return nil
}

// Bytes returns the accumulated buffer. The slice aliases internal storage
// and is valid until the next Append.
func (d *Data) Bytes() []byte { return d.buf }

// NumComponents returns the number of component packets appended so far.
func (d *Data) NumComponents() int { return len(d.seen) }

// MultiData accumulates the components of a batch of entities sharing the
// same component set, as a buffer of multi-value packets. The batch size is
// fixed at creation; every appended component must supply exactly that many
// records. Not safe for concurrent use.
type MultiData struct {
	enc   *codec.Encoder
	count int
	buf   []byte
	seen  map[schema.TypeID]struct{}
}

// NewMultiData creates an empty construction buffer for a batch of count
// entities.
func NewMultiData(enc *codec.Encoder, count int) *MultiData {
	return &MultiData{enc: enc, count: count, seen: make(map[schema.TypeID]struct{})}
}

// Count returns the batch size fixed at creation.
func (d *MultiData) Count() int { return d.count }

// AppendSlice encodes one component value per entity in the batch and frames
// them as a multi-value packet. The slice length must equal the batch size,
// and each component type may be appended at most once.
func AppendSlice[T any](d *MultiData, values []T) error {
	var zero T
	b, ok := d.enc.Registry().LookupValue(zero)
	if !ok {
		return errors.New(errors.PhaseAppend, errors.KindUnknownType).
			GoType(reflect.TypeOf(zero).String()).
			Detail("no schema registered for Go type").
			Build()
	}
	s := b.Schema()
	if len(values) != d.count {
		return errors.CountMismatch(errors.PhaseAppend, s.Name(), len(values), d.count)
	}
	if _, dup := d.seen[s.TypeID()]; dup {
		return errors.DuplicateComponent(s.Name(), s.TypeID().Uint64())
	}

	payload := make([]byte, 0, s.Size()*d.count)
	for i := range values {
		var err error
		payload, err = codec.AppendRecord(payload, b, values[i])
		if err != nil {
			return err
		}
	}
	buf, err := packet.AppendMulti(d.buf, s, d.count, payload)
	if err != nil {
		return err
	}
	d.buf = buf
	d.seen[s.TypeID()] = struct{}{}
	return nil
}

// AppendSame encodes the same component value for every entity in the batch.
// Markers and shared setup components use this instead of materializing a
// slice of identical values.
func AppendSame[T any](d *MultiData, v T) error {
	b, ok := d.enc.Registry().LookupValue(v)
	if !ok {
		return errors.New(errors.PhaseAppend, errors.KindUnknownType).
			GoType(reflect.TypeOf(v).String()).
			Detail("no schema registered for Go type").
			Build()
	}
	s := b.Schema()
	if _, dup := d.seen[s.TypeID()]; dup {
		return errors.DuplicateComponent(s.Name(), s.TypeID().Uint64())
	}

	one, err := codec.AppendRecord(nil, b, v)
	if err != nil {
		return err
	}
	payload := make([]byte, 0, len(one)*d.count)
	for i := 0; i < d.count; i++ {
		payload = append(payload, one...)
	}
	buf, err := packet.AppendMulti(d.buf, s, d.count, payload)
	if err != nil {
		return err
	}
	d.buf = buf
	d.seen[s.TypeID()] = struct{}{}
	return nil
}

// Bytes returns the accumulated buffer. The slice aliases internal storage
// and is valid until the next append.
func (d *MultiData) Bytes() []byte { return d.buf }

// NumComponents returns the number of component packets appended so far.
func (d *MultiData) NumComponents() int { return len(d.seen) }
