package dispatch

import (
	"go.uber.org/zap"

	"github.com/lars-frogner/impact-wire/codec"
	"github.com/lars-frogner/impact-wire/errors"
	"github.com/lars-frogner/impact-wire/packet"
	"github.com/lars-frogner/impact-wire/schema"
)

// Dispatcher consumes construction buffers and materializes entities in a
// store. Every packet's type ID must resolve in the registry, and the header
// layout words must agree with the registered schema; either failure aborts
// the whole buffer without creating anything.
type Dispatcher struct {
	dec   *codec.Decoder
	store *Store
	log   *zap.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger overrides the package logger for this dispatcher.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) { d.log = l }
}

// NewDispatcher creates a dispatcher decoding through dec and storing
// entities in store.
func NewDispatcher(dec *codec.Decoder, store *Store, opts ...Option) *Dispatcher {
	d := &Dispatcher{dec: dec, store: store, log: Logger()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Store returns the store the dispatcher materializes entities into.
func (d *Dispatcher) Store() *Store { return d.store }

// CreateEntity consumes a buffer of single-value packets and creates one
// entity carrying the decoded components.
func (d *Dispatcher) CreateEntity(buf []byte) (EntityID, error) {
	if len(buf) == 0 {
		return 0, errors.InvalidData(errors.PhaseDispatch, nil, "construction buffer holds no packets")
	}

	components := make(map[schema.TypeID]any)
	r := packet.NewReader(buf)
	for r.More() {
		h, payload, err := r.Next()
		if err != nil {
			return 0, err
		}
		b, err := d.resolve(h)
		if err != nil {
			return 0, err
		}
		if _, dup := components[h.TypeID]; dup {
			return 0, errors.New(errors.PhaseDispatch, errors.KindDuplicateComponent).
				Component(b.Schema().Name()).
				Value(h.TypeID.Uint64()).
				Detail("buffer carries two packets for the same type").
				Build()
		}
		v, err := codec.DecodeRecord(b, payload)
		if err != nil {
			return 0, err
		}
		components[h.TypeID] = v
	}

	id := d.store.create(components)
	d.log.Debug("created entity",
		zap.Uint64("entity_id", uint64(id)),
		zap.Int("num_components", len(components)))
	return id, nil
}

// maxBatchEntities caps the batch size a buffer may request. The count word
// of a zero-size packet is not constrained by the payload length, so it can
// never be trusted to size allocations.
const maxBatchEntities = 1 << 20

// CreateEntities consumes a buffer of multi-value packets and creates one
// entity per record. The first packet fixes the batch size; every subsequent
// packet must carry the same count.
func (d *Dispatcher) CreateEntities(buf []byte) ([]EntityID, error) {
	if len(buf) == 0 {
		return nil, errors.InvalidData(errors.PhaseDispatch, nil, "construction buffer holds no packets")
	}

	var batch []map[schema.TypeID]any
	r := packet.NewMultiReader(buf)
	for r.More() {
		h, payload, err := r.Next()
		if err != nil {
			return nil, err
		}
		b, err := d.resolve(h)
		if err != nil {
			return nil, err
		}

		if batch == nil {
			if h.Count > maxBatchEntities {
				return nil, errors.New(errors.PhaseDispatch, errors.KindInvalidData).
					Component(b.Schema().Name()).
					Value(h.Count).
					Detail("batch count exceeds the limit %d", maxBatchEntities).
					Build()
			}
			batch = make([]map[schema.TypeID]any, h.Count)
			for i := range batch {
				batch[i] = make(map[schema.TypeID]any)
			}
		} else if int(h.Count) != len(batch) {
			return nil, errors.CountMismatch(errors.PhaseDispatch, b.Schema().Name(), int(h.Count), len(batch))
		}

		if len(batch) > 0 {
			if _, dup := batch[0][h.TypeID]; dup {
				return nil, errors.New(errors.PhaseDispatch, errors.KindDuplicateComponent).
					Component(b.Schema().Name()).
					Value(h.TypeID.Uint64()).
					Detail("buffer carries two packets for the same type").
					Build()
			}
		}

		size := b.Schema().Size()
		for i := range batch {
			v, err := codec.DecodeRecord(b, payload[i*size:(i+1)*size])
			if err != nil {
				return nil, err
			}
			batch[i][h.TypeID] = v
		}
	}

	ids := make([]EntityID, len(batch))
	for i, components := range batch {
		ids[i] = d.store.create(components)
	}
	d.log.Debug("created entity batch", zap.Int("num_entities", len(ids)))
	return ids, nil
}

// resolve looks up the packet's type and cross-checks the header's layout
// words against the registered schema. Disagreement means the two sides were
// built from different component definitions.
func (d *Dispatcher) resolve(h packet.Header) (*schema.Binding, error) {
	b, ok := d.dec.Registry().LookupID(h.TypeID)
	if !ok {
		return nil, errors.UnknownType(h.TypeID.Uint64())
	}
	s := b.Schema()
	if int(h.Size) != s.Size() {
		return nil, errors.SizeMismatch(errors.PhaseDispatch, s.Name(), int(h.Size), s.Size())
	}
	if int(h.Alignment) != s.Alignment() {
		return nil, errors.New(errors.PhaseDispatch, errors.KindSizeMismatch).
			Component(s.Name()).
			Detail("header declares alignment %d, schema declares %d", h.Alignment, s.Alignment()).
			Build()
	}
	return b, nil
}
