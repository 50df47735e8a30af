package hpack

import "github.com/dgryski/go-tinylfu"

// decoderState tracks the legality rule for table-size-update
// representations: they may only appear at the very start of a header
// block, or immediately after another table-size-update — never once a
// field representation has been decoded.
type decoderState uint8

const (
	stateStart decoderState = iota
	stateAfterTableUpdate
	stateInBlock
)

// internCacheSize bounds the decoder's name-interning cache
// (github.com/dgryski/go-tinylfu) so a connection that churns through
// many distinct header names doesn't grow it without bound, while
// frequently repeated names (":method", "content-type", ...) stay
// resident.
const internCacheSize = 512

// Decoder turns an HPACK-coded header block back into HeaderEvent
// values. Like Encoder, it owns one indexSpace and is not safe for
// concurrent use.
type Decoder struct {
	index  *indexSpace
	cfg    DecoderConfig
	names  *tinylfu.T[uint64, string]
	events []HeaderEvent // reused scratch slice for Decode
}

func NewDecoder(cfg DecoderConfig) *Decoder {
	return &Decoder{
		index: newIndexSpace(cfg.MaxDynamicTableSize),
		cfg:   cfg,
		names: tinylfu.New[uint64, string](internCacheSize, internCacheSize*10, hashUint64),
	}
}

func hashUint64(k uint64) uint64 { return k }

// intern returns a shared copy of name sourced from the cache when one
// already exists for its hash, so repeated identical names decoded
// across many calls share one backing string instead of each decode
// allocating its own.
func (d *Decoder) intern(name string) string {
	h := nameHash(name)
	if cached, ok := d.names.Get(h); ok && cached == name {
		return cached
	}
	d.names.Add(h, name)
	return name
}

// Decode codes a single header block into its sequence of HeaderEvent
// values. The returned slice is reused by the next Decode call; copy it
// out if the caller needs it to outlive that call, or use DecodeInto to
// control the backing slice directly.
func (d *Decoder) Decode(encoded []byte) ([]HeaderEvent, error) {
	dst, err := d.DecodeInto(d.events[:0], encoded)
	d.events = dst
	return dst, err
}

// DecodeInto appends the block's events to dst and returns the
// extended slice, letting a caller reuse its own buffer across many
// header blocks instead of accepting the Decoder's internal one. It
// never retains dst as decoder state, so a slice passed here is safe
// to keep using after later calls to Decode or DecodeInto.
func (d *Decoder) DecodeInto(dst []HeaderEvent, encoded []byte) ([]HeaderEvent, error) {
	var r reader
	r.reset(encoded)

	state := stateStart
	count := 0
	sizeUpdates := 0

	for r.len() > 0 {
		first, err := r.peekByte()
		if err != nil {
			return dst, err
		}

		var ev HeaderEvent
		switch {
		case first&reprIndexed != 0:
			ev, err = d.decodeIndexed(&r)
			state = stateInBlock
		case first&0xc0 == reprLiteralIncrementalIndexed:
			ev, err = d.decodeLiteral(&r, 6, true, false)
			state = stateInBlock
		case first&0xe0 == reprTableSizeUpdate:
			if state != stateStart && state != stateAfterTableUpdate {
				return dst, newCodecError(ErrKindProtocol, "table size update after a field")
			}
			sizeUpdates++
			if sizeUpdates > 2 {
				return dst, newCodecError(ErrKindProtocol, "more than two consecutive table size updates")
			}
			ev, err = d.decodeTableSizeUpdate(&r)
			state = stateAfterTableUpdate
		case first&0xf0 == reprLiteralNeverIndexed:
			ev, err = d.decodeLiteral(&r, 4, false, true)
			state = stateInBlock
		case first&0xf0 == reprLiteralWithoutIndexing:
			ev, err = d.decodeLiteral(&r, 4, false, false)
			state = stateInBlock
		default:
			return dst, newCodecError(ErrKindProtocol, "unrecognized representation")
		}

		if err != nil {
			return dst, err
		}

		dst = append(dst, ev)
		if ev.Kind == EventField {
			count++
		}
		if d.cfg.MaxHeaderFields > 0 && count > d.cfg.MaxHeaderFields {
			return dst, newCodecError(ErrKindProtocol, "header field count exceeds maximum")
		}
	}

	return dst, nil
}

func (d *Decoder) decodeIndexed(r *reader) (HeaderEvent, error) {
	index, _, err := decodeInteger(r, 7)
	if err != nil {
		return HeaderEvent{}, err
	}
	if index == 0 {
		return HeaderEvent{}, newCodecError(ErrKindProtocol, "indexed representation with index 0")
	}
	field, err := d.index.Lookup(index)
	if err != nil {
		return HeaderEvent{}, err
	}
	return HeaderEvent{Kind: EventField, Field: field}, nil
}

// decodeLiteral handles the three literal representations: incremental
// indexing (withIndexing, n=6), never indexed (neverIndexed, n=4), and
// without indexing (neither, n=4).
func (d *Decoder) decodeLiteral(r *reader, n uint8, withIndexing, neverIndexed bool) (HeaderEvent, error) {
	index, _, err := decodeInteger(r, n)
	if err != nil {
		return HeaderEvent{}, err
	}

	var name string
	if index == 0 {
		name, err = decodeString(r, d.cfg.MaxStringLength)
		if err != nil {
			return HeaderEvent{}, err
		}
		name = d.intern(name)
	} else {
		field, err := d.index.Lookup(index)
		if err != nil {
			return HeaderEvent{}, err
		}
		name = field.Name
	}

	value, err := decodeString(r, d.cfg.MaxStringLength)
	if err != nil {
		return HeaderEvent{}, err
	}

	if withIndexing {
		d.index.dynamic.Insert(name, value)
	}

	return HeaderEvent{Kind: EventField, Field: HeaderField{
		Name:         name,
		Value:        value,
		NeverIndexed: neverIndexed,
	}}, nil
}

func (d *Decoder) decodeTableSizeUpdate(r *reader) (HeaderEvent, error) {
	newCapacity, _, err := decodeInteger(r, 5)
	if err != nil {
		return HeaderEvent{}, err
	}
	if err := d.index.dynamic.SetCapacity(newCapacity); err != nil {
		return HeaderEvent{}, err
	}
	return HeaderEvent{Kind: EventSizeUpdate, NewCapacity: newCapacity}, nil
}
