package hpack

import "github.com/valyala/bytebufferpool"

// wire representation prefixes, RFC 7541 §6.
const (
	reprIndexed                   = 0x80 // 1xxxxxxx
	reprLiteralIncrementalIndexed = 0x40 // 01xxxxxx
	reprLiteralWithoutIndexing    = 0x00 // 0000xxxx
	reprLiteralNeverIndexed       = 0x10 // 0001xxxx
	reprTableSizeUpdate           = 0x20 // 001xxxxx
)

var encoderBufferPool bytebufferpool.Pool

// Encoder turns HeaderField values into an HPACK-coded header block. It
// owns one indexSpace, the peer-visible half of the codec's dynamic
// table.
//
// An Encoder is not safe for concurrent use; callers must serialize
// calls against it.
type Encoder struct {
	index   *indexSpace
	cfg     EncoderConfig
	pending []uint32 // queued table-size-update values, oldest first
}

// NewEncoder constructs an Encoder. cfg.Validate is not called here —
// callers that built cfg by hand should validate explicitly; the zero
// value of HuffmanPolicy (HuffmanWhenSmaller) is always valid.
func NewEncoder(cfg EncoderConfig) *Encoder {
	return &Encoder{
		index: newIndexSpace(cfg.MaxDynamicTableSize),
		cfg:   cfg,
	}
}

// SetCapacity changes the encoder's dynamic table capacity and queues a
// table-size-update to be emitted at the start of the next encoded
// block (RFC 7541 §6.3). It fails if newCapacity exceeds the
// configured maximum.
func (e *Encoder) SetCapacity(newCapacity uint32) error {
	if err := e.index.dynamic.SetCapacity(newCapacity); err != nil {
		return err
	}
	e.pending = append(e.pending, newCapacity)
	return nil
}

// Encode codes fields into a single header block. The returned slice is
// the encoder's own copy, safe to retain past the next Encode call.
func (e *Encoder) Encode(fields []HeaderField) []byte {
	buf := encoderBufferPool.Get()
	defer encoderBufferPool.Put(buf)

	for _, capacity := range e.pending {
		encodeInteger(buf, capacity, 5, reprTableSizeUpdate)
	}
	e.pending = e.pending[:0]

	for _, f := range fields {
		e.encodeField(buf, f)
	}

	out := make([]byte, len(buf.B))
	copy(out, buf.B)
	return out
}

func (e *Encoder) encodeField(buf *bytebufferpool.ByteBuffer, f HeaderField) {
	if f.NeverIndexed {
		e.encodeNeverIndexed(buf, f)
		return
	}

	index, hasValue := e.index.Search(f.Name, f.Value)

	if hasValue {
		encodeInteger(buf, index, 7, reprIndexed)
		return
	}

	size := entrySize(f.Name, f.Value)
	fitsTable := size <= e.index.dynamic.Capacity()

	prefix := byte(reprLiteralWithoutIndexing)
	if fitsTable {
		prefix = reprLiteralIncrementalIndexed
	}
	n := uint8(4)
	if prefix == reprLiteralIncrementalIndexed {
		n = 6
	}

	if index > 0 {
		encodeInteger(buf, index, n, prefix)
	} else {
		encodeInteger(buf, 0, n, prefix)
		encodeString(buf, f.Name, e.cfg.Huffman)
	}
	encodeString(buf, f.Value, e.cfg.Huffman)

	if fitsTable {
		e.index.dynamic.Insert(f.Name, f.Value)
	}
}

func (e *Encoder) encodeNeverIndexed(buf *bytebufferpool.ByteBuffer, f HeaderField) {
	index := e.index.SearchNameOnly(f.Name)

	if index > 0 {
		encodeInteger(buf, index, 4, reprLiteralNeverIndexed)
	} else {
		encodeInteger(buf, 0, 4, reprLiteralNeverIndexed)
		encodeString(buf, f.Name, e.cfg.Huffman)
	}
	encodeString(buf, f.Value, e.cfg.Huffman)
}
