// Package hpack implements RFC 7541 HPACK header compression: the
// integer and string primitives, the static and dynamic tables, and
// the header-block codec that wires them together. The package is a
// pure transform — it has no socket, no TLS, no framing, and no
// concurrency of its own. Callers (an HTTP/2 or HTTP/3 connection) own
// one Encoder and one Decoder per direction and must serialize calls
// against each.
package hpack

// HeaderField is a single (name, value) header pair. Names and values
// are treated as opaque octets for compression purposes; HTTP/2's
// lowercase-name rule is the caller's concern, not the codec's.
//
// NeverIndexed marks a field encoded with the "literal never indexed"
// representation (RFC 7541 §6.2.3). It must be preserved across a
// decode/re-encode round trip: an intermediary that forwards the field
// is forbidden from ever adding it to its own dynamic table.
type HeaderField struct {
	Name         string
	Value        string
	NeverIndexed bool
}

// entryOverhead is the per-entry bookkeeping cost RFC 7541 §4.1 adds to
// every dynamic table entry's size, on top of the raw octets.
const entryOverhead = 32

// entrySize is an entry's contribution to the dynamic table's byte
// budget: |name| + |value| + 32.
func entrySize(name, value string) uint32 {
	return uint32(len(name)) + uint32(len(value)) + entryOverhead
}
