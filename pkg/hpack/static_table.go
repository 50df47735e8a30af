package hpack

import "github.com/cespare/xxhash/v2"

// The HPACK static table, RFC 7541 Appendix A. Frozen, process-lifetime,
// 1-indexed; index 0 is reserved ("no indexed name").
var staticTable = [...]HeaderField{
	{}, // index 0 - unused
	{Name: ":authority"},
	{Name: ":method", Value: "GET"},
	{Name: ":method", Value: "POST"},
	{Name: ":path", Value: "/"},
	{Name: ":path", Value: "/index.html"},
	{Name: ":scheme", Value: "http"},
	{Name: ":scheme", Value: "https"},
	{Name: ":status", Value: "200"},
	{Name: ":status", Value: "204"},
	{Name: ":status", Value: "206"},
	{Name: ":status", Value: "304"},
	{Name: ":status", Value: "400"},
	{Name: ":status", Value: "404"},
	{Name: ":status", Value: "500"},
	{Name: "accept-charset"},
	{Name: "accept-encoding", Value: "gzip, deflate"},
	{Name: "accept-language"},
	{Name: "accept-ranges"},
	{Name: "accept"},
	{Name: "access-control-allow-origin"},
	{Name: "age"},
	{Name: "allow"},
	{Name: "authorization"},
	{Name: "cache-control"},
	{Name: "content-disposition"},
	{Name: "content-encoding"},
	{Name: "content-language"},
	{Name: "content-length"},
	{Name: "content-location"},
	{Name: "content-range"},
	{Name: "content-type"},
	{Name: "cookie"},
	{Name: "date"},
	{Name: "etag"},
	{Name: "expect"},
	{Name: "expires"},
	{Name: "from"},
	{Name: "host"},
	{Name: "if-match"},
	{Name: "if-modified-since"},
	{Name: "if-none-match"},
	{Name: "if-range"},
	{Name: "if-unmodified-since"},
	{Name: "last-modified"},
	{Name: "link"},
	{Name: "location"},
	{Name: "max-forwards"},
	{Name: "proxy-authenticate"},
	{Name: "proxy-authorization"},
	{Name: "range"},
	{Name: "referer"},
	{Name: "refresh"},
	{Name: "retry-after"},
	{Name: "server"},
	{Name: "set-cookie"},
	{Name: "strict-transport-security"},
	{Name: "transfer-encoding"},
	{Name: "user-agent"},
	{Name: "vary"},
	{Name: "via"},
	{Name: "www-authenticate"},
}

// StaticTableSize is the number of addressable entries in the static
// table (indices 1..StaticTableSize).
const StaticTableSize = 61

// staticEntry returns the static table entry at the given 1-based
// index, or false if index is out of [1, StaticTableSize].
func staticEntry(index uint32) (HeaderField, bool) {
	if index < 1 || index > StaticTableSize {
		return HeaderField{}, false
	}
	return staticTable[index], true
}

// nameValueHash keys the static exact-match lookup map: name and value
// joined with a NUL separator, hashed with xxhash
// (github.com/cespare/xxhash/v2) so the map carries a fixed 8-byte key
// instead of an allocated joined string on every search.
func nameValueHash(name, value string) uint64 {
	d := xxhash.New()
	d.WriteString(name)
	d.Write(nulSeparator[:])
	d.WriteString(value)
	return d.Sum64()
}

func nameHash(name string) uint64 {
	return xxhash.Sum64String(name)
}

var nulSeparator = [1]byte{0}

// staticIndexEntry pairs a lookup table hit with the field it was
// built from, so a hash collision against one of the 61 fixed static
// entries degrades to "not found" rather than a wrong match — the
// hash only picks the bucket, octet comparison still decides the hit,
// matching "compare octet-for-octet" requirement exactly.
type staticIndexEntry struct {
	index int
	field HeaderField
}

// staticNameIndex and staticExactIndex back staticSearch: the lowest
// 1-based index matching by name, and by (name, value) respectively.
var (
	staticNameIndex  map[uint64]staticIndexEntry
	staticExactIndex map[uint64]staticIndexEntry
)

func init() {
	staticNameIndex = make(map[uint64]staticIndexEntry, StaticTableSize)
	staticExactIndex = make(map[uint64]staticIndexEntry, StaticTableSize)

	for i := 1; i <= StaticTableSize; i++ {
		entry := staticTable[i]

		nh := nameHash(entry.Name)
		if _, exists := staticNameIndex[nh]; !exists {
			staticNameIndex[nh] = staticIndexEntry{index: i, field: entry}
		}

		if entry.Value != "" {
			eh := nameValueHash(entry.Name, entry.Value)
			staticExactIndex[eh] = staticIndexEntry{index: i, field: entry}
		}
	}
}

// staticSearch implements Search: the lowest 1-based index
// whose name matches, preferring a full (name, value) match when one
// exists.
func staticSearch(name, value string) (index int, hasValue bool) {
	if value != "" {
		if e, ok := staticExactIndex[nameValueHash(name, value)]; ok && e.field.Name == name && e.field.Value == value {
			return e.index, true
		}
	}
	if e, ok := staticNameIndex[nameHash(name)]; ok && e.field.Name == name {
		return e.index, e.field.Value == value
	}
	return 0, false
}
