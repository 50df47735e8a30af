package hpack

// dynamicTable is the HPACK dynamic table, RFC 7541 §2.3: a FIFO list
// of entries bounded by a byte budget, indexed newest-first starting
// at 1. Implemented as a circular buffer over a single backing slice:
// entries are prepended logically by moving head backwards and evicted
// from the tail.
//
// capacity and maxCapacity are two monotonic-ish quantities: capacity
// is the live budget (never above maxCapacity), maxCapacity is the
// settings-negotiated ceiling only the owning connection's SETTINGS
// exchange can move.
type dynamicTable struct {
	entries     []HeaderField
	head        int
	count       int
	size        uint32
	capacity    uint32
	maxCapacity uint32
}

func newDynamicTable(maxCapacity uint32) *dynamicTable {
	prealloc := int(maxCapacity / 64)
	if prealloc < 16 {
		prealloc = 16
	}
	return &dynamicTable{
		entries:     make([]HeaderField, prealloc),
		capacity:    maxCapacity,
		maxCapacity: maxCapacity,
	}
}

func (dt *dynamicTable) Len() int          { return dt.count }
func (dt *dynamicTable) Size() uint32      { return dt.size }
func (dt *dynamicTable) Capacity() uint32  { return dt.capacity }

// Lookup returns the entry at 1-based index i (newest = 1). Fails with
// ErrKindIndexOutOfRange if i > length.
func (dt *dynamicTable) Lookup(i int) (HeaderField, error) {
	if i < 1 || i > dt.count {
		return HeaderField{}, newCodecError(ErrKindIndexOutOfRange, "dynamic table index")
	}
	pos := (dt.head + i - 1) % len(dt.entries)
	return dt.entries[pos], nil
}

// Search returns the lowest 1-based index matching by name, preferring
// a full (name, value) match.
func (dt *dynamicTable) Search(name, value string) (index int, hasValue bool) {
	for i := 0; i < dt.count; i++ {
		pos := (dt.head + i) % len(dt.entries)
		entry := dt.entries[pos]
		if entry.Name != name {
			continue
		}
		if entry.Value == value {
			return i + 1, true
		}
		if index == 0 {
			index = i + 1
		}
	}
	return index, false
}

// Insert prepends (name, value), evicting from the oldest end until it
// fits. An entry whose size alone exceeds capacity empties the table
// and is not inserted — this call never fails.
func (dt *dynamicTable) Insert(name, value string) {
	size := entrySize(name, value)

	for dt.size+size > dt.capacity && dt.count > 0 {
		dt.evictOldest()
	}

	if size > dt.capacity {
		return
	}

	if dt.count == len(dt.entries) {
		dt.grow()
	}

	dt.head = (dt.head - 1 + len(dt.entries)) % len(dt.entries)
	dt.entries[dt.head] = HeaderField{Name: name, Value: value}
	dt.count++
	dt.size += size
}

// SetCapacity sets the live byte budget: fails with
// ErrKindCapacityExceeded if newCapacity > maxCapacity, otherwise
// evicts oldest-first until the new budget holds.
func (dt *dynamicTable) SetCapacity(newCapacity uint32) error {
	if newCapacity > dt.maxCapacity {
		return newCodecError(ErrKindCapacityExceeded, "requested capacity exceeds maximum")
	}
	dt.capacity = newCapacity
	dt.evictToFit()
	return nil
}

// SetMaxCapacity updates the settings-negotiated ceiling. If the
// current capacity now exceeds it, capacity is lowered to match and
// entries are evicted oldest-first.
func (dt *dynamicTable) SetMaxCapacity(newMax uint32) {
	dt.maxCapacity = newMax
	if dt.capacity > newMax {
		dt.capacity = newMax
	}
	dt.evictToFit()
}

func (dt *dynamicTable) evictToFit() {
	for dt.size > dt.capacity && dt.count > 0 {
		dt.evictOldest()
	}
}

func (dt *dynamicTable) evictOldest() {
	if dt.count == 0 {
		return
	}
	tail := (dt.head + dt.count - 1) % len(dt.entries)
	entry := dt.entries[tail]
	dt.size -= entrySize(entry.Name, entry.Value)
	dt.count--
	dt.entries[tail] = HeaderField{}
}

func (dt *dynamicTable) grow() {
	newEntries := make([]HeaderField, len(dt.entries)*2)
	for i := 0; i < dt.count; i++ {
		pos := (dt.head + i) % len(dt.entries)
		newEntries[i] = dt.entries[pos]
	}
	dt.entries = newEntries
	dt.head = 0
}

// indexSpace unifies the static and dynamic tables into a single index
// space: indices 1..StaticTableSize address the static table,
// StaticTableSize+1.. address the dynamic table newest-to-oldest. The
// encoder and decoder each own one.
type indexSpace struct {
	dynamic *dynamicTable
}

func newIndexSpace(maxCapacity uint32) *indexSpace {
	return &indexSpace{dynamic: newDynamicTable(maxCapacity)}
}

// Lookup resolves an absolute index (1-based, 0 reserved for "no
// indexed name") into a header field.
func (is *indexSpace) Lookup(index uint32) (HeaderField, error) {
	if index == 0 {
		return HeaderField{}, newCodecError(ErrKindProtocol, "index 0")
	}
	if index <= StaticTableSize {
		hf, _ := staticEntry(index)
		return hf, nil
	}
	return is.dynamic.Lookup(int(index - StaticTableSize))
}

// Search looks across both tables for (name, value), returning an
// absolute index and preferring a full match over a name-only one —
// a static exact match wins outright; otherwise a dynamic exact match
// wins; a name-only match falls back to whichever table has one,
// preferring static (searched first).
func (is *indexSpace) Search(name, value string) (index uint32, hasValue bool) {
	staticIdx, staticExact := staticSearch(name, value)
	if staticExact {
		return uint32(staticIdx), true
	}

	dynIdx, dynExact := is.dynamic.Search(name, value)
	if dynExact {
		return uint32(StaticTableSize + dynIdx), true
	}

	if staticIdx > 0 {
		return uint32(staticIdx), false
	}
	if dynIdx > 0 {
		return uint32(StaticTableSize + dynIdx), false
	}
	return 0, false
}

// SearchNameOnly is used by literal-never-indexed encoding: it
// searches the unified index space for a name match only, ignoring
// the value entirely when picking the index.
func (is *indexSpace) SearchNameOnly(name string) uint32 {
	if idx, ok := staticNameIndex[nameHash(name)]; ok && idx.field.Name == name {
		return uint32(idx.index)
	}
	if dynIdx, _ := is.dynamic.Search(name, ""); dynIdx > 0 {
		return uint32(StaticTableSize + dynIdx)
	}
	return 0
}
