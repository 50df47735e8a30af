package hpack

import "testing"

func TestDynamicTableInsertAndLookup(t *testing.T) {
	dt := newDynamicTable(4096)
	dt.Insert("custom-key", "custom-value")
	dt.Insert("x-second", "value-2")

	if dt.Len() != 2 {
		t.Fatalf("len = %d, want 2", dt.Len())
	}

	// Newest entry is index 1.
	hf, err := dt.Lookup(1)
	if err != nil || hf.Name != "x-second" {
		t.Fatalf("Lookup(1) = %+v, %v", hf, err)
	}
	hf, err = dt.Lookup(2)
	if err != nil || hf.Name != "custom-key" {
		t.Fatalf("Lookup(2) = %+v, %v", hf, err)
	}

	if _, err := dt.Lookup(3); err == nil {
		t.Fatal("Lookup(3) should fail, only 2 entries")
	}
}

func TestDynamicTableEvictsOldestOnOverflow(t *testing.T) {
	dt := newDynamicTable(entrySize("k1", "v") * 2) // room for exactly 2

	dt.Insert("k1", "v")
	dt.Insert("k2", "v")
	dt.Insert("k3", "v") // evicts k1

	if dt.Len() != 2 {
		t.Fatalf("len = %d, want 2", dt.Len())
	}
	hf, _ := dt.Lookup(2)
	if hf.Name != "k2" {
		t.Fatalf("oldest surviving entry = %q, want k2", hf.Name)
	}
}

func TestDynamicTableEntryLargerThanCapacityIsNotStored(t *testing.T) {
	dt := newDynamicTable(10)
	dt.Insert("a-name-too-long-for-the-table", "value")
	if dt.Len() != 0 {
		t.Fatalf("len = %d, want 0", dt.Len())
	}
}

func TestDynamicTableSetCapacityEvicts(t *testing.T) {
	dt := newDynamicTable(4096)
	dt.Insert("k1", "v1")
	dt.Insert("k2", "v2")

	if err := dt.SetCapacity(entrySize("k2", "v2")); err != nil {
		t.Fatal(err)
	}
	if dt.Len() != 1 {
		t.Fatalf("len = %d, want 1 after shrinking capacity", dt.Len())
	}
}

func TestDynamicTableSetCapacityAboveMaxFails(t *testing.T) {
	dt := newDynamicTable(100)
	if err := dt.SetCapacity(200); !isKind(err, ErrKindCapacityExceeded) {
		t.Fatalf("got %v, want ErrKindCapacityExceeded", err)
	}
}

func TestDynamicTableGrowsBackingSlice(t *testing.T) {
	dt := newDynamicTable(4096) // preallocates 4096/64 = 64 slots
	for i := 0; i < 100; i++ {
		dt.Insert("k", "v")
	}
	if dt.Len() != 100 {
		t.Fatalf("len = %d, want 100", dt.Len())
	}
}

func TestIndexSpaceUnifiesStaticAndDynamic(t *testing.T) {
	is := newIndexSpace(4096)
	is.dynamic.Insert("x-custom", "value")

	hf, err := is.Lookup(StaticTableSize + 1)
	if err != nil || hf.Name != "x-custom" {
		t.Fatalf("Lookup(StaticTableSize+1) = %+v, %v", hf, err)
	}

	hf, err = is.Lookup(2) // static ":method: GET"
	if err != nil || hf.Value != "GET" {
		t.Fatalf("Lookup(2) = %+v, %v", hf, err)
	}
}

func TestIndexSpaceSearchPrefersStaticExactMatch(t *testing.T) {
	is := newIndexSpace(4096)
	is.dynamic.Insert(":method", "GET") // duplicate of a static entry

	index, hasValue := is.Search(":method", "GET")
	if index != 2 || !hasValue {
		t.Fatalf("got (%d, %v), want (2, true)", index, hasValue)
	}
}

func TestIndexSpaceSearchNameOnlyIgnoresValue(t *testing.T) {
	is := newIndexSpace(4096)
	if index := is.SearchNameOnly(":authority"); index != 1 {
		t.Fatalf("got %d, want 1", index)
	}
}
