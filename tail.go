package datrie

// tailStore is the ordered sequence of suffix strings referenced by negative
// BASE values (spec.md §3, "Tail store"). Index 0 is unused, matching the
// empty-value sentinel used throughout the double array.
//
// An entry is a sequence of alphabet offsets whose last element is always the
// endmarker offset, OR nil — the "only the endmarker" sentinel from §4.6,
// meaning the node's incoming edge already consumed the endmarker and no
// further characters remain.
type tailStore struct {
	entries [][]int32
}

func newTailStore() *tailStore {
	return &tailStore{entries: [][]int32{nil}}
}

// Append adds a new tail entry and returns its index.
func (t *tailStore) Append(entry []int32) int32 {
	t.entries = append(t.entries, entry)
	return int32(len(t.entries) - 1)
}

// Set overwrites the entry at an existing index.
func (t *tailStore) Set(index int32, entry []int32) {
	t.entries[index] = entry
}

// Get returns the entry at index and whether that index has ever been
// written (index 0 and out-of-range indices report false). A defined entry
// may still be nil — that's the null sentinel, not "absent".
func (t *tailStore) Get(index int32) (entry []int32, defined bool) {
	if index <= 0 || int(index) >= len(t.entries) {
		return nil, false
	}
	return t.entries[index], true
}

// stripEndmarker returns entry without its trailing endmarker offset. A nil
// entry (the sentinel) strips to nil, i.e. "nothing more to add".
func stripEndmarker(entry []int32) []int32 {
	if len(entry) <= 1 {
		return nil
	}
	return entry[:len(entry)-1]
}

// equalOffsets compares two offset sequences, treating nil and an empty
// slice as the same value of "no characters" — which is what lets the null
// tail sentinel compare correctly against a non-empty remaining input (it
// never matches) without any special case in the call sites.
func equalOffsets(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
