package datrie

import "github.com/gostrie/datrie/intvec"

// rootNode is the root's index in the double array (spec.md §3).
const rootNode int32 = 1

// daSizeIndex is the position in check that stores DA_SIZE, the exclusive
// upper bound on indices considered inside the trie. It is overloaded onto
// the root's CHECK slot since the root itself has no parent to record there.
const daSizeIndex int32 = 1

const emptyValue int32 = 0

// DATrie is a mutable double-array trie with a shared tail buffer. The zero
// value is not usable; construct one with New or NewDefault.
type DATrie struct {
	alphabet *alphabet

	base  *intvec.List
	check *intvec.List
	tail  *tailStore
	free  *freeSlots
}

// New creates an empty trie over an alphabet of alphabetSize contiguous
// letters starting at 'a', plus the endmarker. alphabetSize must be at
// least 1.
func New(alphabetSize int) (*DATrie, error) {
	alpha, err := newAlphabet(alphabetSize)
	if err != nil {
		return nil, err
	}
	t := &DATrie{
		alphabet: alpha,
		base:     intvec.New(),
		check:    intvec.New(),
		tail:     newTailStore(),
		free:     newFreeSlots(),
	}
	// Index 0 is unused; it matches the empty-value sentinel.
	t.base.Add(emptyValue)
	t.check.Add(emptyValue)
	// The root starts with base 1 and DA_SIZE = 1 (nothing beyond
	// the root is occupied yet). These writes bypass setBase/setCheck
	// deliberately: the free-slot index must stay empty here, since
	// positions 0 and 1 are never free-slot candidates (spec.md §3).
	t.base.Add(1)
	t.check.Add(1)
	tracer().Infof("new datrie: alphabet size=%d", alphabetSize)
	return t, nil
}

// NewDefault creates an empty trie over the default 26-letter alphabet.
func NewDefault() *DATrie {
	t, err := New(DefaultAlphabetSize)
	if err != nil {
		panic(err) // unreachable: DefaultAlphabetSize is always valid
	}
	return t
}

// AlphabetSize returns the number of non-endmarker symbols this trie accepts.
func (t *DATrie) AlphabetSize() int {
	return int(t.alphabet.size)
}

func (t *DATrie) getDASize() int32 {
	return t.check.Get(daSizeIndex)
}

func (t *DATrie) getBase(index int32) int32 {
	if index < 0 || int(index) >= t.base.Size() {
		return emptyValue
	}
	return t.base.Get(index)
}

func (t *DATrie) getCheck(index int32) int32 {
	if index < 0 || int(index) >= t.check.Size() {
		return emptyValue
	}
	return t.check.Get(index)
}

// setBase writes BASE[index] and keeps the free-slot index and DA_SIZE in
// sync (spec.md §4.2).
func (t *DATrie) setBase(index, value int32) {
	t.base.Set(index, value)
	if value == emptyValue {
		t.free.Add(index)
	} else {
		if daSize := t.getDASize(); index+1 > daSize {
			t.setCheck(daSizeIndex, index+1)
		}
		t.free.Remove(index)
	}
}

// setCheck writes CHECK[index] and keeps the free-slot index in sync,
// except at daSizeIndex, which is never a free-slot candidate.
func (t *DATrie) setCheck(index, value int32) {
	t.check.Set(index, value)
	if index != daSizeIndex {
		if value == emptyValue {
			t.free.Add(index)
		} else {
			t.free.Remove(index)
		}
	}
}

// ensureReachable grows BASE/CHECK so that index limit is valid, marking
// every newly-allocated position as free.
func (t *DATrie) ensureReachable(limit int32) {
	for int32(t.base.Size()) <= limit {
		t.base.Add(emptyValue)
		t.check.Add(emptyValue)
		t.free.Add(int32(t.base.Size()) - 1)
	}
}

// childOffsets returns the offsets c such that BASE[n]+c is a child of n.
func (t *DATrie) childOffsets(n int32) *offsetSet {
	offsets := newOffsetSet()
	base := t.getBase(n)
	daSize := t.getDASize()
	for c := int32(1); c <= t.alphabet.size+1; c++ {
		next := base + c
		if next < daSize && t.getCheck(next) == n {
			offsets.Add(c)
		}
	}
	return offsets
}

// TrimToSize truncates BASE/CHECK to DA_SIZE and drops free-slot entries at
// or beyond it (spec.md §5). It must not be called while further insertions
// are expected to fit without regrowth.
func (t *DATrie) TrimToSize() {
	newSize := t.getDASize()
	t.base.TrimToSize(newSize)
	t.check.TrimToSize(newSize)
	t.setCheck(daSizeIndex, newSize)
	t.free.PruneAbove(newSize - 1)
	tracer().Infof("trimmed datrie to size=%d", newSize)
}
