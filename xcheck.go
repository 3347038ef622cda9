package datrie

// xCheck returns the smallest q > 0 such that CHECK[q+c] = 0 for every
// offset c in offsets — the base value that lets a node expose exactly the
// child positions q+offsets without colliding with anything already placed
// (spec.md §4.3).
//
// The free-slot index is walked in ascending order; trying free slots first
// keeps the array dense, and only once no existing gap fits does the
// structure grow. Growing the array only appends new free positions past
// the current end, so — unlike the TreeSet iterator this is grounded on —
// an in-progress walk by index never needs to restart: the element at idx
// is unaffected by an append.
func (t *DATrie) xCheck(offsets *offsetSet) int32 {
	min := offsets.Min()
	max := offsets.Max()

	for idx := 0; idx < t.free.Len(); idx++ {
		f := t.free.At(idx)
		q := f - min
		if q+max >= int32(t.base.Size()) {
			t.ensureReachable(q + max)
		}
		if q <= 0 {
			continue
		}
		fits := true
		for _, c := range offsets.values {
			if !t.free.Contains(q + c) {
				fits = false
				break
			}
		}
		if fits {
			return q
		}
	}

	// Place the lowest child at the current end of the array, where every
	// position is free once allocated. While the array is still shorter than
	// the smallest offset, q = 1 already puts every child past the end.
	q := int32(t.base.Size()) - min
	if q < 1 {
		q = 1
	}
	t.ensureReachable(q + max)
	assertInvariant(q > 0, "xCheck: computed base must be positive")
	return q
}
