package datrie

// modify relocates node h's children to a new base so that current's new
// child (at addOffset) can coexist (spec.md §4.4). addOffset of 0 means "no
// new child is being added, just make room" — that's the shape used when
// relocating the colliding occupant k rather than the node being inserted
// into.
//
// origOffsets must be h's child offsets captured before any mutation; the
// reference implementation is explicit that this copy has to be taken
// before modify starts writing, and this port preserves that discipline.
func (t *DATrie) modify(current, h, addOffset int32, origOffsets *offsetSet) int32 {
	oldBase := t.getBase(h)

	want := origOffsets.Clone()
	if addOffset != emptyValue {
		want.Add(addOffset)
	}
	newBase := t.xCheck(want)
	t.setBase(h, newBase)

	if origOffsets.IsEmpty() {
		return current
	}

	tracer().Debugf("relocating family of node %d: base %d -> %d", h, oldBase, newBase)

	origOffsets.Each(func(c int32) {
		oldNode := oldBase + c
		newNode := t.getBase(h) + c

		t.setBase(newNode, t.getBase(oldNode))
		t.setCheck(newNode, h)

		// oldNode's own children point back at it via CHECK; rewrite them
		// to point at newNode instead.
		if childBase := t.getBase(oldNode); childBase > emptyValue {
			t.ensureReachable(childBase + t.alphabet.size + 1)
			for off := int32(1); off <= t.alphabet.size+1; off++ {
				if t.getCheck(childBase+off) == oldNode {
					t.setCheck(childBase+off, newNode)
				}
			}
		}

		if current == oldNode {
			current = newNode
		}

		t.setBase(oldNode, emptyValue)
		t.setCheck(oldNode, emptyValue)
	})

	return current
}
