package datrie

// Insert adds word to the trie. Inserting a word that is already present is
// a no-op (spec.md §4.5, §8 "Insertion idempotence").
func (t *DATrie) Insert(word string) error {
	key, err := t.alphabet.encodeKey(word)
	if err != nil {
		return err
	}

	cur := rootNode
	i := 0
	for i < len(key) && t.getBase(cur) > emptyValue {
		offset := key[i]
		next := t.getBase(cur) + offset
		t.ensureReachable(next)
		if next >= t.getDASize() || t.getCheck(next) != cur {
			return t.aInsert(cur, key[i:])
		}
		cur = next
		i++
	}
	if i == len(key) {
		return nil // already present
	}
	return t.bInsert(cur, key[i:])
}

// aInsert diverges at a branching node: the child slot key[0] is either
// empty (plain leaf insertion) or owned by another node, which must be
// relocated first using the smaller-family-wins rule (spec.md §4.5).
func (t *DATrie) aInsert(cur int32, remaining []int32) error {
	offset := remaining[0]
	next := t.getBase(cur) + offset
	t.ensureReachable(next)

	if t.getCheck(next) != emptyValue {
		k := t.getCheck(next)
		lc := t.childOffsets(cur)
		lk := t.childOffsets(k)
		if lc.Len()+1 < lk.Len() {
			cur = t.modify(cur, cur, offset, lc)
		} else {
			cur = t.modify(cur, k, emptyValue, lk)
		}
	}
	t.insertStringInTail(cur, remaining, emptyValue)
	return nil
}

// bInsert diverges at a leaf whose tail suffix must be split (spec.md §4.5,
// "B_insert"). cur is a leaf; remaining is the not-yet-consumed part of the
// new key.
func (t *DATrie) bInsert(cur int32, remaining []int32) error {
	oldPos := t.getBase(cur) // negative: -oldPos is the tail index
	existing, _ := t.tail.Get(-oldPos)

	if equalOffsets(remaining, existing) {
		return nil // already present
	}

	prefixLen := commonPrefixLen(remaining, existing)
	prefix := remaining[:prefixLen]

	running := newOffsetSet()
	for _, c := range prefix {
		running.Add(c)
		t.setBase(cur, t.xCheck(running))
		t.setCheck(t.getBase(cur)+c, cur)
		cur = t.getBase(cur) + c
		running.Remove(c)
	}
	assertInvariant(running.IsEmpty(), "bInsert: running offset set must drain to empty")

	rSuf := remaining[prefixLen:]
	tSuf := existing[prefixLen:]

	final := newOffsetSet()
	if len(rSuf) > 0 {
		final.Add(rSuf[0])
	}
	if len(tSuf) > 0 {
		final.Add(tSuf[0])
	}
	assertInvariant(!final.IsEmpty(), "bInsert: diverging suffixes can't both be empty")
	t.setBase(cur, t.xCheck(final))

	tracer().Debugf("splitting tail at node %d after %d shared symbols", cur, prefixLen)

	// tSuf overwrites the original tail slot; rSuf takes a fresh one.
	t.insertStringInTail(cur, tSuf, oldPos)
	t.insertStringInTail(cur, rSuf, emptyValue)
	return nil
}

// insertStringInTail creates or overwrites a leaf reached by following s[0]
// from fromNode, storing s[1:] (or the null sentinel if len(s) == 1) in the
// tail. replacePos of 0 appends a new tail slot; otherwise it overwrites the
// slot at |replacePos| (spec.md §4.7).
func (t *DATrie) insertStringInTail(fromNode int32, s []int32, replacePos int32) {
	if replacePos < 0 {
		replacePos = -replacePos
	}
	next := t.getBase(fromNode) + s[0]
	t.ensureReachable(next)

	var toAdd []int32
	if len(s) > 1 {
		toAdd = s[1:]
	}

	var tailPos int32
	if replacePos == emptyValue {
		tailPos = t.tail.Append(toAdd)
	} else {
		tailPos = replacePos
		t.tail.Set(tailPos, toAdd)
	}

	t.setBase(next, -tailPos)
	t.setCheck(next, fromNode)
}

// commonPrefixLen returns the length of the longest common prefix of a and b.
func commonPrefixLen(a, b []int32) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
