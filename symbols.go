package datrie

// Endmarker is the distinguished symbol appended to every inserted key so
// that no key is a prefix of another (spec.md §3, "Symbols"). It is treated
// as a letter one past the end of the alphabet.
const Endmarker = '#'

// Wildcard is the single-character wildcard symbol accepted by Query.
const Wildcard = '?'

// DefaultAlphabetSize is the size used by NewDefault — the 26 letters of the
// English alphabet, matching the reference implementation's default.
const DefaultAlphabetSize = 26

// firstLetter is the first symbol of the alphabet; symbols are taken to be
// the contiguous rune range [firstLetter, firstLetter+alphabetSize).
const firstLetter = 'a'

// alphabet maps runes to dense offsets in [1, size+1] and back. Offset 0 is
// reserved (spec.md §4.1).
type alphabet struct {
	size            int32
	endmarkerOffset int32
}

func newAlphabet(size int) (*alphabet, error) {
	if size < 1 {
		return nil, ErrInvalidAlphabetSize
	}
	return &alphabet{size: int32(size), endmarkerOffset: int32(size) + 1}, nil
}

// offset maps a letter or the endmarker to its dense offset.
func (a *alphabet) offset(ch rune) (int32, error) {
	if ch == Endmarker {
		return a.endmarkerOffset, nil
	}
	off := int32(ch-firstLetter) + 1
	if off < 1 || off > a.size {
		return 0, ErrSymbolOutOfAlphabet
	}
	return off, nil
}

// tryOffset is offset without the error: ok is false for symbols outside the
// alphabet, which callers that scan free-form text (Match) treat as "this
// walk can't continue" rather than a hard error.
func (a *alphabet) tryOffset(ch rune) (int32, bool) {
	off, err := a.offset(ch)
	return off, err == nil
}

// charFromOffset is the inverse of offset.
func (a *alphabet) charFromOffset(off int32) rune {
	if off == a.endmarkerOffset {
		return Endmarker
	}
	return firstLetter + rune(off-1)
}

// encodeKey maps word to its offset sequence with a trailing endmarker.
func (a *alphabet) encodeKey(word string) ([]int32, error) {
	runes := []rune(word)
	key := make([]int32, 0, len(runes)+1)
	for _, r := range runes {
		off, err := a.offset(r)
		if err != nil {
			return nil, err
		}
		key = append(key, off)
	}
	endOff, _ := a.offset(Endmarker)
	return append(key, endOff), nil
}

// encodePrefix maps a plain prefix (no endmarker appended) to its offsets.
func (a *alphabet) encodePrefix(prefix string) ([]int32, error) {
	runes := []rune(prefix)
	key := make([]int32, 0, len(runes))
	for _, r := range runes {
		off, err := a.offset(r)
		if err != nil {
			return nil, err
		}
		key = append(key, off)
	}
	return key, nil
}

// offsetsToString renders an offset sequence back into a string, ignoring
// any trailing/embedded endmarker offsets (which never render a character).
func (a *alphabet) offsetsToString(offsets []int32) string {
	runes := make([]rune, 0, len(offsets))
	for _, off := range offsets {
		if off == a.endmarkerOffset {
			continue
		}
		runes = append(runes, a.charFromOffset(off))
	}
	return string(runes)
}

// appendSymbol renders a single offset as a string fragment — empty for the
// endmarker, matching composeWord's convention that the endmarker never
// contributes a visible character.
func (a *alphabet) appendSymbol(off int32) string {
	if off == a.endmarkerOffset {
		return ""
	}
	return string(a.charFromOffset(off))
}
