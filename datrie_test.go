package datrie

import (
	"reflect"
	"sort"
	"testing"
)

func mustInsert(t *testing.T, d *DATrie, words ...string) {
	t.Helper()
	for _, w := range words {
		if err := d.Insert(w); err != nil {
			t.Fatalf("Insert(%q) failed: %v", w, err)
		}
	}
}

func sorted(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}

func TestContainsCatCarCart(t *testing.T) {
	d := NewDefault()
	mustInsert(t, d, "cat", "car", "cart")

	cases := map[string]bool{
		"cat":   true,
		"ca":    false,
		"cart":  true,
		"carts": false,
	}
	for word, want := range cases {
		got, err := d.Contains(word)
		if err != nil {
			t.Fatalf("Contains(%q) error: %v", word, err)
		}
		if got != want {
			t.Fatalf("Contains(%q) = %v, want %v", word, got, want)
		}
	}

	words, err := d.StartsWith("ca")
	if err != nil {
		t.Fatalf("StartsWith error: %v", err)
	}
	want := []string{"cat", "car", "cart"}
	if !reflect.DeepEqual(sorted(words), sorted(want)) {
		t.Fatalf("StartsWith(\"ca\") = %v, want %v", words, want)
	}
}

func TestEndmarkerEdgeCoexistsWithContinuation(t *testing.T) {
	d := NewDefault()
	mustInsert(t, d, "the", "then", "there")

	for _, w := range []string{"the", "then", "there"} {
		got, err := d.Contains(w)
		if err != nil || !got {
			t.Fatalf("Contains(%q) = %v, %v, want true, nil", w, got, err)
		}
	}
	if got, _ := d.Contains("th"); got {
		t.Fatalf("Contains(\"th\") = true, want false")
	}
}

func TestSingleLetterWord(t *testing.T) {
	d := NewDefault()
	mustInsert(t, d, "a")

	if got, _ := d.Contains(""); got {
		t.Fatalf("Contains(\"\") = true, want false")
	}
	if got, err := d.Contains("a"); err != nil || !got {
		t.Fatalf("Contains(\"a\") = %v, %v, want true, nil", got, err)
	}
}

func TestBInsertTriggeredBySharedFirstLetter(t *testing.T) {
	d := NewDefault()
	mustInsert(t, d, "a", "at")

	for _, w := range []string{"a", "at"} {
		if got, err := d.Contains(w); err != nil || !got {
			t.Fatalf("Contains(%q) = %v, %v, want true, nil", w, got, err)
		}
	}
}

func TestAlphabetSizeOne(t *testing.T) {
	d, err := New(1)
	if err != nil {
		t.Fatalf("New(1) failed: %v", err)
	}
	if err := d.Insert("a"); err != nil {
		t.Fatalf("Insert(\"a\") failed: %v", err)
	}
	if err := d.Insert("aa"); err != nil {
		t.Fatalf("Insert(\"aa\") failed: %v", err)
	}
	for _, w := range []string{"a", "aa"} {
		if got, err := d.Contains(w); err != nil || !got {
			t.Fatalf("Contains(%q) = %v, %v, want true, nil", w, got, err)
		}
	}
	if _, err := New(0); err == nil {
		t.Fatalf("New(0) succeeded, want ErrInvalidAlphabetSize")
	}
}

func TestSymbolOutOfAlphabetRejected(t *testing.T) {
	d, err := New(3) // only 'a', 'b', 'c'
	if err != nil {
		t.Fatalf("New(3) failed: %v", err)
	}
	if err := d.Insert("dog"); err == nil {
		t.Fatalf("Insert(\"dog\") succeeded, want ErrSymbolOutOfAlphabet")
	}
}

func TestMatchFindsWordsLeftToRight(t *testing.T) {
	d := NewDefault()
	mustInsert(t, d, "vertical", "call", "all", "wvert")

	words, err := d.Match("wverticall")
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	want := []string{"vertical", "call", "all", "wvert"}
	if !reflect.DeepEqual(sorted(words), sorted(want)) {
		t.Fatalf("Match(\"wverticall\") = %v, want %v", words, want)
	}
}

func TestPermuteFindsSubMultisetWords(t *testing.T) {
	d := NewDefault()
	mustInsert(t, d, "dare", "dear", "are", "rad", "red", "read", "ear", "era", "bad")

	words, err := d.Permute([]rune{'a', 'e', 'r', 'd'})
	if err != nil {
		t.Fatalf("Permute error: %v", err)
	}
	want := []string{"dare", "dear", "are", "rad", "red", "read", "ear", "era"}
	if !reflect.DeepEqual(sorted(words), sorted(want)) {
		t.Fatalf("Permute = %v, want %v", words, want)
	}
	for _, w := range words {
		if w == "bad" {
			t.Fatalf("Permute unexpectedly returned \"bad\"")
		}
	}
}

func TestPermuteDoesNotDuplicateOnRepeatedLetters(t *testing.T) {
	d := NewDefault()
	mustInsert(t, d, "aa", "a")

	words, err := d.Permute([]rune{'a', 'a'})
	if err != nil {
		t.Fatalf("Permute error: %v", err)
	}
	seen := map[string]int{}
	for _, w := range words {
		seen[w]++
	}
	for w, n := range seen {
		if n > 1 {
			t.Fatalf("word %q emitted %d times, want at most once", w, n)
		}
	}
	if seen["a"] != 1 || seen["aa"] != 1 {
		t.Fatalf("Permute([a,a]) = %v, want exactly {a, aa}", words)
	}
}

func TestQueryWildcard(t *testing.T) {
	d := NewDefault()
	mustInsert(t, d, "slice", "space", "since", "spice", "since")

	words, err := d.Query("s??ce")
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	want := []string{"slice", "space", "since", "spice"}
	if !reflect.DeepEqual(sorted(words), sorted(want)) {
		t.Fatalf("Query(\"s??ce\") = %v, want %v", words, want)
	}
}

func TestQuerySingleWildcard(t *testing.T) {
	d := NewDefault()
	mustInsert(t, d, "a", "b", "ab")

	words, err := d.Query("?")
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	want := []string{"a", "b"}
	if !reflect.DeepEqual(sorted(words), sorted(want)) {
		t.Fatalf("Query(\"?\") = %v, want %v", words, want)
	}
}

func TestInsertIdempotent(t *testing.T) {
	d := NewDefault()
	mustInsert(t, d, "cat")
	before := snapshotArrays(d)
	mustInsert(t, d, "cat")
	after := snapshotArrays(d)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("re-inserting \"cat\" changed the arrays: before=%v after=%v", before, after)
	}
}

func snapshotArrays(d *DATrie) []int32 {
	n := d.base.Size()
	out := make([]int32, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, d.base.Get(int32(i)), d.check.Get(int32(i)))
	}
	return out
}

func TestTrimToSize(t *testing.T) {
	d := NewDefault()
	mustInsert(t, d, "cat", "car", "cart", "dog")
	d.TrimToSize()

	for _, w := range []string{"cat", "car", "cart", "dog"} {
		if got, err := d.Contains(w); err != nil || !got {
			t.Fatalf("Contains(%q) after TrimToSize = %v, %v, want true, nil", w, got, err)
		}
	}
}
