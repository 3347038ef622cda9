package datrie

import "sort"

// offsetSet is an ordered set of alphabet offsets, mirroring the TreeSet<Integer>
// the reference implementation uses for child-offset lists and the xCheck
// argument. Offsets are small (at most alphabetSize+1), so a sorted slice with
// linear add/remove is simpler than a tree and just as fast in practice.
type offsetSet struct {
	values []int32
}

func newOffsetSet(offsets ...int32) *offsetSet {
	s := &offsetSet{}
	for _, o := range offsets {
		s.Add(o)
	}
	return s
}

func (s *offsetSet) Len() int {
	return len(s.values)
}

func (s *offsetSet) IsEmpty() bool {
	return len(s.values) == 0
}

func (s *offsetSet) indexOf(v int32) (int, bool) {
	i := sort.Search(len(s.values), func(i int) bool { return s.values[i] >= v })
	if i < len(s.values) && s.values[i] == v {
		return i, true
	}
	return i, false
}

func (s *offsetSet) Contains(v int32) bool {
	_, ok := s.indexOf(v)
	return ok
}

func (s *offsetSet) Add(v int32) {
	i, ok := s.indexOf(v)
	if ok {
		return
	}
	s.values = append(s.values, 0)
	copy(s.values[i+1:], s.values[i:])
	s.values[i] = v
}

func (s *offsetSet) Remove(v int32) {
	i, ok := s.indexOf(v)
	if !ok {
		return
	}
	s.values = append(s.values[:i], s.values[i+1:]...)
}

// Min returns the smallest offset in the set. Panics if the set is empty.
func (s *offsetSet) Min() int32 {
	return s.values[0]
}

// Max returns the largest offset in the set. Panics if the set is empty.
func (s *offsetSet) Max() int32 {
	return s.values[len(s.values)-1]
}

// Each calls fn for every offset in ascending order.
func (s *offsetSet) Each(fn func(int32)) {
	for _, v := range s.values {
		fn(v)
	}
}

// Clone returns an independent copy of the set.
func (s *offsetSet) Clone() *offsetSet {
	cp := make([]int32, len(s.values))
	copy(cp, s.values)
	return &offsetSet{values: cp}
}
