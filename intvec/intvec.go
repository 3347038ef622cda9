// Package intvec provides a minimal growable list of 32-bit signed integers.
//
// This is the "dynamic integer-vector container" spec.md treats as an
// external collaborator: an ordered sequence supporting append, indexed
// get/set, and truncation. Go's append already gives us most of this; List
// exists so callers get a named, testable type instead of passing []int32
// around directly.
package intvec

// List is a growable sequence of int32 values, indexed from 0.
type List struct {
	data []int32
}

// New returns an empty list.
func New() *List {
	return &List{data: make([]int32, 0, 16)}
}

// Size returns the number of elements in the list.
func (l *List) Size() int {
	return len(l.data)
}

// Add appends value to the end of the list.
func (l *List) Add(value int32) {
	l.data = append(l.data, value)
}

// Get returns the value at index.
func (l *List) Get(index int32) int32 {
	return l.data[index]
}

// Set replaces the value at index and returns the previous value.
func (l *List) Set(index, value int32) int32 {
	old := l.data[index]
	l.data[index] = value
	return old
}

// TrimToSize truncates the list to the given size, dropping any elements
// beyond it. size must not exceed the current Size().
func (l *List) TrimToSize(size int32) {
	l.data = l.data[:size]
}
