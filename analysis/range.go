package analysis

import (
	"math/bits"
	"strings"
)

// Range is a set of grid labels. The zero value is an empty range. Ranges
// are plain values: copying one copies the set.
type Range struct {
	bits [3]uint64
}

// NewRange creates a range holding the given labels.
func NewRange(labels ...Label) Range {
	var r Range
	for _, l := range labels {
		r.Add(l)
	}
	return r
}

// FullRange returns a range holding all 169 labels.
func FullRange() Range {
	return NewRange(AllLabels()...)
}

// Add inserts a label.
func (r *Range) Add(l Label) {
	i := l.Index()
	r.bits[i/64] |= 1 << (i % 64)
}

// Remove deletes a label.
func (r *Range) Remove(l Label) {
	i := l.Index()
	r.bits[i/64] &^= 1 << (i % 64)
}

// Toggle flips a label's membership and reports whether it is now present.
func (r *Range) Toggle(l Label) bool {
	i := l.Index()
	r.bits[i/64] ^= 1 << (i % 64)
	return r.Contains(l)
}

// Clear removes every label.
func (r *Range) Clear() {
	r.bits = [3]uint64{}
}

// Contains checks if a label is in the range.
func (r Range) Contains(l Label) bool {
	i := l.Index()
	return r.bits[i/64]&(1<<(i%64)) != 0
}

// Union returns the labels present in either range.
func (r Range) Union(other Range) Range {
	for i := range r.bits {
		r.bits[i] |= other.bits[i]
	}
	return r
}

// Len returns the number of labels in the range.
func (r Range) Len() int {
	n := 0
	for _, w := range r.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether the range has no labels.
func (r Range) IsEmpty() bool {
	return r.bits == [3]uint64{}
}

// Labels returns the labels in grid order.
func (r Range) Labels() []Label {
	labels := make([]Label, 0, r.Len())
	for w, word := range r.bits {
		for rest := word; rest != 0; rest &= rest - 1 {
			labels = append(labels, labelAt(w*64+bits.TrailingZeros64(rest)))
		}
	}
	return labels
}

// Combos returns the total number of combos in the range with nothing blocked.
func (r Range) Combos() int {
	n := 0
	for _, l := range r.Labels() {
		n += len(comboTable()[l.Index()])
	}
	return n
}

// String renders the range as comma separated labels in grid order. The
// output parses back to the same range.
func (r Range) String() string {
	labels := r.Labels()
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = l.String()
	}
	return strings.Join(parts, ", ")
}
