package fcomplex

import "github.com/aleph-go/aleph/simplex"

// NewFromSlice builds a FilteredComplex by pushing every supplied
// simplex in order. A convenience constructor for literal test fixtures
// and seed scenarios (spec.md §8).
// Complexity: O(n) amortized.
func NewFromSlice(simplices ...simplex.Simplex) *FilteredComplex {
	c := New()
	for _, s := range simplices {
		c.Push(s)
	}
	return c
}
