package fcomplex

import (
	"errors"
	"sort"

	"github.com/aleph-go/aleph/simplex"
)

// ErrComplexNotClosed indicates an operation that requires a closed
// complex (every face of every simplex present) was given one that is
// not — Subdivide cannot locate the coface-originating faces it needs.
var ErrComplexNotClosed = errors.New("fcomplex: complex is not closed")

// Subdivide computes the barycentric subdivision of c: for every
// simplex s of dimension ≥ 1, a new vertex b_s is introduced, with id
// offset + i where offset is one above the current maximum vertex id and
// i is s's filtration index, and s is replaced by the cone, over
// b_s, of the (already subdivided) subdivision of its boundary. New
// simplices inherit s's weight (spec §4.2).
//
// Precondition: c MUST be closed (Close) and sorted face-before-coface
// (Sort) — Subdivide derives each barycenter's new vertex id from the
// parent's filtration index, which must exceed every index among its
// faces for the resulting vertex lists to stay strictly increasing;
// a violation surfaces as simplex.ErrInvalidVertexOrder.
//
// Complexity: O(n·2^d) in the worst case (each simplex's boundary-cone
// union can include up to 2^d prior sub-simplices for dimension d), but
// O(n·d) for the flag-like inputs this spec targets (spec.md examples).
func (c *FilteredComplex) Subdivide() (*FilteredComplex, error) {
	n := c.Len()
	offset := 0
	for _, v := range c.Vertices() {
		if v+1 > offset {
			offset = v + 1
		}
	}

	// Process simplices in non-decreasing dimension order so that every
	// face's cone has already been computed by the time its cofaces
	// need it.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		da, _ := c.At(order[a])
		db, _ := c.At(order[b])
		return da.Dimension() < db.Dimension()
	})

	cone := make([][]simplex.Simplex, n)
	out := New()

	for _, idx := range order {
		s, _ := c.At(idx)

		if s.Dimension() == 0 {
			cone[idx] = []simplex.Simplex{s}
			out.Push(s)
			continue
		}

		seen := make(map[string]simplex.Simplex)
		for _, face := range s.Boundary() {
			fi, ok := c.IndexOf(face)
			if !ok {
				return nil, ErrComplexNotClosed
			}
			for _, cs := range cone[fi] {
				seen[cs.Key()] = cs
			}
		}

		boundary := make([]simplex.Simplex, 0, len(seen))
		for _, cs := range seen {
			boundary = append(boundary, cs)
		}
		sort.Slice(boundary, func(a, b int) bool { return boundary[a].Key() < boundary[b].Key() })

		bID := offset + idx
		bSimplex, err := simplex.New([]int{bID}, s.Weight())
		if err != nil {
			return nil, err
		}
		out.Push(bSimplex)

		thisCone := make([]simplex.Simplex, 0, 2*len(boundary)+1)
		thisCone = append(thisCone, boundary...)
		thisCone = append(thisCone, bSimplex)

		for _, bs := range boundary {
			verts := append(append([]int{}, bs.Vertices()...), bID)
			ns, err := simplex.New(verts, s.Weight())
			if err != nil {
				return nil, err
			}
			out.Push(ns)
			thisCone = append(thisCone, ns)
		}

		cone[idx] = thisCone
	}

	return out, nil
}
