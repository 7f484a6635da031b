package simplex

import (
	"strconv"
	"strings"
)

// Simplex is an immutable, ordered vertex tuple carrying a scalar
// filtration weight. Vertices are non-negative integers in strictly
// increasing order (the canonical form required by spec §3).
//
// Two simplices compare equal, and hash identically as a map key via
// Key(), iff they have the same vertex list; the weight participates in
// ordering (see Comparator) but never in equality.
type Simplex struct {
	vertices []int
	weight   float64
}

// New constructs a Simplex from a strictly increasing, non-negative
// vertex list and a scalar weight.
//
// Steps:
//  1. Reject an empty vertex list (ErrEmptySimplex) — the empty simplex
//     only ever exists as a transient sentinel inside boundary traversal.
//  2. Reject negative identifiers (ErrNegativeVertex).
//  3. Reject non-strictly-increasing order (ErrInvalidVertexOrder).
//  4. Copy the vertex slice so the caller's backing array cannot later
//     mutate this Simplex.
//
// Complexity: O(d) where d+1 is the vertex count.
func New(vertices []int, weight float64) (Simplex, error) {
	if len(vertices) == 0 {
		return Simplex{}, ErrEmptySimplex
	}
	for i, v := range vertices {
		if v < 0 {
			return Simplex{}, ErrNegativeVertex
		}
		if i > 0 && vertices[i-1] >= v {
			return Simplex{}, ErrInvalidVertexOrder
		}
	}

	cp := make([]int, len(vertices))
	copy(cp, vertices)

	return Simplex{vertices: cp, weight: weight}, nil
}

// MustNew is like New but panics on error. Intended for literal
// construction in tests and seed scenarios, never for user input.
func MustNew(vertices []int, weight float64) Simplex {
	s, err := New(vertices, weight)
	if err != nil {
		panic(err)
	}
	return s
}

// Dimension returns the simplex dimension (vertex count minus one).
// Complexity: O(1).
func (s Simplex) Dimension() int {
	return len(s.vertices) - 1
}

// Weight returns the scalar filtration value attached to this simplex.
// Complexity: O(1).
func (s Simplex) Weight() float64 {
	return s.weight
}

// WithWeight returns a copy of s carrying a different weight. Used by
// fcomplex.Close when assigning a combinator-derived weight to a
// missing face.
// Complexity: O(d).
func (s Simplex) WithWeight(weight float64) Simplex {
	cp := make([]int, len(s.vertices))
	copy(cp, s.vertices)
	return Simplex{vertices: cp, weight: weight}
}

// Vertices returns a copy of the vertex list, in increasing order.
// Complexity: O(d).
func (s Simplex) Vertices() []int {
	cp := make([]int, len(s.vertices))
	copy(cp, s.vertices)
	return cp
}

// Contains reports whether v appears in the vertex list. Linear scan —
// simplex arity is small in practice (spec §4.1: "typically ≤ 4–6").
// Complexity: O(d).
func (s Simplex) Contains(v int) bool {
	for _, u := range s.vertices {
		if u == v {
			return true
		}
	}
	return false
}

// Boundary returns the (d+1) codimension-1 faces of a d-simplex (d ≥ 1),
// obtained by deleting each vertex in turn, in delete-index order
// (i = 0 … d), so the result is reproducible. For a 0-simplex the
// boundary is empty.
//
// Complexity: O(d²) (d faces, each an O(d) copy).
func (s Simplex) Boundary() []Simplex {
	d := s.Dimension()
	if d <= 0 {
		return nil
	}

	faces := make([]Simplex, 0, d+1)
	for i := range s.vertices {
		face := make([]int, 0, d)
		face = append(face, s.vertices[:i]...)
		face = append(face, s.vertices[i+1:]...)
		faces = append(faces, Simplex{vertices: face, weight: s.weight})
	}

	return faces
}

// Equal reports whether s and other have the same vertex list. The
// weight does not participate (spec §3).
// Complexity: O(d).
func (s Simplex) Equal(other Simplex) bool {
	if len(s.vertices) != len(other.vertices) {
		return false
	}
	for i, v := range s.vertices {
		if other.vertices[i] != v {
			return false
		}
	}
	return true
}

// Key returns a canonical string encoding of the vertex list, suitable
// as a map key for the lookup view in fcomplex. Two simplices have the
// same Key() iff Equal returns true for them.
// Complexity: O(d).
func (s Simplex) Key() string {
	var b strings.Builder
	for i, v := range s.vertices {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Comparator orders two simplices for filtration purposes. Used by
// fcomplex.Sort.
type Comparator func(a, b Simplex) bool

// Ascending orders by weight ascending, breaking ties by dimension
// ascending (so a face never sorts after one of its cofaces merely
// because Close assigned them equal weight) and finally, within a
// dimension, lexicographically by vertex list (sublevel-set filtration,
// the default per spec §4.1).
func Ascending(a, b Simplex) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.Dimension() != b.Dimension() {
		return a.Dimension() < b.Dimension()
	}
	return lexLess(a.vertices, b.vertices)
}

// Descending orders by weight descending, with the same dimension-then-
// lex tie-break as Ascending (superlevel-set filtration).
func Descending(a, b Simplex) bool {
	if a.weight != b.weight {
		return a.weight > b.weight
	}
	if a.Dimension() != b.Dimension() {
		return a.Dimension() < b.Dimension()
	}
	return lexLess(a.vertices, b.vertices)
}

func lexLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
