package fcomplex

import (
	"errors"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/aleph-go/aleph/simplex"
)

// FilteredComplex is a bi-indexed container of simplex.Simplex values:
// an order view (insertion order, or filtration order after Sort) and a
// lookup view (vertex key → filtration index). See the package doc.
type FilteredComplex struct {
	order []simplex.Simplex
	index map[string]int
}

// New creates an empty FilteredComplex.
// Complexity: O(1).
func New() *FilteredComplex {
	return &FilteredComplex{
		index: make(map[string]int),
	}
}

// Len returns the number of simplices currently stored.
// Complexity: O(1).
func (c *FilteredComplex) Len() int {
	return len(c.order)
}

// Push appends s to the order view. If a simplex with the same vertex
// key is already present, its stored weight is overwritten in place and
// s is not doubly inserted (spec §4.2).
// Complexity: amortized O(1).
func (c *FilteredComplex) Push(s simplex.Simplex) {
	key := s.Key()
	if i, ok := c.index[key]; ok {
		c.order[i] = s
		return
	}
	c.index[key] = len(c.order)
	c.order = append(c.order, s)
}

// AddSimplex constructs a Simplex from vertices and weight, validating
// the vertex list, and pushes it. Returns the resulting filtration
// index (the index it occupies immediately; Sort will renumber it).
//
// Complexity: O(d) for construction, amortized O(1) for insertion.
func (c *FilteredComplex) AddSimplex(vertices []int, weight float64) (int, error) {
	s, err := simplex.New(vertices, weight)
	if err != nil {
		switch {
		case errors.Is(err, simplex.ErrInvalidVertexOrder):
			// New also rejects plain duplicates (a == a) via the
			// strictly-increasing check; distinguish the two spec
			// failure modes by re-scanning for an exact repeat.
			if hasDuplicate(vertices) {
				return 0, ErrDuplicateVertex
			}
			return 0, ErrInvalidVertexOrder
		default:
			return 0, err
		}
	}

	c.Push(s)
	return c.index[s.Key()], nil
}

func hasDuplicate(vertices []int) bool {
	seen := make(map[int]struct{}, len(vertices))
	for _, v := range vertices {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}

// IndexOf returns the filtration index of s, if present.
// Complexity: O(1) average (map lookup keyed by s.Key()).
func (c *FilteredComplex) IndexOf(s simplex.Simplex) (int, bool) {
	i, ok := c.index[s.Key()]
	return i, ok
}

// At returns the simplex stored at filtration index i.
// Complexity: O(1).
func (c *FilteredComplex) At(i int) (simplex.Simplex, bool) {
	if i < 0 || i >= len(c.order) {
		return simplex.Simplex{}, false
	}
	return c.order[i], true
}

// Vertices returns the deduplicated set of vertex identifiers appearing
// across every stored simplex, in ascending order. The dedup set is
// accumulated in a roaring.Bitmap: vertex identifiers are small,
// non-negative integers, the textbook use case for a compressed bitset.
// Complexity: O(n·d) to build, O(V) to materialize.
func (c *FilteredComplex) Vertices() []int {
	bm := roaring.New()
	for _, s := range c.order {
		for _, v := range s.Vertices() {
			bm.Add(uint32(v))
		}
	}

	arr := bm.ToArray()
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	return out
}

// FaceWeightCombiner derives the weight of a missing face from the
// weights of the known cofaces that were found to contain it. It MUST
// be order-independent: the result must not depend on the iteration
// order in which cofaces were discovered (spec §4.2).
type FaceWeightCombiner func(cofaceWeights []float64) float64

// MaxCombiner is the conventional combinator: the missing face inherits
// the maximum weight among its known cofaces. Order-independent.
func MaxCombiner(cofaceWeights []float64) float64 {
	m := cofaceWeights[0]
	for _, w := range cofaceWeights[1:] {
		if w > m {
			m = w
		}
	}
	return m
}

// Close ensures the complex is closed under taking faces: for every
// simplex currently present, every codimension-1 face is inserted if
// missing, recursively, until a fixpoint is reached. A newly inserted
// face's weight is combiner(weights of the cofaces that were found,
// directly or indirectly, to require it).
//
// Steps:
//  1. Reject a nil combiner (ErrNilCombiner).
//  2. Scan the current order view; for each simplex of dimension ≥ 1,
//     inspect its boundary faces. For every face not yet present in the
//     lookup view, accumulate the parent's weight into a per-face bucket.
//  3. If the scan filled no bucket, the complex is closed: return.
//  4. Otherwise insert every bucketed face (in key order) with weight =
//     combiner(bucket), then repeat from step 2 (inserted faces may
//     themselves have missing sub-faces).
//  5. If a bucket is ever empty where an insertion was expected (should
//     not occur — every missing face was discovered via a real coface),
//     fail with ErrUnknownFaceDuringClose.
//
// Complexity: O(n·d) per pass, O(d) passes in the worst case (d =
// complex dimension), so O(n·d²) overall.
func (c *FilteredComplex) Close(combiner FaceWeightCombiner) error {
	if combiner == nil {
		return ErrNilCombiner
	}

	for {
		buckets := make(map[string][]float64)
		faces := make(map[string]simplex.Simplex)

		for _, s := range c.order {
			if s.Dimension() == 0 {
				continue
			}
			for _, face := range s.Boundary() {
				key := face.Key()
				if _, ok := c.index[key]; ok {
					continue
				}
				buckets[key] = append(buckets[key], s.Weight())
				faces[key] = face
			}
		}

		if len(buckets) == 0 {
			return nil
		}

		// Deterministic insertion order: sort keys so Close's effect on
		// the order view does not depend on map iteration order.
		keys := make([]string, 0, len(buckets))
		for k := range buckets {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			weights := buckets[k]
			if len(weights) == 0 {
				return ErrUnknownFaceDuringClose
			}
			face := faces[k].WithWeight(combiner(weights))
			c.Push(face)
		}
	}
}

// Sort stably reorders the complex by cmp, renumbering filtration
// indices and the lookup view to match. After sorting, for every pair
// (face, coface) the face MUST precede the coface; simplex.Ascending and
// simplex.Descending already tie-break by dimension before falling back
// to lexicographic order, precisely so that faces and cofaces assigned
// equal weight by Close still land in a valid order. For a caller-
// supplied cmp that does not do this, Sort transparently appends a
// dimension-ascending tie-breaker and retries once; if the invariant
// still fails to hold (e.g. a coface was explicitly given a smaller
// weight than one of its own faces), Sort fails with
// ErrCyclicFiltrationOrder.
//
// Complexity: O(n log n) for the sort, O(n·d) for invariant validation.
func (c *FilteredComplex) Sort(cmp simplex.Comparator) error {
	if cmp == nil {
		return ErrNilComparator
	}

	if err := c.sortOnce(cmp); err != nil {
		return err
	}
	if c.facePrecedesCoface() {
		return nil
	}

	tieBroken := func(a, b simplex.Simplex) bool {
		if cmp(a, b) {
			return true
		}
		if cmp(b, a) {
			return false
		}
		return a.Dimension() < b.Dimension()
	}

	if err := c.sortOnce(tieBroken); err != nil {
		return err
	}
	if !c.facePrecedesCoface() {
		return ErrCyclicFiltrationOrder
	}
	return nil
}

func (c *FilteredComplex) sortOnce(less simplex.Comparator) error {
	sort.SliceStable(c.order, func(i, j int) bool {
		return less(c.order[i], c.order[j])
	})
	for i, s := range c.order {
		c.index[s.Key()] = i
	}
	return nil
}

// facePrecedesCoface reports whether, for every stored simplex, every
// one of its boundary faces (when present) occupies an earlier index.
func (c *FilteredComplex) facePrecedesCoface() bool {
	for j, s := range c.order {
		if s.Dimension() == 0 {
			continue
		}
		for _, face := range s.Boundary() {
			if i, ok := c.index[face.Key()]; ok && i >= j {
				return false
			}
		}
	}
	return true
}

// Skeleton returns a new complex containing only the simplices of
// dimension ≤ k, preserving their relative order.
// Complexity: O(n).
func (c *FilteredComplex) Skeleton(k int) *FilteredComplex {
	out := New()
	for _, s := range c.order {
		if s.Dimension() <= k {
			out.Push(s)
		}
	}
	return out
}

// Dimension returns the maximum dimension among stored simplices, or -1
// for an empty complex.
// Complexity: O(n).
func (c *FilteredComplex) Dimension() int {
	d := -1
	for _, s := range c.order {
		if s.Dimension() > d {
			d = s.Dimension()
		}
	}
	return d
}

// Clone returns a deep copy of c, independent of future mutation.
// Complexity: O(n·d).
func (c *FilteredComplex) Clone() *FilteredComplex {
	out := New()
	for _, s := range c.order {
		out.Push(s)
	}
	return out
}
