package convert

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/aleph-go/aleph/boundarymatrix"
	"github.com/aleph-go/aleph/fcomplex"
)

// Kind selects which boundarymatrix.Representation FromComplex builds.
type Kind int

const (
	// KindIndexList builds a boundarymatrix.IndexList (the default).
	KindIndexList Kind = iota
	// KindIndexedHeap builds a boundarymatrix.IndexedHeap.
	KindIndexedHeap
)

type config struct {
	kind        Kind
	allowed     *roaring.Bitmap
	maxIndex    int
	hasMaxIndex bool
}

// Option configures FromComplex.
type Option func(*config)

// WithRepresentation selects the concrete Representation implementation
// to build. Default: KindIndexList.
func WithRepresentation(kind Kind) Option {
	return func(c *config) { c.kind = kind }
}

// WithAllowedIndices restricts the boundary of every column to faces
// whose filtration index is in allowed; faces not in the set are simply
// omitted from the column rather than causing an error. The complex
// itself is untouched; only which rows may appear in a column is
// restricted.
func WithAllowedIndices(allowed []int) Option {
	return func(c *config) {
		bm := roaring.New()
		for _, v := range allowed {
			bm.Add(uint32(v))
		}
		c.allowed = bm
	}
}

// WithMaxIndex restricts the matrix to the first maxIndex filtration
// indices: simplices at index ≥ maxIndex are excluded entirely, both as
// columns and as potential boundary rows. aleph.CalculateIntersectionHomology
// uses it to convert only the allowable prefix of a perversity.Partition.
func WithMaxIndex(maxIndex int) Option {
	return func(c *config) {
		c.maxIndex = maxIndex
		c.hasMaxIndex = true
	}
}

// FromComplex builds a boundarymatrix.Representation from a closed,
// sorted (face-before-coface) FilteredComplex: column i holds the sorted
// filtration indices of the codimension-1 faces of the simplex at index
// i.
//
// Complexity: O(n·d) where d is the complex dimension.
func FromComplex(c *fcomplex.FilteredComplex, opts ...Option) (boundarymatrix.Representation, error) {
	cfg := config{kind: KindIndexList, maxIndex: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := c.Len()
	if cfg.hasMaxIndex && cfg.maxIndex < n {
		n = cfg.maxIndex
	}

	m, err := newRepresentation(cfg.kind, n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		s, _ := c.At(i)

		if s.Dimension() == 0 {
			if err := m.SetColumn(i, nil); err != nil {
				return nil, err
			}
			continue
		}

		rows := make([]int, 0, s.Dimension()+1)
		for _, face := range s.Boundary() {
			j, ok := c.IndexOf(face)
			if !ok {
				return nil, ErrNotClosed
			}
			if j >= i {
				return nil, ErrNotSorted
			}
			if j >= n {
				continue
			}
			if cfg.allowed != nil && !cfg.allowed.Contains(uint32(j)) {
				continue
			}
			rows = append(rows, j)
		}
		sort.Ints(rows)

		if err := m.SetColumn(i, rows); err != nil {
			return nil, err
		}
		if err := m.SetColumnDimension(i, s.Dimension()); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func newRepresentation(kind Kind, n int) (boundarymatrix.Representation, error) {
	switch kind {
	case KindIndexedHeap:
		return boundarymatrix.NewIndexedHeap(n)
	default:
		return boundarymatrix.NewIndexList(n)
	}
}
