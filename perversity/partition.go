package perversity

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/aleph-go/aleph/fcomplex"
	"github.com/aleph-go/aleph/simplex"
)

// Predicate decides whether a simplex is allowable. Allowability is
// always determined by a predicate supplied by the caller (spec §4.8);
// this package never computes dim(σ ∩ X_c) itself.
type Predicate func(s simplex.Simplex) bool

// StratumIntersectionDimension reports dim(σ ∩ X_c) for a simplex σ
// against stratum c; callers supply this to AllowabilityPredicate, since
// what "X_c" means is a property of the stratified space being modeled,
// not of the complex data structure.
type StratumIntersectionDimension func(s simplex.Simplex, stratum int) int

// AllowabilityPredicate builds φ(σ) from a Perversity and a stratum
// intersection-dimension function, per spec §4.8: σ of dimension s is
// allowable with respect to X_c iff dim(σ ∩ X_c) ≤ s - c + p(c), for
// every c in 1 … maxStratum.
func AllowabilityPredicate(p Perversity, maxStratum int, dim StratumIntersectionDimension) Predicate {
	return func(s simplex.Simplex) bool {
		sd := s.Dimension()
		for c := 1; c <= maxStratum; c++ {
			if dim(s, c) > sd-c+p.At(c) {
				return false
			}
		}
		return true
	}
}

// Partition is the result of partitioning a closed complex into
// allowable simplices (kept in their original relative order) followed
// by the non-allowable ones.
type Partition struct {
	// Complex is the re-ordered complex: allowable simplices first,
	// non-allowable simplices after.
	Complex *fcomplex.FilteredComplex
	// AllowedCount is s = |allowable|, the index up to which the
	// re-ordered complex must be converted to a boundary matrix so that
	// reduction only sees the allowable sub-chain complex.
	AllowedCount int

	allowed *roaring.Bitmap
}

// IsOriginallyAllowed reports whether the simplex that occupied index i
// in the complex passed to Split was allowable.
func (p *Partition) IsOriginallyAllowed(originalIndex int) bool {
	return p.allowed.Contains(uint32(originalIndex))
}

// Split stably partitions c into allowable and non-allowable simplices
// according to phi, placing allowable simplices first.
//
// Steps:
//  1. Scan c in order, classifying each simplex with phi.
//  2. Append allowable simplices to the output complex, then
//     non-allowable ones, each group preserving its relative order.
//
// Complexity: O(n).
func Split(c *fcomplex.FilteredComplex, phi Predicate) *Partition {
	allowed := roaring.New()
	allowable := make([]simplex.Simplex, 0, c.Len())
	rest := make([]simplex.Simplex, 0, c.Len())

	for i := 0; i < c.Len(); i++ {
		s, ok := c.At(i)
		if !ok {
			continue
		}
		if phi(s) {
			allowed.Add(uint32(i))
			allowable = append(allowable, s)
		} else {
			rest = append(rest, s)
		}
	}

	out := fcomplex.New()
	for _, s := range allowable {
		out.Push(s)
	}
	for _, s := range rest {
		out.Push(s)
	}

	return &Partition{
		Complex:      out,
		AllowedCount: len(allowable),
		allowed:      allowed,
	}
}
