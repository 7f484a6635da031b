package fcomplex

import "errors"

// Sentinel errors for the fcomplex package. Callers MUST use errors.Is;
// sentinels are never wrapped at the definition site.
var (
	// ErrDuplicateVertex is returned by AddSimplex when the underlying
	// vertex list contains a repeated identifier.
	ErrDuplicateVertex = errors.New("fcomplex: duplicate vertex in simplex")

	// ErrInvalidVertexOrder is returned by AddSimplex when the
	// underlying vertex list is not strictly increasing.
	ErrInvalidVertexOrder = errors.New("fcomplex: invalid vertex order")

	// ErrUnknownFaceDuringClose indicates Close encountered a missing
	// face with no identifiable coface to derive a weight from — a
	// degenerate/pathological input, since every missing face is by
	// construction a face of some known simplex.
	ErrUnknownFaceDuringClose = errors.New("fcomplex: unknown face during close")

	// ErrCyclicFiltrationOrder indicates Sort could not establish a
	// filtration order in which every face precedes every coface, even
	// after the automatic dimension-ascending tie-breaker (spec §4.2,
	// §9) was applied.
	ErrCyclicFiltrationOrder = errors.New("fcomplex: cyclic filtration order")

	// ErrNilCombiner indicates Close was called with a nil combinator.
	ErrNilCombiner = errors.New("fcomplex: face weight combiner is nil")

	// ErrNilComparator indicates Sort was called with a nil comparator.
	ErrNilComparator = errors.New("fcomplex: comparator is nil")
)
