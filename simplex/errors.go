package simplex

import "errors"

// Sentinel errors for simplex construction. Callers MUST use errors.Is
// to branch on these; messages are never wrapped at the definition site.
var (
	// ErrInvalidVertexOrder indicates the supplied vertex list is not
	// strictly increasing (the canonical form required by spec §3).
	ErrInvalidVertexOrder = errors.New("simplex: vertex list is not strictly increasing")

	// ErrNegativeVertex indicates a vertex identifier was negative.
	ErrNegativeVertex = errors.New("simplex: vertex identifier must be non-negative")

	// ErrEmptySimplex indicates an attempt to construct the empty
	// simplex outside of its role as a transient boundary sentinel.
	ErrEmptySimplex = errors.New("simplex: empty vertex list")
)
