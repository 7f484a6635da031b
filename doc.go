// Package aleph computes persistent homology (and, dually, persistent
// intersection homology under a chosen perversity) of a filtered
// simplicial complex.
//
// The pipeline is
//
//	simplex stream → FilteredComplex → BoundaryMatrix → reduction → Pairing → Diagram
//
// implemented by the subpackages:
//
//	simplex/        — Simplex type, boundary iteration, filtration ordering
//	fcomplex/       — FilteredSimplicialComplex: close/sort/skeleton/subdivide/cliques
//	boundarymatrix/ — BoundaryMatrix representations (IndexList, IndexedHeap)
//	convert/        — FilteredComplex → BoundaryMatrix
//	reduction/      — Standard and Twist column-reduction algorithms
//	pairing/        — Persistence pairing extraction
//	diagram/        — Diagram model, Kahan-summed norms, text/JSON serialization
//	perversity/     — Perversity, allowability, intersection-homology partition
//	unionfind/      — elder-rule disjoint set, a 0-dimensional persistence shortcut
//
// This top-level package wires the pipeline together into the
// high-level Calculate* entry points; single-threaded, synchronous, and
// fully deterministic — no background goroutines, no environment
// variables, no persisted state.
//
//	go get github.com/aleph-go/aleph
package aleph
