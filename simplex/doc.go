// Package simplex defines the Simplex value type: an ordered, strictly
// increasing tuple of vertex identifiers carrying a scalar filtration
// weight, plus its boundary (the codimension-1 faces obtained by
// deleting one vertex at a time).
//
// A Simplex is immutable once constructed. Equality and map-key hashing
// ignore the weight; only the vertex list participates. Ordering (used
// by fcomplex when sorting a complex into filtration order) sorts
// primarily by weight, breaks ties by dimension (faces first), and falls
// back to a lexicographic vertex-list comparison within a dimension so
// that ties are broken deterministically.
package simplex
