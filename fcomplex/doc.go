// Package fcomplex implements the filtered simplicial complex: a
// container that owns a collection of simplex.Simplex values and
// maintains two coupled views over them —
//
//   - an order view, a slice preserving insertion order (after any
//     explicit Sort), whose positions are filtration indices;
//   - a lookup view, a map from a simplex's canonical vertex key to its
//     filtration index, kept in sync with the order view.
//
// A complex is grown by Push/AddSimplex during construction, optionally
// Closed (face closure is not automatic), Sorted into filtration order,
// and from then on treated as read-only by downstream packages
// (convert, reduction, pairing, diagram). Per spec §5 the whole pipeline
// is single-threaded and synchronous — FilteredComplex carries no
// locking of its own; callers owning a complex across goroutines must
// synchronize externally.
package fcomplex
