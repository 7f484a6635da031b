// Package unionfind implements an elder-rule disjoint-set structure: a
// fast 0-dimensional persistence shortcut used when only connected
// components (not the full boundary-matrix reduction) are needed.
//
// This is deliberately not a union-by-rank disjoint set such as
// Kruskal's MST algorithm uses: the elder rule needs to know which of two
// roots is older, information union-by-rank does not track, and the two
// algorithms serve different purposes (MST construction vs. persistence
// pairing).
package unionfind
