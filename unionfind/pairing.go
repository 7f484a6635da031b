package unionfind

import "github.com/aleph-go/aleph/pairing"

// Edge is a 0-dimensional filtration edge: it connects vertex indices U
// and V, and itself sits at filtration index Index.
type Edge struct {
	U, V  int
	Index int
}

// ComputePairing computes the 0-dimensional persistence pairing for
// numVertices vertices (born at indices 0 … numVertices-1) and edges
// added in filtration order, using the elder-rule union-find shortcut
// instead of a full boundary-matrix reduction.
//
// Steps:
//  1. Process edges in filtration order; each edge that merges two
//     distinct components contributes a finite pair (spec §4.10).
//  2. After all edges are consumed, every remaining root contributes an
//     unpaired point (root_birth, +∞).
//
// Complexity: O(n α(n) + m) for n vertices, m edges.
func ComputePairing(numVertices int, edges []Edge) *pairing.Pairing {
	uf := New(numVertices)
	p := pairing.New()

	for _, e := range edges {
		if pair, merged := uf.Merge(e.U, e.V, e.Index); merged {
			p.AddFinite(pair.Birth, pair.Death)
		}
	}
	for _, root := range uf.Roots() {
		p.Add(uf.birth[root])
	}

	p.Sort()
	return p
}
