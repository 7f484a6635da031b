package fcomplex

import "sort"

// EdgeWeightFunc derives the weight of a clique_graph edge from the
// weights of the two k-simplices it connects.
type EdgeWeightFunc func(ws, wt float64) float64

// MaxEdgeWeight is the default EdgeWeightFunc (spec §4.2: "defaults to
// max").
func MaxEdgeWeight(ws, wt float64) float64 {
	if ws > wt {
		return ws
	}
	return wt
}

// CliqueGraph builds the one-skeleton complex whose vertices are the
// k-simplices of c (renumbered 0…m-1 in their filtration order) and
// whose edges connect two such simplices that share a (k-1)-face (i.e.
// their vertex sets intersect in exactly k of their k+1 vertices). Each
// new vertex inherits the weight of the k-simplex it represents; each
// edge's weight is f(w_s, w_t) (nil f defaults to MaxEdgeWeight).
//
// Complexity: O(m²·k) where m is the number of k-simplices.
func (c *FilteredComplex) CliqueGraph(k int, f EdgeWeightFunc) (*FilteredComplex, error) {
	if f == nil {
		f = MaxEdgeWeight
	}

	var kSimplices []simplexWithVerts
	for i := 0; i < c.Len(); i++ {
		s, _ := c.At(i)
		if s.Dimension() == k {
			kSimplices = append(kSimplices, simplexWithVerts{weight: s.Weight(), vertices: s.Vertices()})
		}
	}

	out := New()
	for i, s := range kSimplices {
		if _, err := out.AddSimplex([]int{i}, s.weight); err != nil {
			return nil, err
		}
	}

	for i := 0; i < len(kSimplices); i++ {
		for j := i + 1; j < len(kSimplices); j++ {
			if sharesCodim1Face(kSimplices[i].vertices, kSimplices[j].vertices, k) {
				w := f(kSimplices[i].weight, kSimplices[j].weight)
				if _, err := out.AddSimplex([]int{i, j}, w); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

type simplexWithVerts struct {
	weight   float64
	vertices []int
}

// sharesCodim1Face reports whether two k-simplices' vertex sets overlap
// in exactly k vertices — equivalently, whether they share a common
// codimension-1 face.
func sharesCodim1Face(a, b []int, k int) bool {
	shared := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			shared++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return shared == k
}

// MaximalCliques enumerates every inclusion-maximal clique of the
// 1-skeleton of c (vertices = c.Vertices(), edges = the dimension-1
// simplices) using the Bron–Kerbosch algorithm with Koch's pivot
// modification (choosing, at each branch, the candidate with the most
// neighbours already in the candidate set to minimise recursive calls).
// Enumeration is deterministic given c's vertex order: ties and
// iteration order are always broken by ascending vertex id.
//
// Complexity: O(3^(V/3)) worst case (Bron–Kerbosch's classical bound);
// adjacency queries are O(1) against a precomputed neighbour-set map.
func (c *FilteredComplex) MaximalCliques() [][]int {
	adjacency := make(map[int]map[int]struct{})
	vertices := c.Vertices()
	for _, v := range vertices {
		adjacency[v] = make(map[int]struct{})
	}

	for i := 0; i < c.Len(); i++ {
		s, _ := c.At(i)
		if s.Dimension() != 1 {
			continue
		}
		vs := s.Vertices()
		u, v := vs[0], vs[1]
		adjacency[u][v] = struct{}{}
		adjacency[v][u] = struct{}{}
	}

	var cliques [][]int
	bronKerboschPivot(nil, vertices, nil, adjacency, &cliques)

	sort.Slice(cliques, func(i, j int) bool { return lessIntSlice(cliques[i], cliques[j]) })
	return cliques
}

func lessIntSlice(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func bronKerboschPivot(r, p, x []int, adj map[int]map[int]struct{}, out *[][]int) {
	if len(p) == 0 && len(x) == 0 {
		clique := make([]int, len(r))
		copy(clique, r)
		sort.Ints(clique)
		*out = append(*out, clique)
		return
	}

	pivot := choosePivot(p, x, adj)
	candidates := setMinusNeighbours(p, adj[pivot])

	pSet := toSet(p)
	xSet := toSet(x)

	for _, v := range candidates {
		neighbours := adj[v]

		newR := append(append([]int{}, r...), v)
		newP := intersectWithNeighbours(pSet, neighbours)
		newX := intersectWithNeighbours(xSet, neighbours)

		bronKerboschPivot(newR, newP, newX, adj, out)

		delete(pSet, v)
		xSet[v] = struct{}{}
	}
}

func choosePivot(p, x []int, adj map[int]map[int]struct{}) int {
	best := -1
	bestCount := -1
	for _, cand := range append(append([]int{}, p...), x...) {
		count := 0
		for _, v := range p {
			if _, ok := adj[cand][v]; ok {
				count++
			}
		}
		if count > bestCount || (count == bestCount && cand < best) {
			best = cand
			bestCount = count
		}
	}
	return best
}

func setMinusNeighbours(p []int, neighbours map[int]struct{}) []int {
	out := make([]int, 0, len(p))
	for _, v := range p {
		if _, ok := neighbours[v]; !ok {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

func toSet(vs []int) map[int]struct{} {
	m := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		m[v] = struct{}{}
	}
	return m
}

func intersectWithNeighbours(set map[int]struct{}, neighbours map[int]struct{}) []int {
	out := make([]int, 0)
	for v := range set {
		if _, ok := neighbours[v]; ok {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
