package perversity

// Perversity is a Goresky–MacPherson perversity: a function p(c) defined
// for strata c = 1 … D satisfying p(1) ∈ {-1, 0} and
// p(c+1) ∈ {p(c), p(c)+1} (spec §3). Values are stored 1-indexed
// (values[c-1] holds p(c)).
type Perversity struct {
	values []int
}

// New builds a Perversity from raw per-stratum values, clamping each one
// to re-establish the recursive invariant (spec's OutOfRangePerversity
// policy is "clamp and continue", never fail-fast): p(1) is clamped into
// {-1, 0}, and every subsequent p(c) is clamped into {p(c-1), p(c-1)+1}
// against the already-clamped previous value — not into an independent
// per-stratum range, since the invariant is path-dependent.
//
// Complexity: O(len(values)).
func New(values []int) Perversity {
	clamped := make([]int, len(values))
	for i, v := range values {
		if i == 0 {
			clamped[i] = clampRange(v, -1, 0)
			continue
		}
		prev := clamped[i-1]
		clamped[i] = clampRange(v, prev, prev+1)
	}
	return Perversity{values: clamped}
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MaxDimension returns D, the number of strata this perversity is
// defined over.
func (p Perversity) MaxDimension() int {
	return len(p.values)
}

// At returns p(c). Strata outside [1, MaxDimension()] are clamped to the
// nearest boundary stratum rather than treated as an error, matching the
// construction-time clamping policy.
func (p Perversity) At(c int) int {
	if len(p.values) == 0 {
		return 0
	}
	if c < 1 {
		c = 1
	}
	if c > len(p.values) {
		c = len(p.values)
	}
	return p.values[c-1]
}

// All enumerates every valid perversity defined over strata 1 … maxDimension
// by walking the recursive invariant directly: p(1) ranges over {-1, 0},
// and every subsequent p(c) ranges over {p(c-1), p(c-1)+1} — exactly two
// choices per stratum, so p(c) ranges over the achievable [-1, c-1]
// without ever being an independent per-stratum bound. Grounded on
// `original_source/src/tools/wicked_triangulations.cc`'s
// `getPerversities`, which builds the same per-stratum value sets
// (`-1 ≤ p_k ≤ k-1`) before taking their cross product; walking the
// recursion directly here skips constructing and filtering the
// non-achievable combinations that cross product would include. Callers
// sweep entire families of perversities programmatically (spec §4.8/§9)
// rather than the perversity being a type-level parameter.
//
// Complexity: O(2^maxDimension) — exponential in maxDimension, intended
// for small D as used by test/tooling sweeps.
func All(maxDimension int) []Perversity {
	if maxDimension <= 0 {
		return nil
	}

	var out []Perversity
	values := make([]int, maxDimension)
	var recurse func(c, prev int)
	recurse = func(c, prev int) {
		if c > maxDimension {
			cp := make([]int, maxDimension)
			copy(cp, values)
			out = append(out, Perversity{values: cp})
			return
		}
		if c == 1 {
			for _, v := range [2]int{-1, 0} {
				values[0] = v
				recurse(2, v)
			}
			return
		}
		for _, v := range [2]int{prev, prev + 1} {
			values[c-1] = v
			recurse(c+1, v)
		}
	}
	recurse(1, 0)
	return out
}
