package perversity_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/aleph-go/aleph/fcomplex"
	"github.com/aleph-go/aleph/perversity"
	"github.com/aleph-go/aleph/simplex"
)

type PerversitySuite struct {
	suite.Suite
}

func TestPerversitySuite(t *testing.T) {
	suite.Run(t, new(PerversitySuite))
}

func (s *PerversitySuite) TestNewClampsOutOfRangeValues() {
	// stratum 1: clamped into {-1, 0} -> -5 clamps to -1.
	// stratum 2: clamped into {p(1), p(1)+1} = {-1, 0} -> -3 clamps to -1.
	// stratum 3: clamped into {p(2), p(2)+1} = {-1, 0} -> 100 clamps to 0.
	p := perversity.New([]int{-5, -3, 100})
	require.Equal(s.T(), -1, p.At(1))
	require.Equal(s.T(), -1, p.At(2))
	require.Equal(s.T(), 0, p.At(3))
}

func (s *PerversitySuite) TestNewAllowsNegativeFirstStratum() {
	// p(1) == -1 is the low end of its valid range {-1, 0}, not clamped
	// away to 0 as an independent per-stratum range would force.
	p := perversity.New([]int{-1})
	require.Equal(s.T(), -1, p.At(1))
}

func (s *PerversitySuite) TestAtClampsOutOfRangeStratum() {
	p := perversity.New([]int{0, 0, 1})
	require.Equal(s.T(), p.At(1), p.At(0))
	require.Equal(s.T(), p.At(3), p.At(10))
}

func (s *PerversitySuite) TestAtOfZeroValuePerversityIsZero() {
	var p perversity.Perversity
	require.Equal(s.T(), 0, p.At(5))
	require.Equal(s.T(), 0, p.MaxDimension())
}

func (s *PerversitySuite) TestAllEnumeratesEveryCombination() {
	all := perversity.All(3)
	// Exactly two choices per stratum (p(1) ∈ {-1,0}; each subsequent
	// p(c) ∈ {p(c-1), p(c-1)+1}), so 2^3 = 8 valid perversities.
	require.Len(s.T(), all, 8)

	seenMin, seenMax := false, false
	for _, p := range all {
		require.Contains(s.T(), []int{-1, 0}, p.At(1))
		require.Contains(s.T(), []int{p.At(1), p.At(1) + 1}, p.At(2))
		require.Contains(s.T(), []int{p.At(2), p.At(2) + 1}, p.At(3))

		if p.At(1) == -1 && p.At(2) == -1 && p.At(3) == -1 {
			seenMin = true
		}
		if p.At(1) == 0 && p.At(2) == 1 && p.At(3) == 2 {
			seenMax = true
		}
	}
	require.True(s.T(), seenMin)
	require.True(s.T(), seenMax)
}

func (s *PerversitySuite) TestAllOfNonPositiveDimensionIsEmpty() {
	require.Nil(s.T(), perversity.All(0))
}

func (s *PerversitySuite) TestAllowabilityPredicateRejectsHighIntersectionDimension() {
	p := perversity.New([]int{0, 0})
	tri := simplex.MustNew([]int{0, 1, 2}, 0) // dimension 2

	// dim(sigma ∩ X_1) = 2 > s - c + p(c) = 2 - 1 + 0 = 1 -> not allowable.
	phi := perversity.AllowabilityPredicate(p, 1, func(simplex.Simplex, int) int { return 2 })
	require.False(s.T(), phi(tri))

	// dim(sigma ∩ X_1) = 0 <= 1 -> allowable.
	phi2 := perversity.AllowabilityPredicate(p, 1, func(simplex.Simplex, int) int { return 0 })
	require.True(s.T(), phi2(tri))
}

func hollowTriangle(s *PerversitySuite) *fcomplex.FilteredComplex {
	c := fcomplex.New()
	_, err := c.AddSimplex([]int{0}, 0)
	require.NoError(s.T(), err)
	_, err = c.AddSimplex([]int{1}, 0)
	require.NoError(s.T(), err)
	_, err = c.AddSimplex([]int{2}, 0)
	require.NoError(s.T(), err)
	_, err = c.AddSimplex([]int{0, 1}, 1)
	require.NoError(s.T(), err)
	_, err = c.AddSimplex([]int{1, 2}, 1)
	require.NoError(s.T(), err)
	_, err = c.AddSimplex([]int{0, 2}, 1)
	require.NoError(s.T(), err)
	return c
}

func (s *PerversitySuite) TestSplitPreservesRelativeOrderWithinGroups() {
	c := hollowTriangle(s)

	// Allowable iff vertex count is 1 (the three 0-simplices).
	phi := func(sim simplex.Simplex) bool { return sim.Dimension() == 0 }

	part := perversity.Split(c, phi)
	require.Equal(s.T(), 3, part.AllowedCount)
	require.Equal(s.T(), 6, part.Complex.Len())

	for i := 0; i < part.AllowedCount; i++ {
		sim, ok := part.Complex.At(i)
		require.True(s.T(), ok)
		require.Equal(s.T(), 0, sim.Dimension())
	}
	for i := part.AllowedCount; i < part.Complex.Len(); i++ {
		sim, ok := part.Complex.At(i)
		require.True(s.T(), ok)
		require.Equal(s.T(), 1, sim.Dimension())
	}

	// Each group keeps the order it had in c.
	want := [][]int{{0}, {1}, {2}, {0, 1}, {1, 2}, {0, 2}}
	for i, vs := range want {
		sim, ok := part.Complex.At(i)
		require.True(s.T(), ok)
		require.Equal(s.T(), vs, sim.Vertices())
	}
}

func (s *PerversitySuite) TestIsOriginallyAllowed() {
	c := hollowTriangle(s)
	phi := func(sim simplex.Simplex) bool { return sim.Dimension() == 0 }

	part := perversity.Split(c, phi)
	require.True(s.T(), part.IsOriginallyAllowed(0))
	require.False(s.T(), part.IsOriginallyAllowed(3))
}
