package pairing_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/aleph-go/aleph/boundarymatrix"
	"github.com/aleph-go/aleph/convert"
	"github.com/aleph-go/aleph/fcomplex"
	"github.com/aleph-go/aleph/pairing"
	"github.com/aleph-go/aleph/reduction"
	"github.com/aleph-go/aleph/simplex"
)

type PairingSuite struct {
	suite.Suite
}

func TestPairingSuite(t *testing.T) {
	suite.Run(t, new(PairingSuite))
}

func reducedFilledTriangle(t require.TestingT) boundarymatrix.Representation {
	c := fcomplex.New()
	_, err := c.AddSimplex([]int{0, 1, 2}, 2)
	require.NoError(t, err)
	require.NoError(t, c.Close(fcomplex.MaxCombiner))
	require.NoError(t, c.Sort(simplex.Ascending))

	m, err := convert.FromComplex(c)
	require.NoError(t, err)
	require.NoError(t, reduction.Standard.Reduce(m))
	return m
}

func (s *PairingSuite) TestExtractDefaultKeepsLowerDimensionCreator() {
	m := reducedFilledTriangle(s.T())
	p, err := pairing.Extract(m)
	require.NoError(s.T(), err)

	// 3 vertices, 2 edges paired with 2 vertices, 1 edge paired with the
	// face; the one remaining vertex (index 0, the global minimum) is the
	// sole surviving infinite creator — but it's dimension 0, the
	// complex's own top dimension is 2, so it's NOT suppressed.
	var infinite int
	for _, pair := range p.Pairs() {
		if pair.Infinite {
			infinite++
		}
	}
	require.Equal(s.T(), 1, infinite)
}

func (s *PairingSuite) TestExtractWithIncludeAllUnpairedKeepsEverything() {
	m := reducedFilledTriangle(s.T())
	p, err := pairing.Extract(m, pairing.WithIncludeAllUnpaired(true))
	require.NoError(s.T(), err)

	pDefault, err := pairing.Extract(m)
	require.NoError(s.T(), err)

	require.GreaterOrEqual(s.T(), p.Len(), pDefault.Len())
}

func (s *PairingSuite) TestExtractDualizedRemapsIndices() {
	c := fcomplex.New()
	_, err := c.AddSimplex([]int{0, 1, 2}, 2)
	require.NoError(s.T(), err)
	require.NoError(s.T(), c.Close(fcomplex.MaxCombiner))
	require.NoError(s.T(), c.Sort(simplex.Ascending))

	m, err := convert.FromComplex(c)
	require.NoError(s.T(), err)

	dual, err := m.Dualize()
	require.NoError(s.T(), err)
	require.NoError(s.T(), reduction.Standard.Reduce(dual))

	p, err := pairing.Extract(dual)
	require.NoError(s.T(), err)
	require.True(s.T(), p.Len() > 0)

	for _, pair := range p.Pairs() {
		require.GreaterOrEqual(s.T(), pair.Birth, 0)
		require.Less(s.T(), pair.Birth, m.NumColumns())
	}
}

func (s *PairingSuite) TestPairingSortOrdersByBirthThenDeath() {
	p := pairing.New()
	p.AddFinite(2, 5)
	p.Add(0)
	p.AddFinite(1, 3)
	p.Sort()

	got := p.Pairs()
	require.Equal(s.T(), 0, got[0].Birth)
	require.Equal(s.T(), 1, got[1].Birth)
	require.Equal(s.T(), 2, got[2].Birth)
}

func (s *PairingSuite) TestContainsAndFind() {
	p := pairing.New()
	p.AddFinite(1, 4)
	require.True(s.T(), p.Contains(1))
	require.True(s.T(), p.ContainsPair(1, 4))
	require.False(s.T(), p.ContainsPair(1, 5))

	pair, ok := p.Find(1)
	require.True(s.T(), ok)
	require.Equal(s.T(), 4, pair.Death)
}
