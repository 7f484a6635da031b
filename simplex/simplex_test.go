package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/aleph-go/aleph/simplex"
)

type SimplexSuite struct {
	suite.Suite
}

func TestSimplexSuite(t *testing.T) {
	suite.Run(t, new(SimplexSuite))
}

func (s *SimplexSuite) TestNewRejectsEmpty() {
	_, err := simplex.New(nil, 0)
	require.ErrorIs(s.T(), err, simplex.ErrEmptySimplex)
}

func (s *SimplexSuite) TestNewRejectsNegative() {
	_, err := simplex.New([]int{-1, 2}, 0)
	require.ErrorIs(s.T(), err, simplex.ErrNegativeVertex)
}

func (s *SimplexSuite) TestNewRejectsOutOfOrder() {
	_, err := simplex.New([]int{2, 1}, 0)
	require.ErrorIs(s.T(), err, simplex.ErrInvalidVertexOrder)

	_, err = simplex.New([]int{1, 1}, 0)
	require.ErrorIs(s.T(), err, simplex.ErrInvalidVertexOrder)
}

func (s *SimplexSuite) TestDimension() {
	v := simplex.MustNew([]int{0}, 0)
	require.Equal(s.T(), 0, v.Dimension())

	e := simplex.MustNew([]int{0, 1}, 1)
	require.Equal(s.T(), 1, e.Dimension())

	f := simplex.MustNew([]int{0, 1, 2}, 2)
	require.Equal(s.T(), 2, f.Dimension())
}

func (s *SimplexSuite) TestBoundaryOfVertexIsEmpty() {
	v := simplex.MustNew([]int{0}, 0)
	require.Empty(s.T(), v.Boundary())
}

func (s *SimplexSuite) TestBoundaryOfEdge() {
	e := simplex.MustNew([]int{0, 1}, 1)
	faces := e.Boundary()
	require.Len(s.T(), faces, 2)
	require.Equal(s.T(), []int{1}, faces[0].Vertices())
	require.Equal(s.T(), []int{0}, faces[1].Vertices())
}

func (s *SimplexSuite) TestBoundaryOfTriangleDeleteIndexOrder() {
	f := simplex.MustNew([]int{0, 1, 2}, 2)
	faces := f.Boundary()
	require.Len(s.T(), faces, 3)
	require.Equal(s.T(), []int{1, 2}, faces[0].Vertices())
	require.Equal(s.T(), []int{0, 2}, faces[1].Vertices())
	require.Equal(s.T(), []int{0, 1}, faces[2].Vertices())
}

func (s *SimplexSuite) TestEqualityIgnoresWeight() {
	a := simplex.MustNew([]int{0, 1}, 5)
	b := simplex.MustNew([]int{0, 1}, 99)
	require.True(s.T(), a.Equal(b))
	require.Equal(s.T(), a.Key(), b.Key())
}

func (s *SimplexSuite) TestContains() {
	f := simplex.MustNew([]int{0, 1, 2}, 0)
	require.True(s.T(), f.Contains(1))
	require.False(s.T(), f.Contains(3))
}

func (s *SimplexSuite) TestAscendingComparator() {
	a := simplex.MustNew([]int{0}, 0)
	b := simplex.MustNew([]int{1}, 1)
	require.True(s.T(), simplex.Ascending(a, b))
	require.False(s.T(), simplex.Ascending(b, a))
}

func (s *SimplexSuite) TestAscendingTieBreakIsLexicographic() {
	a := simplex.MustNew([]int{0, 2}, 1)
	b := simplex.MustNew([]int{0, 3}, 1)
	require.True(s.T(), simplex.Ascending(a, b))
	require.False(s.T(), simplex.Ascending(b, a))
}

func (s *SimplexSuite) TestDescendingComparator() {
	a := simplex.MustNew([]int{0}, 0)
	b := simplex.MustNew([]int{1}, 1)
	require.True(s.T(), simplex.Descending(b, a))
}
