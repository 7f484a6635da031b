package reduction_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/aleph-go/aleph/boundarymatrix"
	"github.com/aleph-go/aleph/convert"
	"github.com/aleph-go/aleph/fcomplex"
	"github.com/aleph-go/aleph/reduction"
	"github.com/aleph-go/aleph/simplex"
)

type ReductionSuite struct {
	suite.Suite
}

func TestReductionSuite(t *testing.T) {
	suite.Run(t, new(ReductionSuite))
}

func filledTriangleMatrix(t require.TestingT) boundarymatrix.Representation {
	c := fcomplex.New()
	_, err := c.AddSimplex([]int{0, 1, 2}, 2)
	require.NoError(t, err)
	require.NoError(t, c.Close(fcomplex.MaxCombiner))
	require.NoError(t, c.Sort(simplex.Ascending))

	m, err := convert.FromComplex(c)
	require.NoError(t, err)
	return m
}

// pivots returns, for each column, its pivot row (or -1 if the
// column reduced to empty).
func pivots(t require.TestingT, m boundarymatrix.Representation) []int {
	out := make([]int, m.NumColumns())
	for j := range out {
		i, valid, err := m.MaxIndex(j)
		require.NoError(t, err)
		if valid {
			out[j] = i
		} else {
			out[j] = -1
		}
	}
	return out
}

func (s *ReductionSuite) TestStandardReducesFilledTriangle() {
	m := filledTriangleMatrix(s.T())
	require.NoError(s.T(), reduction.Standard.Reduce(m))

	ps := pivots(s.T(), m)
	// 7 columns: 3 vertices (columns 0-2, no boundary, stay empty => -1),
	// 3 edges (columns 3-5), 1 face (column 6). The third edge reduces to
	// empty (it closes the 1-cycle) and is then paired by the face.
	nonEmpty := 0
	for _, p := range ps {
		if p != -1 {
			nonEmpty++
		}
	}
	require.Equal(s.T(), 3, nonEmpty) // 2 edges pivot on 2 vertices; the face pivots on the third edge
}

func (s *ReductionSuite) TestStandardAndTwistAgreeOnPivotSet() {
	mStandard := filledTriangleMatrix(s.T())
	mTwist := filledTriangleMatrix(s.T())

	require.NoError(s.T(), reduction.Standard.Reduce(mStandard))
	require.NoError(s.T(), reduction.Twist.Reduce(mTwist))

	psStandard := pivots(s.T(), mStandard)
	psTwist := pivots(s.T(), mTwist)

	pairSet := func(ps []int) map[[2]int]struct{} {
		out := make(map[[2]int]struct{})
		for j, i := range ps {
			if i != -1 {
				out[[2]int{i, j}] = struct{}{}
			}
		}
		return out
	}

	require.Equal(s.T(), pairSet(psStandard), pairSet(psTwist))
}

func (s *ReductionSuite) TestReducingIdempotentOnAlreadyReduced() {
	m := filledTriangleMatrix(s.T())
	require.NoError(s.T(), reduction.Standard.Reduce(m))
	before := pivots(s.T(), m)

	require.NoError(s.T(), reduction.Standard.Reduce(m))
	after := pivots(s.T(), m)

	require.Equal(s.T(), before, after)
}
