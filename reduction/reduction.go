package reduction

import "github.com/aleph-go/aleph/boundarymatrix"

// Algorithm reduces a boundary matrix in place.
type Algorithm interface {
	Reduce(m boundarymatrix.Representation) error
}

type pivotEntry struct {
	column int
	valid  bool
}

// Standard reduces columns left to right: for column j, repeatedly add
// the column that already owns j's current maximum row index until
// either j's column becomes empty or its maximum row index is not yet
// owned by anyone, at which point j claims it.
type standardAlgorithm struct{}

// Standard is the classical column-reduction algorithm.
var Standard Algorithm = standardAlgorithm{}

// Complexity: O(n³) worst case (n columns, each addition O(n), up to n
// additions per column).
func (standardAlgorithm) Reduce(m boundarymatrix.Representation) error {
	n := m.NumColumns()
	lut := make([]pivotEntry, n)

	for j := 0; j < n; j++ {
		if err := reduceColumn(m, lut, j); err != nil {
			return err
		}
	}
	return nil
}

// Twist reduces columns by descending simplex dimension: within each
// dimension, columns are reduced exactly as Standard would, but once a
// column j claims pivot row i, row i's own column is cleared (it can
// never contribute further — a creator's column, once paired, carries no
// more information the reduction needs), which is the optimization this
// algorithm is named for.
type twistAlgorithm struct{}

// Twist is the dimension-descending, clear-on-claim reduction algorithm.
var Twist Algorithm = twistAlgorithm{}

// Complexity: O(n³) worst case, typically faster in practice than
// Standard because clearing claimed columns shrinks later additions.
func (twistAlgorithm) Reduce(m boundarymatrix.Representation) error {
	n := m.NumColumns()
	lut := make([]pivotEntry, n)

	for d := m.Dimension(); d >= 1; d-- {
		for j := 0; j < n; j++ {
			dim, err := m.ColumnDimension(j)
			if err != nil {
				return err
			}
			if dim != d {
				continue
			}

			i, valid, err := reduceColumnPivot(m, lut, j)
			if err != nil {
				return err
			}
			if valid {
				lut[i] = pivotEntry{column: j, valid: true}
				if err := m.ClearColumn(i); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func reduceColumn(m boundarymatrix.Representation, lut []pivotEntry, j int) error {
	i, valid, err := reduceColumnPivot(m, lut, j)
	if err != nil {
		return err
	}
	if valid {
		lut[i] = pivotEntry{column: j, valid: true}
	}
	return nil
}

// reduceColumnPivot repeatedly adds onto column j the column that already
// owns its current maximum row index, until j either becomes empty or
// reaches a maximum row index no one owns yet; it returns that row index
// and whether one exists.
func reduceColumnPivot(m boundarymatrix.Representation, lut []pivotEntry, j int) (int, bool, error) {
	i, valid, err := m.MaxIndex(j)
	if err != nil {
		return 0, false, err
	}

	for valid && lut[i].valid {
		if err := m.AddColumns(lut[i].column, j); err != nil {
			return 0, false, err
		}
		i, valid, err = m.MaxIndex(j)
		if err != nil {
			return 0, false, err
		}
	}
	return i, valid, nil
}
