package boundarymatrix

import "sort"

// Representation is the storage-agnostic view of a boundary matrix that
// the reduction package operates against. Column and row indices both
// range over filtration indices [0, NumColumns()).
type Representation interface {
	// SetNumColumns (re)allocates the matrix to hold n empty columns,
	// discarding any previous content.
	SetNumColumns(n int) error

	// NumColumns returns the current column count.
	NumColumns() int

	// SetColumn replaces column's contents with indices, which MUST
	// already be sorted strictly increasing (the canonical boundary
	// encoding). The column's dimension is inferred as len(indices)-1,
	// except that an empty column (a 0-simplex's boundary) is dimension 0.
	SetColumn(column int, indices []int) error

	// Column returns a snapshot of column's current contents. For
	// IndexedHeap this is the raw heap order, not sorted ascending;
	// callers that need a canonical reading should not rely on order.
	Column(column int) ([]int, error)

	// MaxIndex returns the largest index currently present in column and
	// true, or (0, false) if column is empty (including "was non-empty
	// but every entry cancelled out").
	MaxIndex(column int) (int, bool, error)

	// AddColumns performs column[target] ^= column[source] (GF(2)
	// addition: symmetric difference), leaving source untouched.
	AddColumns(source, target int) error

	// ClearColumn empties column in place, without affecting its
	// recorded dimension.
	ClearColumn(column int) error

	// ColumnDimension returns the dimension recorded for column.
	ColumnDimension(column int) (int, error)

	// SetColumnDimension overrides the dimension recorded for column;
	// used when a column is synthesized rather than populated via
	// SetColumn (e.g. by convert for an empty boundary).
	SetColumnDimension(column int, dimension int) error

	// Dimension returns the maximum column dimension across the whole
	// matrix, or 0 if NumColumns() == 0.
	Dimension() int

	// IsDualized reports whether this matrix was produced by Dualize.
	IsDualized() bool

	// Dualize returns the cohomological transpose of this matrix (spec
	// §4.3): new column j collects every row i < NumColumns() with
	// (NumColumns()-1-j) present in column i, each such i remapped to
	// (NumColumns()-1-i); column j's dimension becomes
	// Dimension()-ColumnDimension(NumColumns()-1-j). Calling Dualize
	// twice returns a matrix equal to the original (IsDualized toggles
	// back to false).
	Dualize() (Representation, error)
}

// dualizeColumns computes the cohomological transpose of m per spec
// §4.3, returning per-column sorted row indices and dimensions for the
// dualized matrix. Shared by every Representation's Dualize method so
// the transpose logic is implemented exactly once.
//
// Steps:
//  1. For every column i, record that each of its entries r is
//     "contained in" column i.
//  2. For every new column j, look up row r = n-1-j: its containing
//     columns i each become an entry n-1-i of column j.
//  3. Column j's dimension is topDim - ColumnDimension(n-1-j).
//
// Complexity: O(n·k) for k average column fill, plus O(n log n) for the
// per-column sorts.
func dualizeColumns(m Representation) (columns [][]int, dimensions []int, err error) {
	n := m.NumColumns()
	topDim := m.Dimension()

	containedIn := make([][]int, n)
	for i := 0; i < n; i++ {
		col, cerr := m.Column(i)
		if cerr != nil {
			return nil, nil, cerr
		}
		for _, r := range canonicalColumn(col) {
			containedIn[r] = append(containedIn[r], i)
		}
	}

	columns = make([][]int, n)
	dimensions = make([]int, n)
	for j := 0; j < n; j++ {
		r := n - 1 - j
		entries := make([]int, 0, len(containedIn[r]))
		for _, i := range containedIn[r] {
			entries = append(entries, n-1-i)
		}
		sort.Ints(entries)
		columns[j] = entries

		d, derr := m.ColumnDimension(r)
		if derr != nil {
			return nil, nil, derr
		}
		dimensions[j] = topDim - d
	}

	return columns, dimensions, nil
}

// canonicalColumn reduces raw (possibly not-yet-cancelled, as IndexedHeap
// yields) column contents to the true GF(2) set: an index present an odd
// number of times survives once, an even number of times cancels out.
// A no-op for representations (like IndexList) whose Column is already
// canonical.
func canonicalColumn(raw []int) []int {
	s := append([]int(nil), raw...)
	sort.Ints(s)

	out := make([]int, 0, len(s))
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] == s[i] {
			j++
		}
		if (j-i)%2 == 1 {
			out = append(out, s[i])
		}
		i = j
	}
	return out
}
