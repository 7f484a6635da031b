package boundarymatrix

// IndexList is the sorted-slice Representation: each column is a strictly
// increasing []int, and AddColumns computes a symmetric difference via a
// linear sorted-merge — the Go analogue of std::set_symmetric_difference
// over std::vector<Index>.
type IndexList struct {
	data       [][]int
	dimensions []int
	dualized   bool
}

var _ Representation = (*IndexList)(nil)

// NewIndexList returns an IndexList allocated for n empty columns.
func NewIndexList(n int) (*IndexList, error) {
	m := &IndexList{}
	if err := m.SetNumColumns(n); err != nil {
		return nil, err
	}
	return m, nil
}

// Complexity: O(n).
func (m *IndexList) SetNumColumns(n int) error {
	if n < 0 {
		return ErrNegativeNumColumns
	}
	m.data = make([][]int, n)
	m.dimensions = make([]int, n)
	return nil
}

func (m *IndexList) NumColumns() int {
	return len(m.data)
}

func (m *IndexList) checkColumn(column int) error {
	if column < 0 || column >= len(m.data) {
		return ErrColumnOutOfRange
	}
	return nil
}

// Complexity: O(k) to validate sortedness plus O(k) to copy.
func (m *IndexList) SetColumn(column int, indices []int) error {
	if err := m.checkColumn(column); err != nil {
		return err
	}
	for i := 1; i < len(indices); i++ {
		if indices[i-1] >= indices[i] {
			return ErrUnsortedColumn
		}
	}

	cp := make([]int, len(indices))
	copy(cp, indices)
	m.data[column] = cp

	if len(indices) == 0 {
		m.dimensions[column] = 0
	} else {
		m.dimensions[column] = len(indices) - 1
	}
	return nil
}

func (m *IndexList) Column(column int) ([]int, error) {
	if err := m.checkColumn(column); err != nil {
		return nil, err
	}
	cp := make([]int, len(m.data[column]))
	copy(cp, m.data[column])
	return cp, nil
}

func (m *IndexList) MaxIndex(column int) (int, bool, error) {
	if err := m.checkColumn(column); err != nil {
		return 0, false, err
	}
	col := m.data[column]
	if len(col) == 0 {
		return 0, false, nil
	}
	return col[len(col)-1], true, nil
}

// AddColumns replaces column[target] with the symmetric difference of
// column[source] and column[target] (both already sorted), leaving source
// untouched.
// Complexity: O(|source|+|target|).
func (m *IndexList) AddColumns(source, target int) error {
	if err := m.checkColumn(source); err != nil {
		return err
	}
	if err := m.checkColumn(target); err != nil {
		return err
	}

	s, t := m.data[source], m.data[target]
	result := make([]int, 0, len(s)+len(t))

	i, j := 0, 0
	for i < len(s) && j < len(t) {
		switch {
		case s[i] < t[j]:
			result = append(result, s[i])
			i++
		case s[i] > t[j]:
			result = append(result, t[j])
			j++
		default:
			// equal: cancel both (GF(2) addition)
			i++
			j++
		}
	}
	result = append(result, s[i:]...)
	result = append(result, t[j:]...)

	m.data[target] = result
	return nil
}

func (m *IndexList) ClearColumn(column int) error {
	if err := m.checkColumn(column); err != nil {
		return err
	}
	m.data[column] = nil
	return nil
}

func (m *IndexList) ColumnDimension(column int) (int, error) {
	if err := m.checkColumn(column); err != nil {
		return 0, err
	}
	return m.dimensions[column], nil
}

func (m *IndexList) SetColumnDimension(column int, dimension int) error {
	if err := m.checkColumn(column); err != nil {
		return err
	}
	m.dimensions[column] = dimension
	return nil
}

func (m *IndexList) Dimension() int {
	d := 0
	for _, v := range m.dimensions {
		if v > d {
			d = v
		}
	}
	return d
}

func (m *IndexList) IsDualized() bool {
	return m.dualized
}

// Dualize returns the cohomological transpose of m (spec §4.3): see
// dualizeColumns for the shared algorithm.
// Complexity: O(n·k) plus O(n log n) for sorting.
func (m *IndexList) Dualize() (Representation, error) {
	n := len(m.data)
	columns, dimensions, err := dualizeColumns(m)
	if err != nil {
		return nil, err
	}

	out, err := NewIndexList(n)
	if err != nil {
		return nil, err
	}
	out.data = columns
	out.dimensions = dimensions
	out.dualized = !m.dualized

	return out, nil
}
