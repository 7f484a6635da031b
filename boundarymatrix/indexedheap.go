package boundarymatrix

import "container/heap"

// IndexedHeap is the heap-backed Representation: each column is a binary
// max-heap over []int (container/heap adapted to a max ordering).
// AddColumns appends the source column's entries and re-establishes heap
// order in O(k log k); MaxIndex lazily pops cancelling duplicate pairs off
// the top rather than eagerly normalising after every AddColumns, trading
// slower MaxIndex calls for cheaper AddColumns calls — the same trade-off
// as the reference heap representation.
type IndexedHeap struct {
	data       [][]int
	dimensions []int
	dualized   bool
}

var _ Representation = (*IndexedHeap)(nil)

// columnHeap adapts a *[]int to container/heap.Interface as a max-heap.
type columnHeap struct {
	s *[]int
}

func (h columnHeap) Len() int            { return len(*h.s) }
func (h columnHeap) Less(i, j int) bool  { return (*h.s)[i] > (*h.s)[j] }
func (h columnHeap) Swap(i, j int)       { (*h.s)[i], (*h.s)[j] = (*h.s)[j], (*h.s)[i] }
func (h columnHeap) Push(x interface{})  { *h.s = append(*h.s, x.(int)) }
func (h columnHeap) Pop() interface{} {
	old := *h.s
	n := len(old)
	v := old[n-1]
	*h.s = old[:n-1]
	return v
}

// NewIndexedHeap returns an IndexedHeap allocated for n empty columns.
func NewIndexedHeap(n int) (*IndexedHeap, error) {
	m := &IndexedHeap{}
	if err := m.SetNumColumns(n); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *IndexedHeap) SetNumColumns(n int) error {
	if n < 0 {
		return ErrNegativeNumColumns
	}
	m.data = make([][]int, n)
	m.dimensions = make([]int, n)
	return nil
}

func (m *IndexedHeap) NumColumns() int {
	return len(m.data)
}

func (m *IndexedHeap) checkColumn(column int) error {
	if column < 0 || column >= len(m.data) {
		return ErrColumnOutOfRange
	}
	return nil
}

// SetColumn accepts indices in any strictly increasing order (the
// canonical boundary encoding, same contract as IndexList) and heapifies
// them.
// Complexity: O(k).
func (m *IndexedHeap) SetColumn(column int, indices []int) error {
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
	heap.Init(columnHeap{&cp})
	m.data[column] = cp

	if len(indices) == 0 {
		m.dimensions[column] = 0
	} else {
		m.dimensions[column] = len(indices) - 1
	}
	return nil
}

// Column returns the column's raw heap-ordered contents, duplicates
// included: an index present an even number of times has cancelled
// under GF(2) addition but is still listed. MaxIndex restores the
// maximum it reports, so repeated calls return the same index rather
// than walking the column.
func (m *IndexedHeap) Column(column int) ([]int, error) {
	if err := m.checkColumn(column); err != nil {
		return nil, err
	}
	cp := make([]int, len(m.data[column]))
	copy(cp, m.data[column])
	return cp, nil
}

// MaxIndex pops the heap's root, then keeps popping cancelling duplicate
// pairs (two equal top values annihilate under GF(2) addition) until the
// true maximum surviving index is found, or the column is exhausted.
// Complexity: amortized O(log k) per call, O(k log k) over k calls.
func (m *IndexedHeap) MaxIndex(column int) (int, bool, error) {
	if err := m.checkColumn(column); err != nil {
		return 0, false, err
	}

	col := m.data[column]
	h := columnHeap{&col}
	defer func() { m.data[column] = col }()

	for len(col) > 0 {
		top := heap.Pop(h).(int)
		if len(col) > 0 && col[0] == top {
			// Two copies of the current maximum cancel under GF(2)
			// addition: discard the duplicate too and keep scanning.
			heap.Pop(h)
			continue
		}
		// A genuine singleton maximum: restore it and report it.
		heap.Push(h, top)
		return top, true, nil
	}
	return 0, false, nil
}

// AddColumns appends source's entries into target and re-establishes heap
// order; it does not eagerly cancel duplicates (MaxIndex does that
// lazily).
// Complexity: O((|source|+|target|) log(|source|+|target|)).
func (m *IndexedHeap) AddColumns(source, target int) error {
	if err := m.checkColumn(source); err != nil {
		return err
	}
	if err := m.checkColumn(target); err != nil {
		return err
	}

	t := m.data[target]
	h := columnHeap{&t}
	for _, v := range m.data[source] {
		heap.Push(h, v)
	}
	m.data[target] = t
	return nil
}

func (m *IndexedHeap) ClearColumn(column int) error {
	if err := m.checkColumn(column); err != nil {
		return err
	}
	m.data[column] = nil
	return nil
}

func (m *IndexedHeap) ColumnDimension(column int) (int, error) {
	if err := m.checkColumn(column); err != nil {
		return 0, err
	}
	return m.dimensions[column], nil
}

func (m *IndexedHeap) SetColumnDimension(column int, dimension int) error {
	if err := m.checkColumn(column); err != nil {
		return err
	}
	m.dimensions[column] = dimension
	return nil
}

func (m *IndexedHeap) Dimension() int {
	d := 0
	for _, v := range m.dimensions {
		if v > d {
			d = v
		}
	}
	return d
}

func (m *IndexedHeap) IsDualized() bool {
	return m.dualized
}

// Dualize returns the cohomological transpose of m (spec §4.3): see
// dualizeColumns for the shared algorithm. Each resulting column is
// re-heapified.
// Complexity: O(n·k).
func (m *IndexedHeap) Dualize() (Representation, error) {
	n := len(m.data)
	columns, dimensions, err := dualizeColumns(m)
	if err != nil {
		return nil, err
	}

	out, err := NewIndexedHeap(n)
	if err != nil {
		return nil, err
	}
	for j, col := range columns {
		heap.Init(columnHeap{&col})
		out.data[j] = col
	}
	out.dimensions = dimensions
	out.dualized = !m.dualized

	return out, nil
}
