package pairing

import "github.com/aleph-go/aleph/boundarymatrix"

// Extract reads the persistence pairing off an already-reduced boundary
// matrix m.
//
// Steps:
//  1. For every column j, inspect its (post-reduction) maximum row index
//     i. If valid, column j destroys the feature created at i: i is
//     removed from the creator candidate set, and (i, j) is recorded —
//     remapped through the dualization index flip (spec §4.3) first if m
//     is dualized.
//  2. If j's column reduced to empty, j is a candidate creator. Per
//     WithIncludeAllUnpaired (default false), a creator belonging to the
//     matrix's top dimension (or, when dualized, dimension 0) is
//     suppressed rather than recorded as an infinite-persistence feature.
//  3. Every surviving candidate creator is recorded as birth-only
//     (remapped through the same dualization flip if applicable).
//  4. The resulting Pairing is sorted by (birth, death).
//
// Complexity: O(n) beyond the cost of the MaxIndex/ColumnDimension calls
// the already-reduced matrix answers in O(1) amortized.
func Extract(m boundarymatrix.Representation, opts ...Option) (*Pairing, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := m.NumColumns()
	dualized := m.IsDualized()
	overallDim := m.Dimension()

	result := New()
	creators := make(map[int]struct{})

	for j := 0; j < n; j++ {
		i, valid, err := m.MaxIndex(j)
		if err != nil {
			return nil, err
		}

		if valid {
			delete(creators, i)

			u, v, w := i, j, i
			if dualized {
				u = n - 1 - v
				v = n - 1 - w
			}
			result.AddFinite(u, v)
			continue
		}

		dim, err := m.ColumnDimension(j)
		if err != nil {
			return nil, err
		}

		suppressed := false
		if !cfg.includeAllUnpaired {
			if !dualized && dim == overallDim {
				suppressed = true
			}
			if dualized && dim == 0 {
				suppressed = true
			}
		}
		if !suppressed {
			creators[j] = struct{}{}
		}
	}

	for creator := range creators {
		if dualized {
			result.Add(n - 1 - creator)
		} else {
			result.Add(creator)
		}
	}

	result.Sort()
	return result, nil
}
