package boundarymatrix

import "errors"

// Sentinel errors for the boundarymatrix package. Callers MUST use
// errors.Is; sentinels are never wrapped at the definition site.
var (
	// ErrColumnOutOfRange indicates a column index outside [0, NumColumns()).
	ErrColumnOutOfRange = errors.New("boundarymatrix: column index out of range")

	// ErrNegativeNumColumns indicates SetNumColumns was called with n < 0.
	ErrNegativeNumColumns = errors.New("boundarymatrix: number of columns must be non-negative")

	// ErrUnsortedColumn indicates SetColumn was given indices that are not
	// strictly increasing (a malformed boundary: faces must be distinct
	// and a column must never contain duplicates going in).
	ErrUnsortedColumn = errors.New("boundarymatrix: column indices must be strictly increasing")
)
