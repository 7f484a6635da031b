package convert

import "errors"

var (
	// ErrNotClosed indicates a simplex's boundary face could not be found
	// in the complex — the complex must be closed (fcomplex.Close) before
	// it can be converted to a boundary matrix.
	ErrNotClosed = errors.New("convert: complex is not closed under taking faces")

	// ErrNotSorted indicates the complex's filtration order does not
	// satisfy face-precedes-coface (fcomplex.Sort) — a boundary column
	// would otherwise reference a row index ≥ its own column index.
	ErrNotSorted = errors.New("convert: complex is not sorted face-before-coface")
)
