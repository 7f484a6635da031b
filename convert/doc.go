// Package convert builds a boundarymatrix.Representation from a
// fcomplex.FilteredComplex: each filtration index becomes a column whose
// contents are the filtration indices of the simplex's codimension-1
// faces.
package convert
