// Package boundarymatrix implements the reduced representation of a
// filtered simplicial complex's boundary operator over GF(2): each column
// is the sorted set of filtration indices of the column simplex's
// codimension-1 faces, and "adding" two columns means taking their
// symmetric difference (GF(2) addition cancels repeated entries).
//
// Two concrete representations are provided, mirroring the classical
// choice between a sorted-vector and a heap-backed column:
//
//   - IndexList:   a column is a sorted []int; AddColumns performs a
//     linear-time sorted-merge symmetric difference.
//   - IndexedHeap: a column is a binary max-heap of (possibly duplicated)
//     indices; AddColumns appends and re-heapifies, and MaxIndex lazily
//     pops cancelling duplicate pairs off the top.
//
// Both satisfy the Representation interface and are interchangeable inputs
// to the reduction package.
package boundarymatrix
