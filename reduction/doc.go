// Package reduction implements the column-reduction step of the
// persistent-homology pipeline: given a boundary matrix over GF(2), it
// repeatedly adds an earlier column onto a later one until every nonzero
// column has a unique maximum row index (its "pivot"). The resulting
// pivot structure is read off directly by the pairing package.
//
// Two algorithms are provided: Standard processes columns left to right;
// Twist processes them by descending simplex dimension and additionally
// clears a pivot row's own column once it is claimed, since a paired
// creator can never itself need reducing again.
package reduction
