// Package perversity implements the allowability machinery needed for
// persistent intersection homology: a Perversity vector, a caller-supplied
// allowability predicate built on top of it, and the stable partition of a
// closed complex into allowable simplices followed by the rest.
package perversity
