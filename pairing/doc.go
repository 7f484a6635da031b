// Package pairing extracts a persistence pairing — a set of
// (birth, death) filtration-index pairs, plus a set of birth-only
// (infinite persistence) indices — from a reduced boundary matrix.
package pairing
