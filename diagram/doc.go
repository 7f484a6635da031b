// Package diagram models persistence diagrams — multisets of
// (birth, death) points, one per paired creator/destroyer in a
// pairing.Pairing, plus birth-only points for infinite-persistence
// features — together with the norms and serialization formats built on
// top of them.
package diagram
