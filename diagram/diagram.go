package diagram

import "math"

// Point is a single persistence diagram entry. An unpaired (infinite
// persistence) point has Y == +Inf.
type Point struct {
	X, Y float64
}

// NewPoint constructs an unpaired point at birth x.
func NewPoint(x float64) Point {
	return Point{X: x, Y: math.Inf(1)}
}

// NewFinitePoint constructs a paired point (x, y).
func NewFinitePoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Persistence returns y - x.
func (p Point) Persistence() float64 {
	return p.Y - p.X
}

// IsUnpaired reports whether p has infinite persistence.
func (p Point) IsUnpaired() bool {
	return math.IsInf(p.Y, 1)
}

// Diagram is an ordered collection of Point values, tagged with the
// homological dimension they were computed for.
type Diagram struct {
	dimension int
	points    []Point
}

// New returns an empty Diagram for the given homological dimension.
func New(dimension int) *Diagram {
	return &Diagram{dimension: dimension}
}

// Add appends an unpaired point at birth x.
func (d *Diagram) Add(x float64) {
	d.points = append(d.points, NewPoint(x))
}

// AddFinite appends a paired point (x, y).
func (d *Diagram) AddFinite(x, y float64) {
	d.points = append(d.points, NewFinitePoint(x, y))
}

// Dimension returns the homological dimension this diagram was built for.
func (d *Diagram) Dimension() int {
	return d.dimension
}

// SetDimension overrides the recorded homological dimension.
func (d *Diagram) SetDimension(dimension int) {
	d.dimension = dimension
}

// Points returns a snapshot of the diagram's points.
func (d *Diagram) Points() []Point {
	cp := make([]Point, len(d.points))
	copy(cp, d.points)
	return cp
}

// Len returns the number of points in the diagram.
func (d *Diagram) Len() int {
	return len(d.points)
}

// Betti returns the number of unpaired (infinite persistence) points.
func (d *Diagram) Betti() int {
	n := 0
	for _, p := range d.points {
		if p.IsUnpaired() {
			n++
		}
	}
	return n
}

// RemoveDiagonal drops every point with x == y (zero persistence).
func (d *Diagram) RemoveDiagonal() {
	out := d.points[:0]
	for _, p := range d.points {
		if p.X != p.Y {
			out = append(out, p)
		}
	}
	d.points = out
}

// RemoveUnpaired drops every point with infinite persistence.
func (d *Diagram) RemoveUnpaired() {
	out := d.points[:0]
	for _, p := range d.points {
		if !p.IsUnpaired() {
			out = append(out, p)
		}
	}
	d.points = out
}
