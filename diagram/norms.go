package diagram

import "math"

// Accumulator is a Kahan (compensated) summation accumulator: it tracks a
// running compensation term alongside the sum itself so that repeated
// addition of many small values does not lose precision to the running
// total's magnitude.
type Accumulator struct {
	sum, c float64
}

// Add adds v to the running total.
func (a *Accumulator) Add(v float64) {
	y := v - a.c
	t := a.sum + y
	a.c = (t - a.sum) - y
	a.sum = t
}

// Sub subtracts v from the running total.
func (a *Accumulator) Sub(v float64) {
	a.Add(-v)
}

// Value returns the current running total.
func (a *Accumulator) Value() float64 {
	return a.sum
}

// TotalPersistence computes Σ |persistence(p)|^k over every point in d,
// optionally weighted by |birth(p)|, using Kahan summation for numerical
// stability.
func TotalPersistence(d *Diagram, k float64, weighted bool) float64 {
	var acc Accumulator
	for _, p := range d.points {
		term := math.Pow(math.Abs(p.Persistence()), k)
		if weighted {
			term *= math.Abs(p.X)
		}
		acc.Add(term)
	}
	return acc.Value()
}

// PNorm computes the p-norm of d: TotalPersistence(d, p, weighted)^(1/p).
func PNorm(d *Diagram, p float64, weighted bool) (float64, error) {
	if p == 0 {
		return 0, ErrZeroExponent
	}
	return math.Pow(TotalPersistence(d, p, weighted), 1.0/p), nil
}

// InfinityNorm returns the maximum |persistence| across every point in d,
// or 0 for an empty diagram.
func InfinityNorm(d *Diagram) float64 {
	max := 0.0
	for i, p := range d.points {
		v := math.Abs(p.Persistence())
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}
