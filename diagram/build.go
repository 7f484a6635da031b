package diagram

import (
	"math"

	"github.com/aleph-go/aleph/pairing"
)

// Build converts a pairing.Pairing into a Diagram by looking up each
// paired index's filtration weight in functionValues (indexed by
// filtration index, as produced by the simplex package's Weight()
// values).
//
// Steps:
//  1. For every pairing.Pair, look up functionValues[Birth] (and
//     functionValues[Death] for finite pairs); out-of-range indices fail
//     with ErrIndexOutOfRange.
//  2. If either looked-up value is NaN: skip the point under
//     WithDropNaN, else fail with ErrNaNInWeights.
//  3. Append the resulting Point.
//  4. If WithRemoveDiagonal was given, drop zero-persistence points once
//     construction is complete.
//
// Complexity: O(n).
func Build(p *pairing.Pairing, dimension int, functionValues []float64, opts ...BuildOption) (*Diagram, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	d := New(dimension)

	for _, pair := range p.Pairs() {
		if pair.Birth < 0 || pair.Birth >= len(functionValues) {
			return nil, ErrIndexOutOfRange
		}
		x := functionValues[pair.Birth]

		if pair.Infinite {
			if math.IsNaN(x) {
				if cfg.dropNaN {
					continue
				}
				return nil, ErrNaNInWeights
			}
			d.Add(x)
			continue
		}

		if pair.Death < 0 || pair.Death >= len(functionValues) {
			return nil, ErrIndexOutOfRange
		}
		y := functionValues[pair.Death]

		if math.IsNaN(x) || math.IsNaN(y) {
			if cfg.dropNaN {
				continue
			}
			return nil, ErrNaNInWeights
		}
		d.AddFinite(x, y)
	}

	if cfg.removeDiagonal {
		d.RemoveDiagonal()
	}

	return d, nil
}
