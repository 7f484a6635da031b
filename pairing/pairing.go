package pairing

import "sort"

// Pair is a single persistence pairing entry: the simplex at filtration
// index Birth creates a feature, and (unless Infinite) the simplex at
// filtration index Death destroys it.
type Pair struct {
	Birth    int
	Death    int
	Infinite bool
}

// Pairing is an ordered, append-only collection of Pair values.
type Pairing struct {
	pairs []Pair
}

// New returns an empty Pairing.
func New() *Pairing {
	return &Pairing{}
}

// Add records an infinite-persistence creator: birth with no destroyer.
func (p *Pairing) Add(birth int) {
	p.pairs = append(p.pairs, Pair{Birth: birth, Infinite: true})
}

// AddFinite records a finite-persistence pair (birth, death).
func (p *Pairing) AddFinite(birth, death int) {
	p.pairs = append(p.pairs, Pair{Birth: birth, Death: death})
}

// Len returns the number of recorded pairs.
func (p *Pairing) Len() int {
	return len(p.pairs)
}

// Pairs returns a snapshot of the recorded pairs, in Sort order if Sort
// was called, insertion order otherwise.
func (p *Pairing) Pairs() []Pair {
	cp := make([]Pair, len(p.pairs))
	copy(cp, p.pairs)
	return cp
}

// Sort orders pairs by ascending birth, then ascending death (infinite
// pairs sort after every finite death at the same birth).
func (p *Pairing) Sort() {
	sort.SliceStable(p.pairs, func(i, j int) bool {
		a, b := p.pairs[i], p.pairs[j]
		if a.Birth != b.Birth {
			return a.Birth < b.Birth
		}
		if a.Infinite != b.Infinite {
			return !a.Infinite
		}
		return a.Death < b.Death
	})
}

// Find returns the first pair whose Birth equals creator.
func (p *Pairing) Find(creator int) (Pair, bool) {
	for _, pair := range p.pairs {
		if pair.Birth == creator {
			return pair, true
		}
	}
	return Pair{}, false
}

// FindPair returns the pair (creator, destroyer) if present.
func (p *Pairing) FindPair(creator, destroyer int) (Pair, bool) {
	for _, pair := range p.pairs {
		if pair.Birth == creator && !pair.Infinite && pair.Death == destroyer {
			return pair, true
		}
	}
	return Pair{}, false
}

// Contains reports whether any pair has Birth == creator.
func (p *Pairing) Contains(creator int) bool {
	_, ok := p.Find(creator)
	return ok
}

// ContainsPair reports whether (creator, destroyer) is a recorded pair.
func (p *Pairing) ContainsPair(creator, destroyer int) bool {
	_, ok := p.FindPair(creator, destroyer)
	return ok
}
