package aleph

import (
	"github.com/aleph-go/aleph/boundarymatrix"
	"github.com/aleph-go/aleph/convert"
	"github.com/aleph-go/aleph/diagram"
	"github.com/aleph-go/aleph/fcomplex"
	"github.com/aleph-go/aleph/pairing"
	"github.com/aleph-go/aleph/perversity"
	"github.com/aleph-go/aleph/reduction"
	"github.com/aleph-go/aleph/simplex"
)

// Options configures a persistence calculation.
type Options struct {
	Comparator     simplex.Comparator
	Combiner       fcomplex.FaceWeightCombiner
	Algorithm      reduction.Algorithm
	ConvertOptions []convert.Option
	PairingOptions []pairing.Option
	DiagramOptions []diagram.BuildOption
}

// Option configures Options.
type Option func(*Options)

// WithComparator overrides the filtration comparator used to Sort the
// complex before conversion. Defaults to simplex.Ascending.
func WithComparator(cmp simplex.Comparator) Option {
	return func(o *Options) { o.Comparator = cmp }
}

// WithCombiner overrides the face-weight combiner used to Close the
// complex. Defaults to fcomplex.MaxCombiner.
func WithCombiner(combiner fcomplex.FaceWeightCombiner) Option {
	return func(o *Options) { o.Combiner = combiner }
}

// WithAlgorithm overrides the reduction algorithm. Defaults to
// reduction.Standard.
func WithAlgorithm(alg reduction.Algorithm) Option {
	return func(o *Options) { o.Algorithm = alg }
}

// WithConvertOptions passes through options to convert.FromComplex.
func WithConvertOptions(opts ...convert.Option) Option {
	return func(o *Options) { o.ConvertOptions = append(o.ConvertOptions, opts...) }
}

// WithPairingOptions passes through options to pairing.Extract.
func WithPairingOptions(opts ...pairing.Option) Option {
	return func(o *Options) { o.PairingOptions = append(o.PairingOptions, opts...) }
}

// WithDiagramOptions passes through options to diagram.Build.
func WithDiagramOptions(opts ...diagram.BuildOption) Option {
	return func(o *Options) { o.DiagramOptions = append(o.DiagramOptions, opts...) }
}

func defaultOptions() Options {
	return Options{
		Comparator: simplex.Ascending,
		Combiner:   fcomplex.MaxCombiner,
		Algorithm:  reduction.Standard,
	}
}

// CalculatePersistencePairing runs the full pipeline — close, sort,
// convert, reduce, extract — on a copy of c, returning the resulting
// boundary matrix (already reduced) and persistence pairing.
//
// Steps:
//  1. Clone c so the caller's complex is left untouched.
//  2. Close the clone under taking faces (fcomplex.Close).
//  3. Sort the clone into filtration order (fcomplex.Sort).
//  4. Convert to a boundary matrix (convert.FromComplex).
//  5. Reduce it in place (Options.Algorithm, default Standard).
//  6. Extract the persistence pairing (pairing.Extract).
//
// Complexity: dominated by reduction, O(n³) worst case for n simplices.
func CalculatePersistencePairing(c *fcomplex.FilteredComplex, opts ...Option) (boundarymatrix.Representation, *pairing.Pairing, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	clone := c.Clone()
	if err := clone.Close(cfg.Combiner); err != nil {
		return nil, nil, err
	}
	if err := clone.Sort(cfg.Comparator); err != nil {
		return nil, nil, err
	}

	m, err := convert.FromComplex(clone, cfg.ConvertOptions...)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Algorithm.Reduce(m); err != nil {
		return nil, nil, err
	}

	p, err := pairing.Extract(m, cfg.PairingOptions...)
	if err != nil {
		return nil, nil, err
	}

	return m, p, nil
}

// CalculatePersistenceDiagrams runs CalculatePersistencePairing and then
// splits the resulting pairing into one diagram.Diagram per homological
// dimension present in the (closed, sorted) complex, indexed 0 … D. The
// filtration weight of each simplex is read from the complex itself
// (simplex.Weight); pass WithDiagramOptions(diagram.WithRemoveDiagonal())
// etc. to post-process every resulting diagram.
//
// Complexity: as CalculatePersistencePairing, plus O(n) to bucket pairs
// by dimension.
func CalculatePersistenceDiagrams(c *fcomplex.FilteredComplex, opts ...Option) ([]*diagram.Diagram, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	clone := c.Clone()
	if err := clone.Close(cfg.Combiner); err != nil {
		return nil, err
	}
	if err := clone.Sort(cfg.Comparator); err != nil {
		return nil, err
	}

	m, err := convert.FromComplex(clone, cfg.ConvertOptions...)
	if err != nil {
		return nil, err
	}
	if err := cfg.Algorithm.Reduce(m); err != nil {
		return nil, err
	}
	p, err := pairing.Extract(m, cfg.PairingOptions...)
	if err != nil {
		return nil, err
	}

	weights := make([]float64, clone.Len())
	for i := 0; i < clone.Len(); i++ {
		s, _ := clone.At(i)
		weights[i] = s.Weight()
	}

	maxDim := clone.Dimension()
	byDim := make([]*pairing.Pairing, maxDim+1)
	for i := range byDim {
		byDim[i] = pairing.New()
	}
	for _, pr := range p.Pairs() {
		s, ok := clone.At(pr.Birth)
		if !ok {
			continue
		}
		d := s.Dimension()
		if pr.Infinite {
			byDim[d].Add(pr.Birth)
		} else {
			byDim[d].AddFinite(pr.Birth, pr.Death)
		}
	}

	diagrams := make([]*diagram.Diagram, maxDim+1)
	for d := 0; d <= maxDim; d++ {
		byDim[d].Sort()
		dd, err := diagram.Build(byDim[d], d, weights, cfg.DiagramOptions...)
		if err != nil {
			return nil, err
		}
		diagrams[d] = dd
	}

	return diagrams, nil
}

// CalculateIntersectionHomology computes persistent intersection
// homology under perversity p: the complex is partitioned into
// allowable/non-allowable simplices via phi (spec §4.8), converted up to
// index s = |allowable| only, reduced, and paired — so reduction only
// ever sees the allowable sub-chain complex.
//
// Steps:
//  1. Close and sort c exactly as CalculatePersistencePairing does.
//  2. Partition the result with perversity.Split(phi).
//  3. Convert the partitioned complex, capping at AllowedCount via
//     convert.WithMaxIndex.
//  4. Reduce and extract the pairing as usual.
//
// Complexity: as CalculatePersistencePairing, restricted to s ≤ n
// columns.
func CalculateIntersectionHomology(c *fcomplex.FilteredComplex, phi perversity.Predicate, opts ...Option) (*perversity.Partition, *pairing.Pairing, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	clone := c.Clone()
	if err := clone.Close(cfg.Combiner); err != nil {
		return nil, nil, err
	}
	if err := clone.Sort(cfg.Comparator); err != nil {
		return nil, nil, err
	}

	part := perversity.Split(clone, phi)

	convertOpts := append([]convert.Option{convert.WithMaxIndex(part.AllowedCount)}, cfg.ConvertOptions...)
	m, err := convert.FromComplex(part.Complex, convertOpts...)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Algorithm.Reduce(m); err != nil {
		return nil, nil, err
	}

	p, err := pairing.Extract(m, cfg.PairingOptions...)
	if err != nil {
		return nil, nil, err
	}

	return part, p, nil
}
