package pairing

type config struct {
	includeAllUnpaired bool
}

// Option configures Extract.
type Option func(*config)

// WithIncludeAllUnpaired controls whether unpaired creators belonging
// to a distinguished dimension are suppressed. The default (false)
// reproduces the reference behavior exactly: an undualized matrix
// drops unpaired creators that ARE of the complex's top dimension, and
// a dualized matrix drops unpaired creators that ARE of dimension 0 —
// both are artifacts of the reduction (e.g. the fundamental class of a
// closed manifold always survives unpaired at the top dimension and is
// not an interesting feature). A complex whose top-dimensional cells
// double as its only essential cycles (no higher-dimensional cell
// exists to distinguish "fundamental class artifact" from "genuine
// essential feature") needs true to keep those creators.
func WithIncludeAllUnpaired(v bool) Option {
	return func(c *config) { c.includeAllUnpaired = v }
}
