package diagram

type buildConfig struct {
	removeDiagonal bool
	dropNaN        bool
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

// WithRemoveDiagonal makes Build drop zero-persistence points.
func WithRemoveDiagonal() BuildOption {
	return func(c *buildConfig) { c.removeDiagonal = true }
}

// WithDropNaN makes Build silently skip a point whose birth or death
// filtration value is NaN, instead of failing with ErrNaNInWeights.
func WithDropNaN() BuildOption {
	return func(c *buildConfig) { c.dropNaN = true }
}
