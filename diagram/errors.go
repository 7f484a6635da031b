package diagram

import "errors"

var (
	// ErrNaNInWeights is returned by Build when a filtration value feeding
	// a point is NaN and WithDropNaN was not given.
	ErrNaNInWeights = errors.New("diagram: NaN filtration value encountered")

	// ErrZeroExponent is returned by PNorm when called with p == 0.
	ErrZeroExponent = errors.New("diagram: exponent must be non-zero")

	// ErrParseError indicates malformed serialized diagram input (text or
	// JSON).
	ErrParseError = errors.New("diagram: malformed serialized diagram")

	// ErrIndexOutOfRange is returned by Build when a pairing index falls
	// outside the supplied function-value slice.
	ErrIndexOutOfRange = errors.New("diagram: function value index out of range")
)
