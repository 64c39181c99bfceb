package geo

import "errors"

var (
	// ErrNonFinite indicates a NaN or ±Inf coordinate where a finite
	// value is required. Checked before any arithmetic.
	ErrNonFinite = errors.New("geo: coordinate is NaN or Inf")

	// ErrLatitudeRange indicates a reference latitude outside the
	// supported ±85° band. The flat-Earth approximation's error grows
	// unacceptably near the poles, so such origins are rejected eagerly.
	ErrLatitudeRange = errors.New("geo: reference latitude outside supported range ±85°")

	// ErrLongitudeRange indicates a reference longitude outside ±180°.
	ErrLongitudeRange = errors.New("geo: reference longitude outside ±180°")

	// ErrDegenerateProjection indicates a reference latitude at (or
	// within epsilon of) a pole, where cos φ₀ = 0 and the inverse
	// longitude transform is undefined.
	ErrDegenerateProjection = errors.New("geo: reference at a pole, projection undefined")
)
