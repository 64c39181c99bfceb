package locate

import "github.com/katalvlaran/geopt/geo"

// Amenity is a geodetic point of interest with its disutility weight.
type Amenity struct {
	Point  geo.GeoPoint // location in degrees
	Weight float64      // w ≥ 0; validated by the utility model
}

// Street is an optional linear constraint: the optimum must lie on the
// line through the two geodetic endpoints.
type Street struct {
	From geo.GeoPoint
	To   geo.GeoPoint
}

// Request is one self-contained optimization scenario, the unit of work
// for SolveBatch.
type Request struct {
	Origin    geo.GeoPoint // tangent-plane anchor for this run
	Amenities []Amenity    // non-empty
	Street    *Street      // nil ⇒ unconstrained solve
}

// Result is the outcome of one solve: the planar optimum, its geodetic
// mapping, the disutility there, and — for constrained runs — the
// Lagrange multiplier. Read-only after Solve returns.
type Result struct {
	Planar      geo.PlanarPoint // optimum in km, relative to the run's origin
	Location    geo.GeoPoint    // optimum mapped back to degrees
	Utility     float64         // U at the optimum
	Lambda      float64         // multiplier; meaningful only if Constrained
	Constrained bool            // true when a street constraint was applied
}

// Outcome pairs a batch entry's Result with its error, preserving the
// input index.
type Outcome struct {
	Result Result
	Err    error
}

// Option customizes a single Solve call.
type Option func(*config)

// config carries resolved per-call settings. Unexported: callers go
// through With* constructors only.
type config struct {
	street      Street
	constrained bool
}

// WithStreet restricts the optimum to the line through the two geodetic
// endpoints. Endpoint validation happens inside Solve, after projection.
func WithStreet(from, to geo.GeoPoint) Option {
	return func(c *config) {
		c.street = Street{From: from, To: to}
		c.constrained = true
	}
}
