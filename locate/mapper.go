package locate

import "github.com/katalvlaran/geopt/geo"

// MapResult maps a planar solution back to geodetic coordinates. It is
// a thin, separately testable wrapper over geo.ToGeodetic that rejects
// non-finite input with ErrNonFiniteResult before delegating.
//
// Complexity: O(1).
func MapResult(o geo.Origin, p geo.PlanarPoint) (geo.GeoPoint, error) {
	if !p.IsFinite() {
		return geo.GeoPoint{}, ErrNonFiniteResult
	}

	return geo.ToGeodetic(o, p)
}
