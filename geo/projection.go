package geo

import "math"

// NewOrigin validates p and fixes it as the tangent-plane anchor for a
// single optimization run.
//
// Validation order (first failure wins):
//  1. Both coordinates finite (ErrNonFinite).
//  2. Latitude not at a pole (ErrDegenerateProjection) — reported
//     distinctly so callers can tell "undefined" from "unsupported".
//  3. Latitude within ±MaxOriginLatDeg (ErrLatitudeRange).
//  4. Longitude within ±180° (ErrLongitudeRange).
//
// Complexity: O(1).
func NewOrigin(p GeoPoint) (Origin, error) {
	if !p.IsFinite() {
		return Origin{}, ErrNonFinite
	}
	if math.Abs(p.Lat) >= 90.0-poleEpsDeg {
		return Origin{}, ErrDegenerateProjection
	}
	if math.Abs(p.Lat) > MaxOriginLatDeg {
		return Origin{}, ErrLatitudeRange
	}
	if math.Abs(p.Lon) > 180.0 {
		return Origin{}, ErrLongitudeRange
	}

	return Origin{ref: p, cosLat: math.Cos(p.Lat * degToRad)}, nil
}

// ToPlanar projects the geodetic point p onto the local tangent plane
// anchored at o. Output is in kilometers east (X) and north (Y) of the
// origin. Returns ErrNonFinite if p has a NaN or Inf coordinate.
//
// Complexity: O(1).
func ToPlanar(o Origin, p GeoPoint) (PlanarPoint, error) {
	if !p.IsFinite() {
		return PlanarPoint{}, ErrNonFinite
	}

	// Angular offsets from the anchor, in radians.
	dLon := (p.Lon - o.ref.Lon) * degToRad
	dLat := (p.Lat - o.ref.Lat) * degToRad

	// Equirectangular projection: scale the longitude arc by cos φ₀.
	return PlanarPoint{
		X: EarthRadiusKm * dLon * o.cosLat,
		Y: EarthRadiusKm * dLat,
	}, nil
}

// ToGeodetic maps a planar point back to geodetic coordinates. It is the
// exact algebraic inverse of ToPlanar for the same origin. Returns
// ErrNonFinite if p has a NaN or Inf coordinate.
//
// The division by cos φ₀ is safe: NewOrigin rejected polar anchors, so
// cosLat is bounded away from zero.
//
// Complexity: O(1).
func ToGeodetic(o Origin, p PlanarPoint) (GeoPoint, error) {
	if !p.IsFinite() {
		return GeoPoint{}, ErrNonFinite
	}

	// Invert the forward transform, then convert back to degrees.
	dLonRad := p.X / (EarthRadiusKm * o.cosLat)
	dLatRad := p.Y / EarthRadiusKm

	return GeoPoint{
		Lat: o.ref.Lat + dLatRad*radToDeg,
		Lon: o.ref.Lon + dLonRad*radToDeg,
	}, nil
}
