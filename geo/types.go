package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by both transforms.
// Forward and inverse must share one value or round-trips drift.
const EarthRadiusKm = 6371.0

// MaxOriginLatDeg bounds the reference latitude. Beyond ±85° the
// tangent-plane approximation is no longer trustworthy.
const MaxOriginLatDeg = 85.0

// poleEpsDeg distinguishes "exactly at a pole" (ErrDegenerateProjection)
// from "outside the supported band" (ErrLatitudeRange).
const poleEpsDeg = 1e-9

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180.0

// radToDeg converts radians to degrees.
const radToDeg = 180.0 / math.Pi

// GeoPoint is a geodetic coordinate pair in degrees. Immutable value.
type GeoPoint struct {
	Lat float64 // latitude φ, degrees, positive north
	Lon float64 // longitude λ, degrees, positive east
}

// IsFinite reports whether both coordinates are finite numbers.
func (p GeoPoint) IsFinite() bool {
	return isFinite(p.Lat) && isFinite(p.Lon)
}

// PlanarPoint is a local planar coordinate pair in kilometers, relative
// to the Origin that produced it. A PlanarPoint is only meaningful
// together with that Origin; mixing points from different origins is a
// caller error this package cannot detect.
type PlanarPoint struct {
	X float64 // east offset, km
	Y float64 // north offset, km
}

// IsFinite reports whether both coordinates are finite numbers.
func (p PlanarPoint) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Origin is the validated tangent-plane anchor for one optimization run.
// Construct via NewOrigin; the zero value is not usable. Immutable.
type Origin struct {
	ref    GeoPoint // the anchor point, degrees
	cosLat float64  // cos(ref.Lat), precomputed once
}

// Point returns the geodetic anchor this origin was built from.
func (o Origin) Point() GeoPoint { return o.ref }

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
