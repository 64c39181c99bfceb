// Package geo converts between geodetic coordinates (latitude/longitude
// in degrees) and local planar coordinates (kilometers) anchored at a
// reference origin.
//
// The conversion is the equirectangular tangent-plane approximation:
// a small patch of the Earth's surface is treated as flat, so Euclidean
// distances and quadratic optimization become meaningful. With the
// origin at (φ₀, λ₀) and R = 6371 km:
//
//	x = R · (λ − λ₀) · cos φ₀
//	y = R · (φ − φ₀)        (all angles in radians)
//
// ToGeodetic is the exact algebraic inverse of ToPlanar, so round-trips
// are lossless up to floating-point error (≤1e-6° within a few hundred
// kilometers of the origin).
//
// Validity window:
//
//   - The approximation degrades near the poles: cos φ₀ → 0 makes the
//     inverse longitude formula blow up, and meridian convergence makes
//     the planar metric wrong long before that. NewOrigin therefore
//     rejects reference latitudes outside ±85° (ErrLatitudeRange) and
//     reports an origin at the pole itself as ErrDegenerateProjection.
//   - Points are expected to lie within a few hundred kilometers of the
//     origin; beyond that the flat-Earth error grows quadratically.
//
// Errors (sentinel):
//
//	– ErrNonFinite              if any coordinate is NaN or ±Inf.
//	– ErrLatitudeRange          if a reference latitude is outside ±85°.
//	– ErrLongitudeRange         if a reference longitude is outside ±180°.
//	– ErrDegenerateProjection   if the reference latitude is at a pole.
//
// All operations are pure functions; Origin is immutable after NewOrigin.
//
// Complexity: every function is O(1) time, O(1) space.
package geo
