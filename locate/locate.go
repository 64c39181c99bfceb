package locate

import (
	"fmt"

	"github.com/katalvlaran/geopt/geo"
	"github.com/katalvlaran/geopt/solver"
	"github.com/katalvlaran/geopt/utility"
)

// Solve runs one complete optimization: project the amenities onto the
// tangent plane at origin, build the cost model, find the optimum
// (restricted to a street when WithStreet is given), and map it back to
// geodetic coordinates.
//
// Validation happens eagerly and bottom-up: origin via geo.NewOrigin,
// amenities via utility.NewModel, street endpoints via
// solver.NewLineThrough. All sentinel errors propagate for errors.Is.
//
// Complexity: O(n) in the number of amenities.
func Solve(origin geo.GeoPoint, amenities []Amenity, opts ...Option) (Result, error) {
	// 1) Resolve per-call options.
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Fail fast on an empty request, before any projection.
	if len(amenities) == 0 {
		return Result{}, ErrNoAmenities
	}

	// 3) Fix the tangent-plane anchor for this run.
	anchor, err := geo.NewOrigin(origin)
	if err != nil {
		return Result{}, fmt.Errorf("origin: %w", err)
	}

	// 4) Project every amenity into the local planar frame.
	planar := make([]utility.Amenity, len(amenities))
	for i, a := range amenities {
		pt, perr := geo.ToPlanar(anchor, a.Point)
		if perr != nil {
			return Result{}, fmt.Errorf("amenity %d: %w", i, perr)
		}
		planar[i] = utility.Amenity{Point: pt, Weight: a.Weight}
	}

	// 5) Build the validated cost model.
	model, err := utility.NewModel(planar)
	if err != nil {
		return Result{}, err
	}

	// 6) Dispatch the solve.
	var (
		best   geo.PlanarPoint
		lambda float64
	)
	if cfg.constrained {
		best, lambda, err = solveConstrained(anchor, model, cfg.street)
	} else {
		best, err = solver.Minimize(model)
	}
	if err != nil {
		return Result{}, err
	}

	// 7) Map the planar optimum back to geodetic coordinates.
	loc, err := MapResult(anchor, best)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Planar:      best,
		Location:    loc,
		Utility:     model.Evaluate(best.X, best.Y),
		Lambda:      lambda,
		Constrained: cfg.constrained,
	}, nil
}

// solveConstrained projects the street endpoints into the same planar
// frame as the amenities, builds the line constraint, and runs the
// Lagrange solve.
func solveConstrained(anchor geo.Origin, model *utility.Model, s Street) (geo.PlanarPoint, float64, error) {
	from, err := geo.ToPlanar(anchor, s.From)
	if err != nil {
		return geo.PlanarPoint{}, 0, fmt.Errorf("street from: %w", err)
	}
	to, err := geo.ToPlanar(anchor, s.To)
	if err != nil {
		return geo.PlanarPoint{}, 0, fmt.Errorf("street to: %w", err)
	}

	line, err := solver.NewLineThrough(from, to)
	if err != nil {
		return geo.PlanarPoint{}, 0, err
	}

	return solver.MinimizeOnLine(model, line)
}
