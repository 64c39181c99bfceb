// Package scenario loads optimization scenarios from YAML files and
// maps them onto validated locate inputs.
//
// A scenario file describes one run: the reference origin, the weighted
// amenities, and optionally the street the result must lie on:
//
//	origin: { lat: -34.5952, lon: -58.3779 }
//	amenities:
//	  - { name: disco,    lat: -34.5962, lon: -58.3847, weight: 1 }
//	  - { name: obelisk,  lat: -34.6035, lon: -58.3809, weight: 2 }
//	  - { name: galerias, lat: -34.5989, lon: -58.3740, weight: 3 }
//	street:
//	  from: { lat: -34.5982, lon: -58.3836 }
//	  to:   { lat: -34.5978, lon: -58.3803 }
//
// Numeric validation (weights, latitude band, endpoint distinctness)
// stays in the library; this package only checks structural presence.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geopt/geo"
	"github.com/katalvlaran/geopt/locate"
)

// Scenario is a decoded, structurally valid run description.
type Scenario struct {
	Origin    geo.GeoPoint
	Amenities []locate.Amenity
	Names     []string       // parallel to Amenities; "" when unnamed
	Street    *locate.Street // nil when unconstrained
}

// yamlScenario mirrors the file layout.
type yamlScenario struct {
	Origin    yamlPoint     `yaml:"origin"`
	Amenities []yamlAmenity `yaml:"amenities"`
	Street    *yamlStreet   `yaml:"street"`
}

type yamlPoint struct {
	Lat *float64 `yaml:"lat"`
	Lon *float64 `yaml:"lon"`
}

type yamlAmenity struct {
	Name   string   `yaml:"name"`
	Lat    *float64 `yaml:"lat"`
	Lon    *float64 `yaml:"lon"`
	Weight *float64 `yaml:"weight"`
}

type yamlStreet struct {
	From yamlPoint `yaml:"from"`
	To   yamlPoint `yaml:"to"`
}

// Load reads and maps the scenario file at path.
func Load(path string) (Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	var dto yamlScenario
	if err = yaml.Unmarshal(b, &dto); err != nil {
		return Scenario{}, fmt.Errorf("scenario: parse %s: %w", path, err)
	}

	return mapScenario(path, dto)
}

// mapScenario converts the DTO into library types, rejecting missing
// fields with positional context.
func mapScenario(path string, dto yamlScenario) (Scenario, error) {
	origin, err := mapPoint(path, "origin", dto.Origin)
	if err != nil {
		return Scenario{}, err
	}

	if len(dto.Amenities) == 0 {
		return Scenario{}, invalidField(path, "amenities", "at least one amenity is required")
	}

	s := Scenario{
		Origin:    origin,
		Amenities: make([]locate.Amenity, 0, len(dto.Amenities)),
		Names:     make([]string, 0, len(dto.Amenities)),
	}
	for i, a := range dto.Amenities {
		field := fmt.Sprintf("amenities[%d]", i)
		pt, perr := mapPoint(path, field, yamlPoint{Lat: a.Lat, Lon: a.Lon})
		if perr != nil {
			return Scenario{}, perr
		}
		if a.Weight == nil {
			return Scenario{}, invalidField(path, field+".weight", "weight is required")
		}
		s.Amenities = append(s.Amenities, locate.Amenity{Point: pt, Weight: *a.Weight})
		s.Names = append(s.Names, a.Name)
	}

	if dto.Street != nil {
		from, ferr := mapPoint(path, "street.from", dto.Street.From)
		if ferr != nil {
			return Scenario{}, ferr
		}
		to, terr := mapPoint(path, "street.to", dto.Street.To)
		if terr != nil {
			return Scenario{}, terr
		}
		s.Street = &locate.Street{From: from, To: to}
	}

	return s, nil
}

// mapPoint requires both coordinates of a point to be present.
func mapPoint(path, field string, p yamlPoint) (geo.GeoPoint, error) {
	if p.Lat == nil {
		return geo.GeoPoint{}, invalidField(path, field+".lat", "latitude is required")
	}
	if p.Lon == nil {
		return geo.GeoPoint{}, invalidField(path, field+".lon", "longitude is required")
	}

	return geo.GeoPoint{Lat: *p.Lat, Lon: *p.Lon}, nil
}

// invalidField formats a structural validation failure.
func invalidField(path, field, msg string) error {
	return fmt.Errorf("scenario: %s: %s: %s", path, field, msg)
}
