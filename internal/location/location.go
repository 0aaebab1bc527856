// Package location resolves free-text place names or literal coordinates
// into a validated coordinate with a display name.
package location

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/mzagar/openmeteo/internal/model"
)

// Place is one geocoding candidate.
type Place struct {
	DisplayName string
	Coord       model.Coordinate
}

// Geocoder looks up free-text queries. Implemented by geocode.Client.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]Place, error)
}

// Location is a resolved query: a validated coordinate plus the name shown
// to the user.
type Location struct {
	DisplayName string
	Coord       model.Coordinate
}

// RangeError reports a coordinate literal outside the valid ranges.
type RangeError struct {
	Latitude  float64
	Longitude float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("coordinate %v,%v out of range: latitude must be in [-90, 90], longitude in [-180, 180]",
		e.Latitude, e.Longitude)
}

// NotFoundError reports a query the geocoder returned no candidates for.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown location %q", e.Query)
}

// Optional sign, optional decimals, no surrounding whitespace.
var coordPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)$`)

// Resolve turns a raw location argument into a Location. A strict "lat,lon"
// literal is parsed and range-checked without any network access and keeps
// the raw string as its display name; anything else goes to the geocoder
// and takes the first candidate.
func Resolve(ctx context.Context, raw string, geo Geocoder) (Location, error) {
	if m := coordPattern.FindStringSubmatch(raw); m != nil {
		lat, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Location{}, fmt.Errorf("parse latitude: %w", err)
		}
		lon, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return Location{}, fmt.Errorf("parse longitude: %w", err)
		}

		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return Location{}, &RangeError{Latitude: lat, Longitude: lon}
		}

		return Location{
			DisplayName: raw,
			Coord:       model.Coordinate{Latitude: lat, Longitude: lon},
		}, nil
	}

	places, err := geo.Search(ctx, raw)
	if err != nil {
		return Location{}, fmt.Errorf("geocode %q: %w", raw, err)
	}
	if len(places) == 0 {
		return Location{}, &NotFoundError{Query: raw}
	}

	return Location{
		DisplayName: places[0].DisplayName,
		Coord:       places[0].Coord,
	}, nil
}
