package model

import (
	"fmt"
	"math"
	"time"
)

// MaxForecastDays is the longest horizon the Open-Meteo forecast endpoint serves.
const MaxForecastDays = 16

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 // Degrees, -90..90
	Longitude float64 // Degrees, -180..180
}

// MapLink returns a Google Maps URL for the coordinate.
func (c Coordinate) MapLink() string {
	return fmt.Sprintf("https://www.google.com/maps/place/%v,%v", c.Latitude, c.Longitude)
}

// Sample is one weather reading. Nil fields were not reported.
type Sample struct {
	Temp   *float64 // °C
	Precip *float64 // mm
}

// ModelSeries holds one forecast model's samples, aligned index-for-index
// with Forecast.Times.
type ModelSeries struct {
	Model   string
	Samples []Sample
}

// Forecast is a multi-model hourly forecast for a single grid cell.
// Every series has exactly len(Times) samples; the adapter that builds a
// Forecast enforces this.
type Forecast struct {
	Times     []time.Time    // Hourly timestamps, localized to Timezone
	Series    []ModelSeries  // One entry per requested model, request order
	Timezone  *time.Location // Resolved by the API ("auto")
	GridCoord Coordinate     // The model's sampled location, not the requested one
}

// Current is a single instantaneous observation.
type Current struct {
	Sample
	Time      time.Time
	GridCoord Coordinate
}

// FormatTemp renders an optional temperature rounded to the nearest degree.
func FormatTemp(t *float64) string {
	if t == nil {
		return "-"
	}
	// int conversion so -0.1 doesn't render as -0°
	return fmt.Sprintf("%d°", int(math.Round(*t)))
}

// FormatPrecip renders an optional precipitation amount. Zero renders empty
// so dry hours stay visually quiet; missing renders as a dash.
func FormatPrecip(p *float64) string {
	switch {
	case p == nil:
		return "-"
	case *p == 0:
		return ""
	case *p < 5:
		return fmt.Sprintf("%.1fmm", *p)
	default:
		return fmt.Sprintf("%.0fmm", *p)
	}
}
