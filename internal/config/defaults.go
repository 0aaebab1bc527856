package config

import (
	"time"

	"github.com/mzagar/openmeteo/internal/model"
)

// Default values for optional configuration fields.
const (
	DefaultAPIBaseURL      = "https://api.open-meteo.com/v1"
	DefaultAPITimeout      = 30 * time.Second
	DefaultGeocoderBaseURL = "https://nominatim.openstreetmap.org"
	DefaultGeocoderAgent   = "openmeteo-cli"
	DefaultGeocoderRate    = 1.0
	DefaultGeocoderBurst   = 1
	DefaultGeocoderTimeout = 30 * time.Second
	DefaultForecastDays    = model.MaxForecastDays
)

// DefaultModels are queried when the user does not pick models explicitly.
var DefaultModels = []string{"ecmwf_ifs", "gfs_graphcast025"}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultAPIBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	if c.Geocoder.BaseURL == "" {
		c.Geocoder.BaseURL = DefaultGeocoderBaseURL
	}
	if c.Geocoder.UserAgent == "" {
		c.Geocoder.UserAgent = DefaultGeocoderAgent
	}
	if c.Geocoder.RateLimit == 0 {
		c.Geocoder.RateLimit = DefaultGeocoderRate
	}
	if c.Geocoder.Burst == 0 {
		c.Geocoder.Burst = DefaultGeocoderBurst
	}
	if c.Geocoder.Timeout == 0 {
		c.Geocoder.Timeout = DefaultGeocoderTimeout
	}

	if len(c.Forecast.DefaultModels) == 0 {
		c.Forecast.DefaultModels = append([]string(nil), DefaultModels...)
	}
	if c.Forecast.Days == 0 {
		c.Forecast.Days = DefaultForecastDays
	}
}
