package config

import (
	"errors"
	"fmt"

	"github.com/mzagar/openmeteo/internal/model"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}

	if c.Geocoder.BaseURL == "" {
		return errors.New("geocoder.base_url is required")
	}
	if c.Geocoder.UserAgent == "" {
		return errors.New("geocoder.user_agent is required")
	}
	if c.Geocoder.RateLimit <= 0 {
		return errors.New("geocoder.rate_limit must be positive")
	}
	if c.Geocoder.Burst < 1 {
		return errors.New("geocoder.burst must be >= 1")
	}

	if len(c.Forecast.DefaultModels) == 0 {
		return errors.New("forecast.default_models must list at least one model")
	}
	for _, m := range c.Forecast.DefaultModels {
		if m == "" {
			return errors.New("forecast.default_models entries must be non-empty")
		}
	}
	if c.Forecast.Days < 1 || c.Forecast.Days > model.MaxForecastDays {
		return fmt.Errorf("forecast.days must be between 1 and %d, got %d", model.MaxForecastDays, c.Forecast.Days)
	}

	return nil
}
