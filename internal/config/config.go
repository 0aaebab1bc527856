package config

import "time"

// Config is the root configuration for the CLI.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Geocoder GeocoderConfig `yaml:"geocoder"`
	Forecast ForecastConfig `yaml:"forecast"`
}

// APIConfig holds Open-Meteo API settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// GeocoderConfig holds Nominatim geocoder settings.
type GeocoderConfig struct {
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	RateLimit float64       `yaml:"rate_limit"` // requests per second
	Burst     int           `yaml:"burst"`
	Timeout   time.Duration `yaml:"timeout"`
}

// ForecastConfig holds default forecast request settings.
type ForecastConfig struct {
	DefaultModels []string `yaml:"default_models"`
	Days          int      `yaml:"days"`
}
