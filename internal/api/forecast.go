package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mzagar/openmeteo/internal/model"
)

const (
	varTemperature   = "temperature_2m"
	varPrecipitation = "precipitation"
)

// GetForecast fetches an hourly forecast for the coordinate, one series
// pair per requested model, over a horizon of days (capped at
// model.MaxForecastDays). The response timezone is resolved by the API
// ("auto") and drives how the caller interprets dates.
func (c *Client) GetForecast(ctx context.Context, coord model.Coordinate, models []string, days int) (*model.Forecast, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("get forecast: no models requested")
	}
	if days < 1 || days > model.MaxForecastDays {
		days = model.MaxForecastDays
	}

	query := url.Values{}
	query.Set("latitude", formatCoord(coord.Latitude))
	query.Set("longitude", formatCoord(coord.Longitude))
	query.Set("hourly", varTemperature+","+varPrecipitation)
	query.Set("models", strings.Join(models, ","))
	query.Set("forecast_days", strconv.Itoa(days))
	query.Set("timezone", "auto")

	var resp forecastResponse
	if err := c.get(ctx, "/forecast", query, &resp); err != nil {
		return nil, fmt.Errorf("get forecast: %w", err)
	}

	f, err := resp.toForecast(models)
	if err != nil {
		return nil, fmt.Errorf("get forecast: %w", err)
	}
	return f, nil
}

// GetCurrent fetches the current conditions for the coordinate.
func (c *Client) GetCurrent(ctx context.Context, coord model.Coordinate) (*model.Current, error) {
	query := url.Values{}
	query.Set("latitude", formatCoord(coord.Latitude))
	query.Set("longitude", formatCoord(coord.Longitude))
	query.Set("current", varTemperature+","+varPrecipitation)
	query.Set("timezone", "auto")

	var resp currentResponse
	if err := c.get(ctx, "/forecast", query, &resp); err != nil {
		return nil, fmt.Errorf("get current: %w", err)
	}

	cur, err := resp.toCurrent()
	if err != nil {
		return nil, fmt.Errorf("get current: %w", err)
	}
	return cur, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
