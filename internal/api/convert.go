package api

import (
	"fmt"
	"time"

	"github.com/mzagar/openmeteo/internal/model"
)

// apiTimeLayout is the local wall-clock format the API returns when a
// timezone is requested.
const apiTimeLayout = "2006-01-02T15:04"

// fieldName builds the hourly field key for a variable. With a single
// requested model the API returns bare names, with several it suffixes
// each series with its model.
func fieldName(variable, mdl string, single bool) string {
	if single {
		return variable
	}
	return variable + "_" + mdl
}

// checkUnit verifies the API reported the unit the renderer assumes.
func checkUnit(units map[string]string, key, want string) error {
	got, ok := units[key]
	if !ok {
		return &SchemaError{Field: "units." + key, Reason: "missing"}
	}
	if got != want {
		return &SchemaError{
			Field:  "units." + key,
			Reason: fmt.Sprintf("unit %q, want %q", got, want),
		}
	}
	return nil
}

func (r *forecastResponse) toForecast(models []string) (*model.Forecast, error) {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return nil, &SchemaError{Field: "timezone", Reason: fmt.Sprintf("unknown zone %q", r.Timezone)}
	}

	if len(r.Hourly.Time) == 0 {
		return nil, &SchemaError{Field: "hourly.time", Reason: "empty"}
	}

	times := make([]time.Time, len(r.Hourly.Time))
	for i, raw := range r.Hourly.Time {
		t, err := time.ParseInLocation(apiTimeLayout, raw, loc)
		if err != nil {
			return nil, &SchemaError{Field: "hourly.time", Reason: fmt.Sprintf("bad timestamp %q", raw)}
		}
		times[i] = t
	}

	single := len(models) == 1
	series := make([]model.ModelSeries, 0, len(models))
	for _, mdl := range models {
		tempKey := fieldName(varTemperature, mdl, single)
		precipKey := fieldName(varPrecipitation, mdl, single)

		temps, err := r.Hourly.column(tempKey, len(times))
		if err != nil {
			return nil, err
		}
		precips, err := r.Hourly.column(precipKey, len(times))
		if err != nil {
			return nil, err
		}
		if err := checkUnit(r.HourlyUnits, tempKey, "°C"); err != nil {
			return nil, err
		}
		if err := checkUnit(r.HourlyUnits, precipKey, "mm"); err != nil {
			return nil, err
		}

		samples := make([]model.Sample, len(times))
		for i := range times {
			samples[i] = model.Sample{Temp: temps[i], Precip: precips[i]}
		}
		series = append(series, model.ModelSeries{Model: mdl, Samples: samples})
	}

	return &model.Forecast{
		Times:    times,
		Series:   series,
		Timezone: loc,
		GridCoord: model.Coordinate{
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		},
	}, nil
}

func (r *currentResponse) toCurrent() (*model.Current, error) {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return nil, &SchemaError{Field: "timezone", Reason: fmt.Sprintf("unknown zone %q", r.Timezone)}
	}

	t, err := time.ParseInLocation(apiTimeLayout, r.Current.Time, loc)
	if err != nil {
		return nil, &SchemaError{Field: "current.time", Reason: fmt.Sprintf("bad timestamp %q", r.Current.Time)}
	}

	if err := checkUnit(r.CurrentUnits, varTemperature, "°C"); err != nil {
		return nil, err
	}
	if err := checkUnit(r.CurrentUnits, varPrecipitation, "mm"); err != nil {
		return nil, err
	}

	return &model.Current{
		Sample: model.Sample{
			Temp:   r.Current.Temperature,
			Precip: r.Current.Precipitation,
		},
		Time: t,
		GridCoord: model.Coordinate{
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		},
	}, nil
}
