package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mzagar/openmeteo/internal/api"
	"github.com/mzagar/openmeteo/internal/config"
	"github.com/mzagar/openmeteo/internal/dates"
	"github.com/mzagar/openmeteo/internal/geocode"
	"github.com/mzagar/openmeteo/internal/location"
	"github.com/mzagar/openmeteo/internal/model"
	"github.com/mzagar/openmeteo/internal/report"
	"github.com/mzagar/openmeteo/internal/version"
)

const usage = `Usage: openmeteo <command> [flags] <args>

Commands:
  forecast <location> [<date-range>]  hourly forecast table
  current <location>                  current conditions
  version                             print build version

The location is a place name ("zagreb") or a literal coordinate
("45.8150,15.9819"). The date range accepts today, tomorrow, weekday
names, +N, YYYY-MM-DD, and spans like "mon..thu" or "..+3"; when
omitted it defaults to today.

Flags:
  -config path   YAML config file (optional, defaults apply without one)
  -models list   comma-separated forecast models
  -full          keep hourly rows for every day (default compacts to 3h)
  -json          emit NDJSON rows instead of a table
  -v, -verbose   verbose: debug logging, grid cell, timezone, interval
`

// defaultDateSpec is used when the date-range argument is omitted.
const defaultDateSpec = "today"

func main() {
	// Optional .env for local overrides, missing file is fine.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "forecast":
		runForecast(os.Args[2:])
	case "current":
		runCurrent(os.Args[2:])
	case "version":
		fmt.Println(version.String())
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "openmeteo: unknown command %q\n\n", os.Args[1])
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

type options struct {
	cfg      *config.Config
	logger   *slog.Logger
	models   modelsFlag
	full     bool
	jsonOut  bool
	location string
	dateSpec string
}

type modelsFlag []string

func (m *modelsFlag) String() string { return fmt.Sprint([]string(*m)) }

func (m *modelsFlag) Set(v string) error {
	*m = nil
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return errors.New("empty model name")
		}
		*m = append(*m, part)
	}
	return nil
}

// parseArgs handles the flags shared by forecast and current, returning
// the positional arguments that follow them.
func parseArgs(name string, args []string, wantDateSpec bool) *options {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	verbose := fs.Bool("v", false, "verbose output")
	fs.BoolVar(verbose, "verbose", false, "verbose output")
	full := fs.Bool("full", false, "keep hourly rows for every day")
	jsonOut := fs.Bool("json", false, "emit NDJSON instead of a table")
	var models modelsFlag
	fs.Var(&models, "models", "comma-separated forecast models")
	fs.Parse(args)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rest := fs.Args()
	if len(rest) < 1 {
		fmt.Fprintf(os.Stderr, "openmeteo: %s requires a location argument\n", name)
		os.Exit(2)
	}
	maxArgs := 1
	if wantDateSpec {
		maxArgs = 2
	}
	if len(rest) > maxArgs {
		fmt.Fprintf(os.Stderr, "openmeteo: too many arguments for %s\n", name)
		os.Exit(2)
	}

	opts := &options{
		cfg:      cfg,
		logger:   logger,
		models:   models,
		full:     *full,
		jsonOut:  *jsonOut,
		location: rest[0],
		dateSpec: defaultDateSpec,
	}
	if wantDateSpec && len(rest) == 2 {
		opts.dateSpec = rest[1]
	}
	if len(opts.models) == 0 {
		opts.models = cfg.Forecast.DefaultModels
	}
	return opts
}

func runForecast(args []string) {
	opts := parseArgs("forecast", args, true)
	ctx := context.Background()

	startTok, endTok, err := dates.ParseRange(opts.dateSpec)
	if err != nil {
		fail(opts.logger, err)
	}

	loc := resolveLocation(ctx, opts)

	client := api.NewClient(opts.cfg.API.BaseURL,
		api.WithTimeout(opts.cfg.API.Timeout),
		api.WithLogger(opts.logger),
	)

	forecast, err := client.GetForecast(ctx, loc.Coord, opts.models, opts.cfg.Forecast.Days)
	if err != nil {
		fail(opts.logger, err)
	}

	now := time.Now()
	interval := dates.ResolveInterval(startTok, endTok, forecast.Timezone, now)

	opts.logger.Debug("forecast resolved",
		"location", loc.DisplayName,
		"grid_cell", forecast.GridCoord.MapLink(),
		"timezone", forecast.Timezone.String(),
		"interval", interval.String(),
		"models", len(forecast.Series),
	)

	if !opts.full {
		forecast.Compact(now.In(forecast.Timezone))
	}

	if opts.jsonOut {
		if err := writeForecastRows(os.Stdout, forecast, interval); err != nil {
			fail(opts.logger, err)
		}
		return
	}

	renderForecast(os.Stdout, loc.DisplayName, forecast, interval)
}

func runCurrent(args []string) {
	opts := parseArgs("current", args, false)
	ctx := context.Background()

	loc := resolveLocation(ctx, opts)

	client := api.NewClient(opts.cfg.API.BaseURL,
		api.WithTimeout(opts.cfg.API.Timeout),
		api.WithLogger(opts.logger),
	)

	current, err := client.GetCurrent(ctx, loc.Coord)
	if err != nil {
		fail(opts.logger, err)
	}

	opts.logger.Debug("current conditions resolved",
		"location", loc.DisplayName,
		"grid_cell", current.GridCoord.MapLink(),
		"time", current.Time,
	)

	if opts.jsonOut {
		if err := writeCurrentRow(os.Stdout, current); err != nil {
			fail(opts.logger, err)
		}
		return
	}

	renderCurrent(os.Stdout, loc.DisplayName, current)
}

func resolveLocation(ctx context.Context, opts *options) location.Location {
	geocoder := geocode.NewClient(opts.cfg.Geocoder.BaseURL,
		geocode.WithUserAgent(opts.cfg.Geocoder.UserAgent),
		geocode.WithRateLimit(opts.cfg.Geocoder.RateLimit, opts.cfg.Geocoder.Burst),
		geocode.WithTimeout(opts.cfg.Geocoder.Timeout),
		geocode.WithLogger(opts.logger),
	)

	loc, err := location.Resolve(ctx, opts.location, geocoder)
	if err != nil {
		fail(opts.logger, err)
	}

	opts.logger.Debug("location resolved",
		"display_name", loc.DisplayName,
		"latitude", loc.Coord.Latitude,
		"longitude", loc.Coord.Longitude,
	)
	return loc
}

// renderForecast prints the headline and the aligned forecast table.
func renderForecast(w io.Writer, name string, f *model.Forecast, interval dates.Interval) {
	fmt.Fprintf(w, "Forecast for %s\n", name)
	report.ForecastTable(f, interval).Render(w)
}

func renderCurrent(w io.Writer, name string, c *model.Current) {
	fmt.Fprintf(w, "Current weather for %s\n", name)
	report.CurrentTable(c).Render(w)
}

// jsonRow is one NDJSON output line.
type jsonRow struct {
	Time          string  `json:"time"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Model         string  `json:"model,omitempty"`
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
}

// writeForecastRows emits one line per timestamp and model, skipping
// samples with an unreported value.
func writeForecastRows(w io.Writer, f *model.Forecast, interval dates.Interval) error {
	enc := json.NewEncoder(w)
	for i, ts := range f.Times {
		if !interval.Contains(ts) {
			continue
		}
		for _, s := range f.Series {
			sample := s.Samples[i]
			if sample.Temp == nil || sample.Precip == nil {
				continue
			}
			row := jsonRow{
				Time:          ts.Format(time.RFC3339),
				Latitude:      f.GridCoord.Latitude,
				Longitude:     f.GridCoord.Longitude,
				Model:         s.Model,
				Temperature:   *sample.Temp,
				Precipitation: *sample.Precip,
			}
			if err := enc.Encode(row); err != nil {
				return fmt.Errorf("encode row: %w", err)
			}
		}
	}
	return nil
}

func writeCurrentRow(w io.Writer, c *model.Current) error {
	if c.Temp == nil || c.Precip == nil {
		return nil
	}
	row := jsonRow{
		Time:          c.Time.Format(time.RFC3339),
		Latitude:      c.GridCoord.Latitude,
		Longitude:     c.GridCoord.Longitude,
		Temperature:   *c.Temp,
		Precipitation: *c.Precip,
	}
	if err := json.NewEncoder(w).Encode(row); err != nil {
		return fmt.Errorf("encode row: %w", err)
	}
	return nil
}

// fail reports the error and exits. Input mistakes get a plain one-line
// message, upstream failures go through the logger.
func fail(logger *slog.Logger, err error) {
	var parseErr *dates.ParseError
	var rangeErr *location.RangeError
	var notFound *location.NotFoundError
	if errors.As(err, &parseErr) || errors.As(err, &rangeErr) || errors.As(err, &notFound) {
		fmt.Fprintf(os.Stderr, "openmeteo: %v\n", err)
		os.Exit(1)
	}
	logger.Error("request failed", "error", err)
	os.Exit(1)
}
