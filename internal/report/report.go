package report

import (
	"github.com/mzagar/openmeteo/internal/dates"
	"github.com/mzagar/openmeteo/internal/model"
	"github.com/mzagar/openmeteo/internal/tabular"
)

// ForecastTable builds the display table for the timestamps inside the
// interval. Model columns keep the order of f.Series; their headers carry
// the shortest unambiguous abbreviation of each model name.
func ForecastTable(f *model.Forecast, interval dates.Interval) *tabular.Table {
	rows := make([]int, 0, len(f.Times))
	for i, ts := range f.Times {
		if interval.Contains(ts) {
			rows = append(rows, i)
		}
	}

	days := make([]string, len(rows))
	hours := make([]string, len(rows))
	for i, idx := range rows {
		days[i] = f.Times[idx].Format("2006-01-02")
		hours[i] = f.Times[idx].Format("15") + "h"
	}

	names := make([]string, len(f.Series))
	for i, s := range f.Series {
		names[i] = s.Model
	}
	abbrevs := tabular.Shorten(names)

	table := tabular.New().
		Column("Date", tabular.DedupConsecutive(days, "")).
		Column("Hour", hours)

	for si, s := range f.Series {
		temps := make([]string, len(rows))
		precips := make([]string, len(rows))
		for i, idx := range rows {
			temps[i] = model.FormatTemp(s.Samples[idx].Temp)
			precips[i] = model.FormatPrecip(s.Samples[idx].Precip)
		}
		table.
			Column(abbrevs[si]+"\nTemp", temps).
			Column(abbrevs[si]+"\nPrecip", precips)
	}

	return table
}

// CurrentTable builds a one-row table for current conditions.
func CurrentTable(c *model.Current) *tabular.Table {
	return tabular.New().
		Column("Time", []string{c.Time.Format("2006-01-02 15:04")}).
		Column("Temp", []string{model.FormatTemp(c.Temp)}).
		Column("Precip", []string{model.FormatPrecip(c.Precip)})
}
