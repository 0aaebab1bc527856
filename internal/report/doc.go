// Package report assembles forecast and current-conditions data into
// display tables: one row per timestamp, two leading Date/Hour columns,
// then a temperature and precipitation column pair per model with
// abbreviated model names as headers.
package report
