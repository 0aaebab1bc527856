// Package tabular renders aligned fixed-width text tables and provides the
// column-label helpers used to build them: minimal unambiguous prefix
// abbreviations and run-length blanking of repeated values.
package tabular
