// Package dates parses the CLI date-range syntax and resolves it into
// absolute, timezone-aware half-open intervals.
//
// Accepted tokens: today, tomorrow, weekday names (mon/monday, ...), +N
// for N days ahead, and absolute YYYY-MM-DD dates. Ranges join two tokens
// with ".." and are inclusive of the whole end date; either side may be
// omitted (start defaults to today, end to the full forecast horizon).
//
// Resolution is pure: the current instant and timezone are explicit
// parameters, never read from globals.
package dates
