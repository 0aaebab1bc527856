package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzagar/openmeteo/internal/model"
)

func TestParseDate(t *testing.T) {
	t.Run("today and tomorrow", func(t *testing.T) {
		tok, err := ParseDate("today")
		require.NoError(t, err)
		assert.Equal(t, Token{kind: kindToday}, tok)

		tok, err = ParseDate("tomorrow")
		require.NoError(t, err)
		assert.Equal(t, Token{kind: kindTomorrow}, tok)
	})

	t.Run("case insensitive", func(t *testing.T) {
		tok, err := ParseDate("TODAY")
		require.NoError(t, err)
		assert.Equal(t, Token{kind: kindToday}, tok)

		tok, err = ParseDate("Tomorrow")
		require.NoError(t, err)
		assert.Equal(t, Token{kind: kindTomorrow}, tok)

		tok, err = ParseDate("MONDAY")
		require.NoError(t, err)
		assert.Equal(t, Token{kind: kindWeekday, weekday: time.Monday}, tok)
	})

	t.Run("weekdays", func(t *testing.T) {
		cases := map[string]time.Weekday{
			"mon": time.Monday, "monday": time.Monday,
			"tue": time.Tuesday,
			"wed": time.Wednesday,
			"thu": time.Thursday,
			"fri": time.Friday,
			"sat": time.Saturday,
			"sun": time.Sunday, "sunday": time.Sunday,
		}
		for input, want := range cases {
			tok, err := ParseDate(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, Token{kind: kindWeekday, weekday: want}, tok, "input %q", input)
		}
	})

	t.Run("relative days", func(t *testing.T) {
		for input, want := range map[string]int{"+0": 0, "+1": 1, "+7": 7, "+16": 16} {
			tok, err := ParseDate(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, Token{kind: kindRelative, days: want}, tok, "input %q", input)
		}
	})

	t.Run("absolute", func(t *testing.T) {
		tok, err := ParseDate("2025-01-15")
		require.NoError(t, err)
		assert.Equal(t, kindAbsolute, tok.kind)
		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), tok.date)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, input := range []string{
			"", "yesterday", "invalid",
			"15-01-2025", // wrong order
			"2025/01/15", // wrong separator
			"+", "+x", "+-1",
		} {
			_, err := ParseDate(input)
			var perr *ParseError
			require.ErrorAs(t, err, &perr, "input %q", input)
			assert.Equal(t, input, perr.Input)
		}
	})
}

func TestParseRange(t *testing.T) {
	t.Run("single token covers itself", func(t *testing.T) {
		start, end, err := ParseRange("today")
		require.NoError(t, err)
		assert.Equal(t, Token{kind: kindToday}, start)
		assert.Equal(t, Token{kind: kindToday}, end)
	})

	t.Run("two-sided ranges", func(t *testing.T) {
		start, end, err := ParseRange("today..tomorrow")
		require.NoError(t, err)
		assert.Equal(t, Token{kind: kindToday}, start)
		assert.Equal(t, Token{kind: kindTomorrow}, end)

		start, end, err = ParseRange("mon..fri")
		require.NoError(t, err)
		assert.Equal(t, Token{kind: kindWeekday, weekday: time.Monday}, start)
		assert.Equal(t, Token{kind: kindWeekday, weekday: time.Friday}, end)

		start, end, err = ParseRange("+1..+3")
		require.NoError(t, err)
		assert.Equal(t, Token{kind: kindRelative, days: 1}, start)
		assert.Equal(t, Token{kind: kindRelative, days: 3}, end)
	})

	t.Run("open ended", func(t *testing.T) {
		// ..fri means today..fri
		start, end, err := ParseRange("..fri")
		require.NoError(t, err)
		assert.Equal(t, Token{kind: kindToday}, start)
		assert.Equal(t, Token{kind: kindWeekday, weekday: time.Friday}, end)

		// mon.. means mon..+16
		start, end, err = ParseRange("mon..")
		require.NoError(t, err)
		assert.Equal(t, Token{kind: kindWeekday, weekday: time.Monday}, start)
		assert.Equal(t, Token{kind: kindRelative, days: model.MaxForecastDays}, end)

		_, _, err = ParseRange("..")
		var perr *ParseError
		assert.ErrorAs(t, err, &perr)
	})

	t.Run("invalid side fails", func(t *testing.T) {
		_, _, err := ParseRange("invalid..today")
		assert.Error(t, err)
		_, _, err = ParseRange("today..invalid")
		assert.Error(t, err)
	})
}

// makeTime builds an instant on Wednesday 2025-01-15 UTC, the reference
// date for the weekday tests.
func makeTime(hour, min int) time.Time {
	return time.Date(2025, 1, 15, hour, min, 0, 0, time.UTC)
}

// resolveUTC parses a range expression and resolves it in UTC.
func resolveUTC(t *testing.T, expr string, now time.Time) Interval {
	t.Helper()
	start, end, err := ParseRange(expr)
	require.NoError(t, err)
	return ResolveInterval(start, end, time.UTC, now)
}

func TestResolveInterval(t *testing.T) {
	t.Run("start clamped to now", func(t *testing.T) {
		iv := resolveUTC(t, "today", makeTime(15, 30))
		assert.Equal(t, makeTime(15, 30), iv.Start)
		assert.Equal(t, time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), iv.End)
	})

	t.Run("end covers whole end date", func(t *testing.T) {
		iv := resolveUTC(t, "today..tomorrow", makeTime(12, 0))
		assert.Equal(t, time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), iv.End)
	})

	t.Run("hour 23 promotes today to tomorrow", func(t *testing.T) {
		iv := resolveUTC(t, "today", makeTime(23, 10))
		// Both ends promoted: the interval is exactly tomorrow.
		assert.Equal(t, time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), iv.Start)
		assert.Equal(t, time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), iv.End)
	})

	t.Run("hour 22 does not promote", func(t *testing.T) {
		iv := resolveUTC(t, "today", makeTime(22, 59))
		assert.Equal(t, makeTime(22, 59), iv.Start)
		assert.Equal(t, time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), iv.End)
	})

	t.Run("start never precedes now", func(t *testing.T) {
		for _, expr := range []string{"today", "today..tomorrow", "..fri", "2025-01-15"} {
			now := makeTime(18, 45)
			iv := resolveUTC(t, expr, now)
			assert.False(t, iv.Start.Before(now), "expr %q: start %v precedes now %v", expr, iv.Start, now)
			assert.True(t, iv.Start.Before(iv.End), "expr %q: empty interval", expr)
		}
	})

	t.Run("weekday range walks forward", func(t *testing.T) {
		// Reference is Wednesday 2025-01-15; the next Friday is the 17th,
		// the Sunday after it the 19th.
		iv := resolveUTC(t, "fri..sun", makeTime(10, 0))
		assert.Equal(t, time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), iv.Start)
		assert.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), iv.End)
	})

	t.Run("weekday end anchors at resolved start", func(t *testing.T) {
		// mon..thu from a Wednesday: Monday the 20th through Thursday the
		// 23rd, never the Thursday before the start.
		iv := resolveUTC(t, "mon..thu", makeTime(10, 0))
		assert.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), iv.Start)
		assert.Equal(t, time.Date(2025, 1, 24, 0, 0, 0, 0, time.UTC), iv.End)

		days := iv.End.Sub(iv.Start) / (24 * time.Hour)
		assert.LessOrEqual(t, int(days), 7, "weekday span longer than a week")
	})

	t.Run("relative days", func(t *testing.T) {
		iv := resolveUTC(t, "+2..+3", makeTime(10, 0))
		assert.Equal(t, time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), iv.Start)
		assert.Equal(t, time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), iv.End)
	})

	t.Run("absolute date unaffected by promotion", func(t *testing.T) {
		now := makeTime(23, 30)
		iv := resolveUTC(t, "2025-01-15", now)
		// Still clamped to now, but the end stays on the requested date.
		assert.Equal(t, now, iv.Start)
		assert.Equal(t, time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), iv.End)
	})

	t.Run("respects timezone", func(t *testing.T) {
		zagreb, err := time.LoadLocation("Europe/Zagreb")
		require.NoError(t, err)

		now := makeTime(10, 0) // 10:00 UTC
		start, end, err := ParseRange("tomorrow")
		require.NoError(t, err)

		ivUTC := ResolveInterval(start, end, time.UTC, now)
		ivZagreb := ResolveInterval(start, end, zagreb, now)

		// Zagreb midnight (UTC+1 in winter) is one hour before UTC midnight.
		assert.Equal(t, int64(-3600), ivZagreb.Start.Unix()-ivUTC.Start.Unix())
		y, m, d := ivZagreb.Start.Date()
		assert.Equal(t, [3]int{2025, 1, 16}, [3]int{y, int(m), d})
	})
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Start: makeTime(10, 0), End: makeTime(12, 0)}

	assert.True(t, iv.Contains(makeTime(10, 0)), "start is inclusive")
	assert.True(t, iv.Contains(makeTime(11, 59)))
	assert.False(t, iv.Contains(makeTime(12, 0)), "end is exclusive")
	assert.False(t, iv.Contains(makeTime(9, 59)))
}
