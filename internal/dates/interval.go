package dates

import (
	"fmt"
	"time"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls in the interval (start inclusive, end
// exclusive).
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s)", iv.Start.Format(time.RFC3339), iv.End.Format(time.RFC3339))
}

// ResolveInterval converts an inclusive date-token range into a half-open
// time interval in loc. The interval covers the whole end date, and its
// start is clamped forward to now so a same-day start never reaches back
// into already-elapsed hours.
//
// When the local hour is 23, any 'today' token resolves as tomorrow:
// hourly data for the almost-finished day is effectively gone, and with the
// start clamped to now the window would otherwise come out near-empty.
func ResolveInterval(start, end Token, loc *time.Location, now time.Time) Interval {
	now = now.In(loc)

	if now.Hour() == 23 {
		start = promoteToday(start)
		end = promoteToday(end)
	}

	today := dateOf(now)
	startDate := resolve(start, today, today)
	// Weekdays in the end position walk forward from the resolved start, so
	// the end of a range can never land before its start.
	endDate := resolve(end, today, startDate)

	startTime := midnight(startDate, loc)
	if now.After(startTime) {
		startTime = now
	}
	endTime := midnight(endDate.AddDate(0, 0, 1), loc)

	return Interval{Start: startTime, End: endTime}
}

// resolve maps a token to a calendar date. relativeTo anchors today/
// tomorrow/+N; weekdayStart anchors the forward weekday walk.
func resolve(tok Token, relativeTo, weekdayStart time.Time) time.Time {
	switch tok.kind {
	case kindToday:
		return relativeTo
	case kindTomorrow:
		return relativeTo.AddDate(0, 0, 1)
	case kindRelative:
		return relativeTo.AddDate(0, 0, tok.days)
	case kindWeekday:
		date := weekdayStart
		for date.Weekday() != tok.weekday {
			date = date.AddDate(0, 0, 1)
		}
		return date
	default:
		return tok.date
	}
}

func promoteToday(tok Token) Token {
	if tok.kind == kindToday {
		return Token{kind: kindTomorrow}
	}
	return tok
}

// dateOf strips the clock, keeping y/m/d as a UTC-midnight value used only
// for calendar arithmetic.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// midnight places a calendar date at 00:00 in loc.
func midnight(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
