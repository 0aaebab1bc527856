package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mzagar/openmeteo/internal/model"
)

type tokenKind int

const (
	kindToday tokenKind = iota
	kindTomorrow
	kindWeekday
	kindRelative
	kindAbsolute
)

// Token is a parsed date expression. It never carries a timezone; resolving
// it against a timezone and reference instant is ResolveInterval's job.
type Token struct {
	kind    tokenKind
	weekday time.Weekday
	days    int       // kindRelative: days ahead of the reference date
	date    time.Time // kindAbsolute: midnight UTC, calendar value only
}

// Today returns the token for the current date.
func Today() Token { return Token{kind: kindToday} }

// ParseError reports date text matching none of the accepted forms.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q: want YYYY-MM-DD, +N, a weekday name, 'today' or 'tomorrow'", e.Input)
}

var weekdays = map[string]time.Weekday{
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
	"sun": time.Sunday, "sunday": time.Sunday,
}

// ParseDate parses a single date token. Matching is case-insensitive.
func ParseDate(s string) (Token, error) {
	lower := strings.ToLower(s)

	switch lower {
	case "today":
		return Token{kind: kindToday}, nil
	case "tomorrow":
		return Token{kind: kindTomorrow}, nil
	}

	if wd, ok := weekdays[lower]; ok {
		return Token{kind: kindWeekday, weekday: wd}, nil
	}

	if rest, ok := strings.CutPrefix(lower, "+"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return Token{}, &ParseError{Input: s}
		}
		return Token{kind: kindRelative, days: n}, nil
	}

	d, err := time.Parse("2006-01-02", lower)
	if err != nil {
		return Token{}, &ParseError{Input: s}
	}
	return Token{kind: kindAbsolute, date: d}, nil
}

// ParseRange parses a date-range expression: a single token, or two tokens
// joined by "..". A missing start means today, a missing end means the full
// forecast horizon; a bare ".." is rejected.
func ParseRange(s string) (Token, Token, error) {
	before, after, found := strings.Cut(s, "..")
	if !found {
		d, err := ParseDate(s)
		if err != nil {
			return Token{}, Token{}, err
		}
		return d, d, nil
	}

	if before == "" && after == "" {
		return Token{}, Token{}, &ParseError{Input: s}
	}

	start := Token{kind: kindToday}
	if before != "" {
		var err error
		if start, err = ParseDate(before); err != nil {
			return Token{}, Token{}, err
		}
	}

	end := Token{kind: kindRelative, days: model.MaxForecastDays}
	if after != "" {
		var err error
		if end, err = ParseDate(after); err != nil {
			return Token{}, Token{}, err
		}
	}

	return start, end, nil
}
