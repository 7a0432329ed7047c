package validators

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	ErrInvalidDate = errors.New("invalid date")
)

func IsEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsClock reports whether s is a 24h "HH:MM" time.
func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}

// NormalizeDate accepts "YYYY-MM-DD" or an RFC 3339 timestamp and returns
// the calendar day it names as "YYYY-MM-DD".
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d.Format(DateLayout), nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.Format(DateLayout), nil
	}
	return "", ErrInvalidDate
}

// DayIn parses a normalized day as midnight in loc.
func DayIn(day string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, day, loc)
}

// At combines a day and an "HH:MM" clock time in loc.
func At(day, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" 15:04", day+" "+clock, loc)
}
