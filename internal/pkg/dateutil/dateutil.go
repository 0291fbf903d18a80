package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// CalendarLayout is the only accepted wire format for calendar dates.
const CalendarLayout = "2006-01-02"

var (
	ErrInvalidFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidRange  = errors.New("start date cannot be after end date")
)

// ParseCalendarDate parses a strict YYYY-MM-DD string into a UTC-midnight
// instant. Non-existent calendar dates (e.g. 2023-02-30) are rejected.
func ParseCalendarDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(CalendarLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return t, nil
}

// UTCMidnight truncates t to midnight UTC. All date comparisons in the
// leave domain go through this so client and server timezones cannot drift.
func UTCMidnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InclusiveDayCount returns the number of calendar days spanned by
// [start, end] counting both endpoints, so the same day yields 1.
func InclusiveDayCount(start, end time.Time) (int, error) {
	s := UTCMidnight(start)
	e := UTCMidnight(end)
	if s.After(e) {
		return 0, ErrInvalidRange
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// FormatCalendarDate renders t as YYYY-MM-DD in UTC.
func FormatCalendarDate(t time.Time) string {
	return t.UTC().Format(CalendarLayout)
}
