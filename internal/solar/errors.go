package solar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a query that could not be constructed. A day
// without sunrise or sunset is a valid Result, never an error.
type InvalidInputError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate parses a date or date-time. Values without an explicit offset
// are read as UTC, which is how event instants are expressed.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &InvalidInputError{Field: "date", Value: s, Err: errors.New("empty")}
	}
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, &InvalidInputError{Field: "date", Value: s, Err: lastErr}
}

// NewQuery builds a Query from a textual date. Only the date is validated.
func NewQuery(lat, lon float64, date string, tzOffsetHours float64) (Query, error) {
	t, err := ParseDate(date)
	if err != nil {
		return Query{}, err
	}
	return Query{Lat: lat, Lon: lon, Date: t, TZOffsetHours: tzOffsetHours}, nil
}
