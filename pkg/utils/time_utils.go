package utils

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// ParseDate turns an optional "YYYY-MM-DD" string into a date column value.
func ParseDate(field string, s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be formatted as %s", ErrInvalidInput, field, DateLayout)
	}
	d := datatypes.Date(t)
	return &d, nil
}

// ParseTimestamp accepts RFC 3339 timestamps and returns them in UTC.
func ParseTimestamp(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an RFC 3339 timestamp", ErrInvalidInput, field)
	}
	t = t.UTC()
	return &t, nil
}
