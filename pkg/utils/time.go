package utils

import (
	"fmt"
	"time"
)

// ParseInstant parses an RFC3339 timestamp or a YYYY-MM-DD date and returns it in UTC.
// A bare date means midnight UTC of that day.
func ParseInstant(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected RFC3339 or YYYY-MM-DD", value)
	}
	return t, nil
}
