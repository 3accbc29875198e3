package service

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate accepts ISO, DD-MM-YYYY and RFC 3339 dates. An empty value
// yields the zero time, which the services replace with their defaults.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, validationError("invalid date %q", raw)
}

// timestamp is the stored form of an instant: UTC, whole seconds.
func timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// dateOnly drops the clock part, keeping the calendar day in UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
