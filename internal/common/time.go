// Package common provides shared utilities used across CLI and server packages.
package common

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrEmptyTarget is returned when no target date/time was supplied.
var ErrEmptyTarget = errors.New("target date/time is empty")

// ErrInvalidAmount is returned when an amount is not a finite number.
var ErrInvalidAmount = errors.New("amount is not a finite number")

// targetLayouts are tried in order; all are interpreted in the local zone.
// The first is what an HTML datetime-local input submits.
var targetLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// ParseTarget parses a target date/time in the local time zone. RFC 3339
// values keep their explicit offset. The keyword "now" resolves to
// CurrentMinute(now).
func ParseTarget(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyTarget
	}
	if strings.EqualFold(s, "now") {
		return CurrentMinute(now), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.Local(), nil
	}
	for _, layout := range targetLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date/time %q (expected YYYY-MM-DDTHH:MM)", s)
}

// CurrentMinute returns now in the local zone with seconds and below cleared.
func CurrentMinute(now time.Time) time.Time {
	now = now.Local()
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, time.Local)
}

// FormatDateTimeLocal renders t the way a datetime-local input expects it.
func FormatDateTimeLocal(t time.Time) string {
	return t.Local().Format("2006-01-02T15:04")
}

// ParseAmount parses a decimal amount. NaN and infinities are rejected; the
// sign is left for the caller to check.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// FormatAmount renders an amount without trailing zeros: 36, 1.5, 0.25.
func FormatAmount(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// FormatSpan returns a compact breakdown of a millisecond span.
// Examples: "0s", "45s", "1d 12h", "365d 6h"
func FormatSpan(ms int64) string {
	if ms < 0 {
		ms = -ms
	}
	const (
		second = int64(1000)
		minute = 60 * second
		hour   = 60 * minute
		day    = 24 * hour
	)
	if ms < second {
		if ms == 0 {
			return "0s"
		}
		return fmt.Sprintf("%dms", ms)
	}

	var parts []string
	if d := ms / day; d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
		ms %= day
	}
	if h := ms / hour; h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
		ms %= hour
	}
	if m := ms / minute; m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
		ms %= minute
	}
	if s := ms / second; s > 0 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	return strings.Join(parts, " ")
}
