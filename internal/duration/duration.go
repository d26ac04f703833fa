// Package duration parses the retention windows accepted by "chtools vacuum".
//
// Audit retention is measured in days, weeks, months or years ("30d", "6w",
// "3m", "1y"). time.ParseDuration stops at hours, so those units live here.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const day = 24 * time.Hour

// units maps a suffix to its length. Months and years are calendar
// approximations; retention does not need more precision.
var units = map[string]time.Duration{
	"d": day,
	"w": 7 * day,
	"m": 30 * day,
	"y": 365 * day,
}

var pattern = regexp.MustCompile(`^(\d+)([dwmy])$`)

// Parse converts "7d", "4w", "3m" or "1y" into a time.Duration.
func Parse(s string) (time.Duration, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid duration %q (use 30d, 6w, 3m or 1y)", s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return time.Duration(n) * units[m[2]], nil
}

// Before returns the instant that lies the window s before now.
func Before(s string, now time.Time) (time.Time, error) {
	d, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(-d), nil
}
