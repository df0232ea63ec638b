package utils

import (
	"regexp"
	"strings"
	"time"
)

// Display format is dd-mm-yyyy; the backend expects yyyy-mm-dd.
const (
	DisplayDateLayout = "02-01-2006"
	BackendDateLayout = "2006-01-02"

	minYear = 2020
	maxYear = 2030
)

var displayDateRe = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// IsValidDisplayDate reports whether s is empty or a real calendar date in
// dd-mm-yyyy form with the year inside the accepted booking window.
func IsValidDisplayDate(s string) bool {
	if s == "" {
		return true
	}
	if !displayDateRe.MatchString(s) {
		return false
	}
	t, err := time.Parse(DisplayDateLayout, s)
	if err != nil {
		return false
	}
	// time.Parse normalizes overflows like 31-02; reject them.
	if t.Format(DisplayDateLayout) != s {
		return false
	}
	return t.Year() >= minYear && t.Year() <= maxYear
}

// ToBackendDate reorders a display date into backend form. An empty input
// stays empty; an otherwise invalid input falls back to today's date. The
// silent fallback mirrors long-standing desk behavior and is relied on by
// the add-guest flow, which validates dates before calling this.
func ToBackendDate(s string) string {
	if s == "" {
		return ""
	}
	if !IsValidDisplayDate(s) {
		return time.Now().Format(BackendDateLayout)
	}
	return s[6:] + "-" + s[3:5] + "-" + s[0:2]
}

// ToDisplayDate is the inverse reorder for valid backend dates. Anything
// that does not look like yyyy-mm-dd passes through unchanged.
func ToDisplayDate(s string) string {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return s
	}
	return s[8:] + "-" + s[5:7] + "-" + s[0:4]
}

// AutoFormatDate rebuilds a partially typed date from its digits, inserting
// hyphens after the day and month groups and truncating at dd-mm-yyyy
// length. The partial string need not be a valid date yet.
func AutoFormatDate(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > 8 {
		d = d[:8]
	}
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 4:
		return d[:2] + "-" + d[2:]
	default:
		return d[:2] + "-" + d[2:4] + "-" + d[4:]
	}
}

// StayOrderOK reports whether the checkout date is not chronologically
// before the check-in date (same-day stays are fine). Both inputs must be
// valid non-empty display dates; anything else is treated as acceptable so
// the per-field validation reports first.
func StayOrderOK(checkIn, checkOut string) bool {
	if checkIn == "" || checkOut == "" {
		return true
	}
	in, err := time.Parse(DisplayDateLayout, checkIn)
	if err != nil {
		return true
	}
	out, err := time.Parse(DisplayDateLayout, checkOut)
	if err != nil {
		return true
	}
	return !out.Before(in)
}

// TodayDisplay returns today's date in dd-mm-yyyy form.
func TodayDisplay() string {
	return time.Now().Format(DisplayDateLayout)
}
