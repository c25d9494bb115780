// ABOUTME: ISO calendar-date helpers used as record keys.
// ABOUTME: Dates are stored as zero-padded YYYY-MM-DD strings.
package models

import "time"

// DateLayout is the stored date format.
const DateLayout = "2006-01-02"

// FormatDate renders t's calendar day in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// IsDate reports whether s is a well-formed YYYY-MM-DD date.
func IsDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}
