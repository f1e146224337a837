package gym

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted textual form of a session date.
const DateLayout = "2006-01-02"

// ValidateDate reports ErrInvalidFormat unless s is a real calendar date
// written as YYYY-MM-DD.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("%w: date %q, use YYYY-MM-DD", ErrInvalidFormat, s)
	}
	return nil
}

// MonthPattern returns the LIKE pattern matching every session date in the
// given month. Matching is by string prefix, not by calendar.
func MonthPattern(year, month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidFormat, month)
	}
	return fmt.Sprintf("%d-%02d-%%", year, month), nil
}

// MonthTitle formats a month the way report titles show it, e.g. "May 2024".
func MonthTitle(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
