package helpers

import (
	"fmt"
	"strings"
	"time"
)

// StringTrim normalizes incoming ids and query values: trims spaces
// and surrounding quotes which may occur when clients pass values as
// JSON strings or templates.
func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"'")
	return s
}

// ParseDate parses a client-supplied date. A bare calendar date reads
// as midnight UTC; a full RFC 3339 timestamp is taken as-is, so range
// bounds compare as full date-time values.
func ParseDate(s string) (time.Time, error) {
	s = StringTrim(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
}
