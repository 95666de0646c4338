// utils/dates.go
package utils

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate parses a calendar date from the form payloads, which submit either
// a plain date or a full RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}
