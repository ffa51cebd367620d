package normalize

import (
	"strings"
	"time"
)

// Accepted formats for reference-day flags.
var dateFormats = []string{
	"2006-01-02",
	"20060102",
	"02.01.2006",
	"2006/01/02",
}

// ParseDate parses s in one of the accepted formats, in the local zone.
// Returns nil if the input is empty or unparseable.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t
		}
	}
	return nil
}
