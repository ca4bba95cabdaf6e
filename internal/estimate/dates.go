package estimate

import "time"

// dateLayouts covers the formats lead providers actually ship.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
}

// ParseDate parses a provider-supplied date string. The second return value is
// false for empty or unparseable input, which every caller treats as an absent
// field rather than an error.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
