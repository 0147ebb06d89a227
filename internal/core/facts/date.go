package facts

import (
	"strconv"
	"strings"
	"time"
)

// fallbackLayouts are tried when an order date is not in M/D/YYYY form
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseOrderDate parses a M/D/YYYY date, falling back to a handful of common layouts
// out of range day or month values roll over the way calendar arithmetic does (2/30 is March 1 or 2)
// the returned time is midnight UTC
func ParseOrderDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if t, ok := parseMonthFirst(s); ok {
		return t, true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// parseMonthFirst handles M/D/YYYY with an optional trailing time ("3/14/2023 0:00")
// a leading part longer than two digits is not a month, so YYYY/MM/DD falls through to the layouts
func parseMonthFirst(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	ms, ds := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	ys, _, _ := strings.Cut(strings.TrimSpace(parts[2]), " ")
	if len(ms) > 2 || len(ds) > 2 {
		return time.Time{}, false
	}
	m, err1 := strconv.Atoi(ms)
	d, err2 := strconv.Atoi(ds)
	y, err3 := strconv.Atoi(ys)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), true
}

// ISODate formats t as YYYY-MM-DD
func ISODate(t time.Time) string { return t.Format(time.DateOnly) }
