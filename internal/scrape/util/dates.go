package util

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const DateLayout = "2006-01-02"

// ParseCalendarDate parses the heterogeneous date strings that show up in
// feeds and job boards. The second return is false when the input is
// unparsable; callers decide fail-open vs fail-closed at the use site.
func ParseCalendarDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
