package console

import (
	"strings"
)

// SameCalendarDay reports whether an appointment date falls on the given
// calendar day. Dates arrive as ISO strings in several precisions (date only,
// date-time, with or without zone), so the comparison is a prefix match on the
// "2006-01-02" form, not a timezone-aware one.
func SameCalendarDay(dateValue string, day string) bool {
	return day != "" && strings.HasPrefix(dateValue, day)
}

// SameCalendarMonth is the "2006-01" counterpart of SameCalendarDay.
func SameCalendarMonth(dateValue string, month string) bool {
	return month != "" && strings.HasPrefix(dateValue, month)
}
