package console_test

import (
	"testing"

	console "github.com/medassist/hospital-console"

	assert "github.com/go-playground/assert/v2"
)

func TestSameCalendarDay(t *testing.T) {
	assert.Equal(t, true, console.SameCalendarDay("2024-05-01", "2024-05-01"))
	assert.Equal(t, true, console.SameCalendarDay("2024-05-01T09:00:00Z", "2024-05-01"))
	assert.Equal(t, true, console.SameCalendarDay("2024-05-01 09:00", "2024-05-01"))

	assert.Equal(t, false, console.SameCalendarDay("2024-05-02", "2024-05-01"))
	assert.Equal(t, false, console.SameCalendarDay("", "2024-05-01"))
	assert.Equal(t, false, console.SameCalendarDay("2024-05-01", "")) // never match everything
}

func TestSameCalendarMonth(t *testing.T) {
	assert.Equal(t, true, console.SameCalendarMonth("2024-05-01", "2024-05"))
	assert.Equal(t, true, console.SameCalendarMonth("2024-05-31T23:59:59Z", "2024-05"))

	assert.Equal(t, false, console.SameCalendarMonth("2024-06-01", "2024-05"))
	assert.Equal(t, false, console.SameCalendarMonth("", "2024-05"))
	assert.Equal(t, false, console.SameCalendarMonth("2024-05-01", ""))
}
