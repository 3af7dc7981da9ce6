package console

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityLogNewestFirst(t *testing.T) {
	activityLog := NewActivityLogService(10)

	activityLog.Record("jane@hospital.test", ActivityLogin, "")
	activityLog.Record("jane@hospital.test", ActivityBookingStatus, "b1")
	activityLog.Record("jane@hospital.test", ActivityLogout, "")

	entries := activityLog.GetRecent(0)
	assert.Len(t, entries, 3)
	assert.Equal(t, ActivityLogout, entries[0].Action)
	assert.Equal(t, ActivityBookingStatus, entries[1].Action)
	assert.Equal(t, "b1", entries[1].Subject)
	assert.Equal(t, ActivityLogin, entries[2].Action)
}

func TestActivityLogLimit(t *testing.T) {
	activityLog := NewActivityLogService(10)
	for i := 0; i < 5; i++ {
		activityLog.Record("jane@hospital.test", ActivityLogin, "")
	}

	assert.Len(t, activityLog.GetRecent(2), 2)
	assert.Len(t, activityLog.GetRecent(100), 5)
}

func TestActivityLogDropsOldestBeyondCapacity(t *testing.T) {
	activityLog := NewActivityLogService(3)
	for i := 0; i < 5; i++ {
		activityLog.Record("jane@hospital.test", ActivityBookingStatus, fmt.Sprintf("b%d", i))
	}

	entries := activityLog.GetRecent(0)
	assert.Len(t, entries, 3)
	assert.Equal(t, "b4", entries[0].Subject)
	assert.Equal(t, "b2", entries[2].Subject)
}

func TestActivityLogEntryIDsAreUnique(t *testing.T) {
	activityLog := NewActivityLogService(10)
	activityLog.Record("jane@hospital.test", ActivityLogin, "")
	activityLog.Record("jane@hospital.test", ActivityLogin, "")

	entries := activityLog.GetRecent(0)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}
