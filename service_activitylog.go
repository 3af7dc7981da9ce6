package console

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type ActivityAction string

const (
	ActivityLogin         ActivityAction = "login"
	ActivityLogout        ActivityAction = "logout"
	ActivityRegistration  ActivityAction = "registration"
	ActivityBookingStatus ActivityAction = "booking-status-change"
)

type ActivityEntry struct {
	ID        uuid.UUID      `json:"id"`
	CreatedAt time.Time      `json:"timestamp"`
	Actor     string         `json:"actor"`
	Action    ActivityAction `json:"action"`
	Subject   string         `json:"subject,omitempty"`
}

// ActivityLogService keeps a bounded in-memory feed of console actions for the
// admin activity screen. Oldest entries are dropped once the capacity is
// reached; the feed is best effort and never persisted.
type ActivityLogService interface {
	Record(actor string, action ActivityAction, subject string)
	GetRecent(limit int) []ActivityEntry
}

type activityLogService struct {
	entries  []ActivityEntry
	capacity int
	mutex    sync.Mutex
}

func NewActivityLogService(capacity int) ActivityLogService {
	if capacity <= 0 {
		capacity = 256
	}
	return &activityLogService{
		entries:  make([]ActivityEntry, 0, capacity),
		capacity: capacity,
	}
}

func (s *activityLogService) Record(actor string, action ActivityAction, subject string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.entries = append(s.entries, ActivityEntry{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Actor:     actor,
		Action:    action,
		Subject:   subject,
	})
	if len(s.entries) > s.capacity {
		s.entries = s.entries[len(s.entries)-s.capacity:]
	}
}

// GetRecent returns up to limit entries, newest first.
func (s *activityLogService) GetRecent(limit int) []ActivityEntry {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}

	recent := make([]ActivityEntry, 0, limit)
	for i := len(s.entries) - 1; i >= len(s.entries)-limit; i-- {
		recent = append(recent, s.entries[i])
	}
	return recent
}
