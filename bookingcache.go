package console

import (
	"sync"
)

// BookingCache keeps the last successfully fetched booking list so repeated
// dashboard and list reads do not hammer the backend. It is invalidated by
// status updates and by booking change events from the long-poll feed.
type BookingCache interface {
	Invalidate()
	Set([]Booking)
	GetAll() ([]Booking, bool)
	GetByID(id string) (Booking, bool)
}

type bookingCache struct {
	bookings       []Booking
	bookingMapByID map[string]*Booking
	mutex          sync.Mutex
}

func NewBookingCache() BookingCache {
	return &bookingCache{}
}

func (bc *bookingCache) Invalidate() {
	bc.mutex.Lock()
	defer bc.mutex.Unlock()
	bc.bookings = nil
	bc.bookingMapByID = nil
}

func (bc *bookingCache) Set(bookings []Booking) {
	bc.mutex.Lock()
	defer bc.mutex.Unlock()
	bc.bookings = bookings
	bc.bookingMapByID = make(map[string]*Booking, len(bookings))
	for i := range bookings {
		bc.bookingMapByID[bookings[i].ID] = &bookings[i]
	}
}

func (bc *bookingCache) GetAll() ([]Booking, bool) {
	bc.mutex.Lock()
	defer bc.mutex.Unlock()
	if bc.bookings == nil {
		return []Booking{}, false
	}
	return bc.bookings, true
}

func (bc *bookingCache) GetByID(id string) (Booking, bool) {
	bc.mutex.Lock()
	defer bc.mutex.Unlock()
	if bc.bookingMapByID == nil {
		return Booking{}, false
	}
	booking, ok := bc.bookingMapByID[id]
	if !ok {
		return Booking{}, false
	}
	return *booking, true
}
