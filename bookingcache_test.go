package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingCacheSetAndGet(t *testing.T) {
	cache := NewBookingCache()

	_, ok := cache.GetAll()
	assert.False(t, ok)

	cache.Set([]Booking{
		{ID: "b1", Status: BookingStatusPending},
		{ID: "b2", Status: BookingStatusConfirmed},
	})

	bookings, ok := cache.GetAll()
	assert.True(t, ok)
	assert.Len(t, bookings, 2)

	booking, ok := cache.GetByID("b2")
	assert.True(t, ok)
	assert.Equal(t, BookingStatusConfirmed, booking.Status)

	_, ok = cache.GetByID("b3")
	assert.False(t, ok)
}

func TestBookingCacheInvalidate(t *testing.T) {
	cache := NewBookingCache()
	cache.Set([]Booking{{ID: "b1"}})

	cache.Invalidate()

	bookings, ok := cache.GetAll()
	assert.False(t, ok)
	assert.Len(t, bookings, 0)

	_, ok = cache.GetByID("b1")
	assert.False(t, ok)
}

func TestBookingCacheEmptyListIsCached(t *testing.T) {
	cache := NewBookingCache()
	cache.Set([]Booking{})

	bookings, ok := cache.GetAll()
	assert.True(t, ok)
	assert.Len(t, bookings, 0)
}
