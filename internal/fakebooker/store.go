package fakebooker

import (
	"sync"

	"bitbucket.org/crgw/booker-regression/internal/schema"
)

type store struct {
	bookings map[int]schema.Booking
	nextID   int
	sync.Mutex
}

func newStore() *store {
	return &store{
		bookings: make(map[int]schema.Booking),
		nextID:   1,
	}
}

func (s *store) Create(booking schema.Booking) int {
	s.Lock()
	defer s.Unlock()

	id := s.nextID
	s.nextID++
	s.bookings[id] = booking

	return id
}

func (s *store) Get(id int) (schema.Booking, bool) {
	s.Lock()
	defer s.Unlock()

	booking, ok := s.bookings[id]

	return booking, ok
}

// List returns the ids of bookings matching the filters. Name filters are
// exact matches; date filters compare lexically, which is sound for
// YYYY-MM-DD strings: checkin at or after, checkout at or before.
func (s *store) List(filters schema.BookingFilters) []schema.BookingID {
	s.Lock()
	defer s.Unlock()

	ids := []schema.BookingID{}
	for id, booking := range s.bookings {
		if filters.Firstname != "" && booking.Firstname != filters.Firstname {
			continue
		}
		if filters.Lastname != "" && booking.Lastname != filters.Lastname {
			continue
		}
		if filters.Checkin != "" && booking.Bookingdates.Checkin < filters.Checkin {
			continue
		}
		if filters.Checkout != "" && booking.Bookingdates.Checkout > filters.Checkout {
			continue
		}

		ids = append(ids, schema.BookingID{Bookingid: id})
	}

	return ids
}

func (s *store) Replace(id int, booking schema.Booking) bool {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return false
	}

	s.bookings[id] = booking

	return true
}

// Patch applies the non-nil fields of the patch and returns the updated
// booking.
func (s *store) Patch(id int, patch schema.BookingPatch) (schema.Booking, bool) {
	s.Lock()
	defer s.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return schema.Booking{}, false
	}

	if patch.Firstname != nil {
		booking.Firstname = *patch.Firstname
	}
	if patch.Lastname != nil {
		booking.Lastname = *patch.Lastname
	}
	if patch.Totalprice != nil {
		booking.Totalprice = *patch.Totalprice
	}
	if patch.Depositpaid != nil {
		booking.Depositpaid = *patch.Depositpaid
	}
	if patch.Bookingdates != nil {
		booking.Bookingdates = *patch.Bookingdates
	}
	if patch.Additionalneeds != nil {
		booking.Additionalneeds = patch.Additionalneeds
	}

	s.bookings[id] = booking

	return booking, true
}

func (s *store) Delete(id int) bool {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return false
	}

	delete(s.bookings, id)

	return true
}
