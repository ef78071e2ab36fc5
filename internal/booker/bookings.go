package booker

import (
	"context"
	"fmt"

	"bitbucket.org/crgw/booker-regression/internal/schema"
	"bitbucket.org/crgw/booker-regression/internal/tools/requesting"
)

// ListBookingIDs fetches the id collection. Only the non-empty filter
// fields end up in the query string.
func (s *Service) ListBookingIDs(ctx context.Context, filters *schema.BookingFilters) (*requesting.Response, error) {
	if filters == nil {
		return s.client.Get(ctx, bookingEndpoint, nil)
	}

	return s.client.Get(ctx, bookingEndpoint, filters)
}

func (s *Service) GetBooking(ctx context.Context, bookingID int) (*requesting.Response, error) {
	return s.client.Get(ctx, fmt.Sprintf("%s/%d", bookingEndpoint, bookingID), nil)
}

// CreateBooking posts a new booking. No credentials needed, the API keeps
// creation open.
func (s *Service) CreateBooking(ctx context.Context, booking schema.Booking) (*requesting.Response, error) {
	return s.client.Post(ctx, bookingEndpoint, booking)
}

func (s *Service) UpdateBooking(ctx context.Context, bookingID int, booking schema.Booking) (*requesting.Response, error) {
	headers, err := s.AuthHeaders(ctx)
	if err != nil {
		return nil, err
	}

	return s.client.Put(ctx, fmt.Sprintf("%s/%d", bookingEndpoint, bookingID), booking, headers)
}

func (s *Service) PartialUpdateBooking(ctx context.Context, bookingID int, patch schema.BookingPatch) (*requesting.Response, error) {
	headers, err := s.AuthHeaders(ctx)
	if err != nil {
		return nil, err
	}

	return s.client.Patch(ctx, fmt.Sprintf("%s/%d", bookingEndpoint, bookingID), patch, headers)
}

func (s *Service) DeleteBooking(ctx context.Context, bookingID int) (*requesting.Response, error) {
	headers, err := s.AuthHeaders(ctx)
	if err != nil {
		return nil, err
	}

	return s.client.Delete(ctx, fmt.Sprintf("%s/%d", bookingEndpoint, bookingID), headers)
}

// Ping is the liveness probe; the API answers 201.
func (s *Service) Ping(ctx context.Context) (*requesting.Response, error) {
	return s.client.Get(ctx, pingEndpoint, nil)
}
