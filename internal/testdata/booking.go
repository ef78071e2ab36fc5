// Package testdata builds valid booking payloads with overridable defaults
// so scenarios only spell out the fields they care about.
package testdata

import (
	"encoding/json"

	"bitbucket.org/crgw/booker-regression/internal/schema"
	"bitbucket.org/crgw/booker-regression/internal/tools/converting"
)

type Option func(b *schema.Booking)

func WithFirstname(firstname string) Option {
	return func(b *schema.Booking) {
		b.Firstname = firstname
	}
}

func WithLastname(lastname string) Option {
	return func(b *schema.Booking) {
		b.Lastname = lastname
	}
}

func WithTotalprice(totalprice int) Option {
	return func(b *schema.Booking) {
		b.Totalprice = totalprice
	}
}

func WithDepositpaid(depositpaid bool) Option {
	return func(b *schema.Booking) {
		b.Depositpaid = depositpaid
	}
}

// WithDates overrides the nested date range from a raw checkin/checkout
// pair.
func WithDates(checkin string, checkout string) Option {
	return func(b *schema.Booking) {
		b.Bookingdates = schema.BookingDates{
			Checkin:  checkin,
			Checkout: checkout,
		}
	}
}

// WithBookingDates overrides the nested date range with a structured value.
func WithBookingDates(dates schema.BookingDates) Option {
	return func(b *schema.Booking) {
		b.Bookingdates = dates
	}
}

func WithAdditionalneeds(needs string) Option {
	return func(b *schema.Booking) {
		b.Additionalneeds = converting.PointerToValue(needs)
	}
}

// WithoutAdditionalneeds drops the field from the serialized form entirely.
func WithoutAdditionalneeds() Option {
	return func(b *schema.Booking) {
		b.Additionalneeds = nil
	}
}

// ValidBooking returns a booking that the remote service accepts, with any
// overrides applied on top of the defaults.
func ValidBooking(optionFuncs ...Option) schema.Booking {
	booking := schema.Booking{
		Firstname:   "John",
		Lastname:    "Doe",
		Totalprice:  150,
		Depositpaid: true,
		Bookingdates: schema.BookingDates{
			Checkin:  "2025-01-01",
			Checkout: "2025-01-10",
		},
		Additionalneeds: converting.PointerToValue("Breakfast"),
	}

	for _, optionFunc := range optionFuncs {
		optionFunc(&booking)
	}

	return booking
}

// BookingPayload is ValidBooking pre-serialized to wire form.
func BookingPayload(optionFuncs ...Option) []byte {
	payload, _ := json.Marshal(ValidBooking(optionFuncs...))

	return payload
}

// AsMap round-trips a booking through JSON, producing the map shape the
// field-subset assertions compare against.
func AsMap(booking schema.Booking) map[string]any {
	payload, _ := json.Marshal(booking)

	var decoded map[string]any
	_ = json.Unmarshal(payload, &decoded)

	return decoded
}
