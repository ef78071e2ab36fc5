package schema

// BookingDates carries the check-in and check-out calendar dates of a
// booking, both formatted YYYY-MM-DD. Date ordering is not validated on
// this side, the booking service is authoritative.
type BookingDates struct {
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
}

// Booking is the wire representation of a booking payload. Additionalneeds
// is a pointer so an unset value disappears from the serialized form
// entirely; the remote service distinguishes "absent" from "empty".
type Booking struct {
	Firstname       string       `json:"firstname"`
	Lastname        string       `json:"lastname"`
	Totalprice      int          `json:"totalprice"`
	Depositpaid     bool         `json:"depositpaid"`
	Bookingdates    BookingDates `json:"bookingdates"`
	Additionalneeds *string      `json:"additionalneeds,omitempty"`
}

// BookingRecord is the create-booking response: the service-assigned id
// paired with the booking as echoed back.
type BookingRecord struct {
	Bookingid int     `json:"bookingid"`
	Booking   Booking `json:"booking"`
}

// BookingID is one element of the booking collection listing.
type BookingID struct {
	Bookingid int `json:"bookingid"`
}

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

// BookingFilters are the optional query parameters of the collection
// listing. Empty fields are dropped from the encoded query string.
type BookingFilters struct {
	Firstname string `url:"firstname,omitempty"`
	Lastname  string `url:"lastname,omitempty"`
	Checkin   string `url:"checkin,omitempty"`
	Checkout  string `url:"checkout,omitempty"`
}

// BookingPatch is a partial-update body. Only non-nil fields serialize, so
// a PATCH touches exactly the fields the caller supplied.
type BookingPatch struct {
	Firstname       *string       `json:"firstname,omitempty"`
	Lastname        *string       `json:"lastname,omitempty"`
	Totalprice      *int          `json:"totalprice,omitempty"`
	Depositpaid     *bool         `json:"depositpaid,omitempty"`
	Bookingdates    *BookingDates `json:"bookingdates,omitempty"`
	Additionalneeds *string       `json:"additionalneeds,omitempty"`
}
