package model

import (
	"encoding/json"
	"time"
)

type Booking struct {
	ID          string    `json:"id"`
	ClassID     string    `json:"class_id"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	BookedAt    time.Time `json:"booked_at"`
}

type BookingRequest struct {
	ClassID     string `json:"class_id" validate:"required"`
	ClientName  string `json:"client_name" validate:"required,max=200"`
	ClientEmail string `json:"client_email" validate:"required,email"`
}

// MarshalJSON renders BookedAt with a numeric offset in the zone it was recorded in.
func (b Booking) MarshalJSON() ([]byte, error) {
	type alias Booking
	return json.Marshal(struct {
		alias
		BookedAt string `json:"booked_at"`
	}{
		alias:    alias(b),
		BookedAt: FormatTimestamp(b.BookedAt),
	})
}
