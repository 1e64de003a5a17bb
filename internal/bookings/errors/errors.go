package errors

import "errors"

var (
	ErrDuplicateID = errors.New("booking with this ID already exists")

	ErrInvalidBooking = errors.New("booking is missing required data")
)
