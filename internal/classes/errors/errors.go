package errors

import "errors"

var (
	ErrNotFound = errors.New("class not found")

	ErrNoSlotsAvailable = errors.New("no slots available")

	ErrDuplicateID = errors.New("duplicate class ID")

	ErrInvalidSeed = errors.New("invalid class seed")
)
