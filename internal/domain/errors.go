package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// Uniqueness conflicts surfaced by the storage layer.
	ErrEmailTaken = errors.New("email already registered")
	ErrRoomTaken  = errors.New("room number already exists for this hotel")

	// Booking workflow refusals.
	ErrDuplicateBooking  = errors.New("identical active booking already exists")
	ErrRoomUnavailable   = errors.New("room unavailable for the requested period")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)
