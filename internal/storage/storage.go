package storage

import "errors"

var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoSeats         = errors.New("no seats available")
	ErrBookingNotFound = errors.New("booking not found")
)
