package core

import "errors"

// Validation and lookup errors returned by Store operations.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidDatetime = errors.New("invalid date/time format, use YYYY-MM-DD HH:MM")
	ErrInvalidID       = errors.New("invalid id")
	ErrNotFound        = errors.New("record not found")
)

// IsValidation reports whether err is a user input error that leaves the store untouched.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrInvalidDatetime) ||
		errors.Is(err, ErrInvalidID)
}
