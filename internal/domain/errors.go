package domain

import "errors"

// Lookup errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmailExists     = errors.New("email already registered")
)

// Validation errors
var (
	ErrInvalidUserID  = errors.New("user ID must be an integer")
	ErrEmptyIDList    = errors.New("ID list is empty")
	ErrMissingProfile = errors.New("profile not provided")
)
