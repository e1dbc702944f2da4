package store

import "errors"

var (
	// ErrEmailConflict is returned when a user with the email already exists
	ErrEmailConflict = errors.New("email already exists")

	// ErrRecordNotFound wraps GORM's not found error for consistency
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidSeedUser is returned for seed entries missing required fields
	ErrInvalidSeedUser = errors.New("seed user requires email and password")
)
