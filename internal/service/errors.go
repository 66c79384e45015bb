package service

import "errors"

var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrPreferencesNotFound = errors.New("preferences not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserExists          = errors.New("user already exists")
	ErrPasswordMismatch    = errors.New("passwords do not match")
)
