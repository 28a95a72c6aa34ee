package service

import "errors"

var (
	// ErrValidation wraps all rejected-input failures so handlers can
	// map them to a 400 without inspecting message text.
	ErrValidation = errors.New("validation failed")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
