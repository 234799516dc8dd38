package common

import "errors"

var (
	// Local storage errors.
	ErrStoreLocked = errors.New("token store passphrase is not set")

	// Input validation errors.
	ErrorValidation = errors.New("validation error")

	// Token inspection errors.
	ErrInvalidToken = errors.New("invalid token")
)
