package users

import "errors"

var (
	ErrMissingEmail       = errors.New("missing email")
	ErrMissingPassword    = errors.New("missing password")
	ErrEmailAlreadyExists = errors.New("email already exists")
)
