package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP status codes; anything else is treated as an internal error.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyLiked       = errors.New("recipe already liked")
	ErrForbidden          = errors.New("unauthorized")
	ErrUnknownImageType   = errors.New("unknown image type")
)
