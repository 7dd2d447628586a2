package service

import "errors"

// Error taxonomy surfaced to HTTP. NotFound and Forbidden stay distinct:
// a missing link and a time-gated link are different answers.
var (
	ErrValidation    = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrSlugTaken     = errors.New("short code already taken on this domain")
	ErrSlugExhausted = errors.New("could not generate a unique short code")
)
