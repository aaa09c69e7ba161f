package service

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)
