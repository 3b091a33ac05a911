package service

import "errors"

// Error taxonomy shared by the services. Handlers map these onto HTTP status
// codes; everything else is a 500.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrGeneration   = errors.New("generation failed")
)
