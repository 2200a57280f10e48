package models

import "errors"

// Core failure taxonomy. Services wrap these with operation detail via
// fmt.Errorf and %w; handlers classify with errors.Is and map them onto
// HTTP status codes.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrPolicy     = errors.New("not allowed")
)
