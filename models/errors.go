package models

import "github.com/pkg/errors"

// Domain error taxonomy. Services wrap these with context via
// errors.Wrap; handlers map them to HTTP status codes in utils.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("operation not allowed in current state")
	ErrValidation = errors.New("invalid input")
)
