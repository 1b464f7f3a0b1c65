package domain

import "errors"

// ErrValidation is returned by service functions when input fails a business
// rule (e.g. missing required field, unknown status value).
// Handlers map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrInvalidID is returned when a caller-supplied identifier is not
// syntactically valid for the store (not a 24-char ObjectID hex string).
// Handlers map this to HTTP 400.
var ErrInvalidID = errors.New("invalid id")
