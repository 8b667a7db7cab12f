package domain

import "errors"

// Failure kinds recognized at the HTTP boundary. Repositories and use
// cases wrap these with context via fmt.Errorf and %w; the delivery
// layer inspects them once with errors.Is. Anything that matches none
// of them is treated as an unexpected server error.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
