package services

import "errors"

// Sentinel errors shared across services; controllers map these to
// HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPendingApproval    = errors.New("account pending approval")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("invalid state or conflict")
	ErrValidation         = errors.New("validation failed")
)
