package domain

import "errors"

// Authentication errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

// PIN rotation errors
var (
	ErrPINFormat    = errors.New("pin must be exactly 4 digits")
	ErrPINUnchanged = errors.New("new pin must differ from current pin")
)

// Session errors
var (
	ErrSessionMalformed = errors.New("malformed session token")
	ErrSessionInvalid   = errors.New("session not authenticated")
	ErrSessionExpired   = errors.New("session has expired")
)

// Transaction errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrMissingFields       = errors.New("required fields missing")
	ErrInvalidCost         = errors.New("cost must be a valid number")
	ErrInvalidTreatment    = errors.New("unknown treatment type")
	ErrInvalidDate         = errors.New("invalid date")
)
