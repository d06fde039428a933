package services

import "errors"

// Sentinel errors surfaced to controllers. Controllers map these onto the
// error-code taxonomy; anything else is treated as a storage failure.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrEstimateNotFound   = errors.New("estimate not found")
)
