package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: malformed request.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: missing or invalid credentials.
	StatusUnauthorized = 401
	// StatusNotFound - 404: resource does not exist.
	StatusNotFound = 404
	// StatusInternalServerError - 500: server-side failure.
	StatusInternalServerError = 500
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: missing, malformed or expired token.
	ErrTokenInvalid
	// ErrInvalidCredentials - 401: unknown username or wrong password.
	ErrInvalidCredentials
)

// Client error codes (101xxx).
const (
	// ErrClientNotFound - 404: client does not exist.
	ErrClientNotFound int = iota + 101000
	// ErrClientFieldsRequired - 400: missing required submission fields.
	ErrClientFieldsRequired
)

// Estimate error codes (102xxx).
const (
	// ErrEstimateNotFound - 404: estimate does not exist.
	ErrEstimateNotFound int = iota + 102000
	// ErrEstimateClientRequired - 400: client_id missing from request.
	ErrEstimateClientRequired
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: backing store failure.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)
