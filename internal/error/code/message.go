package code

// Default messages per error code
var codeMessageMap = map[int]string{
	ErrSuccess:            "Success",
	ErrUnknown:            "Internal server error",
	ErrBind:               "Invalid request body",
	ErrValidation:         "Request validation failed",
	ErrTokenInvalid:       "Invalid or expired token",
	ErrInvalidCredentials: "Invalid credentials",

	ErrClientNotFound:       "Client not found",
	ErrClientFieldsRequired: "Name, email, phone, and ZIP are required",

	ErrEstimateNotFound:       "Estimate not found",
	ErrEstimateClientRequired: "client_id is required",

	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",
}

// HTTP status per error code
var codeStatusMap = map[int]int{
	ErrSuccess:            StatusOK,
	ErrUnknown:            StatusInternalServerError,
	ErrBind:               StatusBadRequest,
	ErrValidation:         StatusBadRequest,
	ErrTokenInvalid:       StatusUnauthorized,
	ErrInvalidCredentials: StatusUnauthorized,

	ErrClientNotFound:       StatusNotFound,
	ErrClientFieldsRequired: StatusBadRequest,

	ErrEstimateNotFound:       StatusNotFound,
	ErrEstimateClientRequired: StatusBadRequest,

	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the default message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Internal server error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
