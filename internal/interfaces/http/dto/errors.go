package dto

import "net/http"

// Error code constants
// Format: ERR_<CATEGORY>_<DESCRIPTION>
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeValidation is used when a payload fails shape or cross-field rules
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeNotFound is used when a direct lookup finds nothing
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeParentNotFound is used when a supplied parent reference does not resolve
	ErrCodeParentNotFound = "ERR_PARENT_NOT_FOUND"
	// ErrCodeMissingParent is used when neither parent reference could be established
	ErrCodeMissingParent = "ERR_MISSING_PARENT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:       http.StatusInternalServerError,
	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeInvalidJSON:    http.StatusBadRequest,
	ErrCodeValidation:     http.StatusBadRequest,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeParentNotFound: http.StatusNotFound,
	ErrCodeMissingParent:  http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NormalizeErrorCode converts a domain error code to its HTTP error code
func NormalizeErrorCode(domainCode string) string {
	switch domainCode {
	case "NOT_FOUND":
		return ErrCodeNotFound
	case "PARENT_NOT_FOUND":
		return ErrCodeParentNotFound
	case "MISSING_PARENT":
		return ErrCodeMissingParent
	case "INVALID_INPUT":
		return ErrCodeBadRequest
	default:
		return ErrCodeInternal
	}
}
