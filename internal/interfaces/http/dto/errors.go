package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "TOKEN_INVALID"
	ErrCodeTokenRevoked = "TOKEN_REVOKED"
)

// Resource error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeConflict      = "CONCURRENCY_CONFLICT"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall through to the prefix rules in GetHTTPStatus.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeTokenExpired:   http.StatusUnauthorized,
	ErrCodeTokenInvalid:   http.StatusUnauthorized,
	ErrCodeTokenRevoked:   http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_LOCKED":      http.StatusUnauthorized,
	"ACCOUNT_INACTIVE":    http.StatusUnauthorized,
	"ACCOUNT_DEACTIVATED": http.StatusUnauthorized,
	"STATION_INACTIVE":    http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,

	ErrCodeNotFound:      http.StatusNotFound,
	"USER_NOT_FOUND":     http.StatusNotFound,
	"PUMP_NOT_FOUND":     http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,
	"DUPLICATE_READING":  http.StatusConflict,
	"DUPLICATE_NOZZLE":   http.StatusConflict,
	"NUMBER_USED":        http.StatusConflict,
	"BOOKLET_ACTIVE":     http.StatusConflict,

	// Business rule violations -> 422 Unprocessable Entity
	"INSUFFICIENT_BALANCE":   http.StatusUnprocessableEntity,
	"BALANCE_OUTSTANDING":    http.StatusUnprocessableEntity,
	"CUSTOMER_INACTIVE":      http.StatusUnprocessableEntity,
	"BOOKLET_NOT_ACTIVE":     http.StatusUnprocessableEntity,
	"BOOKLET_MISMATCH":       http.StatusUnprocessableEntity,
	"VEHICLE_MISMATCH":       http.StatusUnprocessableEntity,
	"NO_ACTIVE_BOOKLET":      http.StatusUnprocessableEntity,
	"NUMBER_OUT_OF_RANGE":    http.StatusUnprocessableEntity,
	"FUEL_NOT_CONFIGURED":    http.StatusUnprocessableEntity,
	"FUEL_NOT_DISPENSED":     http.StatusUnprocessableEntity,
	"TANK_CAPACITY_EXCEEDED": http.StatusUnprocessableEntity,
	"READING_OUT_OF_ORDER":   http.StatusUnprocessableEntity,
	"MISSING_CLOSING":        http.StatusUnprocessableEntity,
	"SHIFT_COMPLETED":        http.StatusUnprocessableEntity,
	"SHIFT_ALREADY_ACTIVE":   http.StatusUnprocessableEntity,
	"SHIFT_NOT_ACTIVE":       http.StatusUnprocessableEntity,
	"PUMP_RETIRED":           http.StatusUnprocessableEntity,
	"PUMP_NOT_OPERATIONAL":   http.StatusUnprocessableEntity,
	"NOT_LOCKED":             http.StatusUnprocessableEntity,
	"UPLOAD_INCOMPLETE":      http.StatusUnprocessableEntity,

	// Disabled features -> 503 Service Unavailable
	"PRINTING_DISABLED": http.StatusServiceUnavailable,
	"STORAGE_DISABLED":  http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unmapped INVALID_ and ALREADY_ codes are treated as input and state
// errors; anything else is an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	if strings.HasPrefix(code, "ALREADY_") {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
