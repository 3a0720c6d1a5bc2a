package dto

import (
	"net/http"
	"strings"
)

// Transport-level error codes
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_FAILED"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// LINKED_ENTITY_NOT_FOUND is a 422, not a 404: the addressed resource exists,
// a relation inside the request body does not.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeInternal:     http.StatusInternalServerError,

	"ALREADY_EXISTS":           http.StatusConflict,
	"ALREADY_DECIDED":          http.StatusConflict,
	"CONCURRENCY_CONFLICT":     http.StatusConflict,
	"LINKED_ENTITY_NOT_FOUND":  http.StatusUnprocessableEntity,
	"INVALID_STATE":            http.StatusUnprocessableEntity,
	"MATERIALIZATION_FAILED":   http.StatusInternalServerError,
	"INVALID_CREDENTIALS":      http.StatusUnauthorized,
	"WEAK_PASSWORD":            http.StatusBadRequest,
	"EMI_TERMS_NOT_APPLICABLE": http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Validation codes follow the INVALID_ prefix and _REQUIRED suffix
// conventions and map to 400; ALREADY_ codes are state conflicts and map
// to 409; anything unrecognized is treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") || strings.HasSuffix(code, "_REQUIRED") {
		return http.StatusBadRequest
	}
	if strings.HasPrefix(code, "ALREADY_") {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
