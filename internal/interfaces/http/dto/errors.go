package dto

import "net/http"

// Error codes emitted by the HTTP layer itself
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "TOKEN_INVALID"
	ErrCodeNotFound     = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain and transport error codes to HTTP status
// codes. Business rule violations map to 422 Unprocessable Entity, bad
// references to 404, duplicates to 409 and malformed input to 400.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeNotFound:     http.StatusNotFound,

	// Ledger validation
	"UNKNOWN_UNIT":     http.StatusNotFound,
	"UNKNOWN_DATASET":  http.StatusNotFound,
	"INVALID_AMOUNT":   http.StatusBadRequest,
	"INVALID_QUANTITY": http.StatusBadRequest,
	"INVALID_PRICE":    http.StatusBadRequest,
	"INVALID_SHARE":    http.StatusBadRequest,

	// Ledger business rules
	"INSUFFICIENT_FUNDS":       http.StatusUnprocessableEntity,
	"INSUFFICIENT_ENTITLEMENT": http.StatusUnprocessableEntity,
	"SHARE_EXCEEDS_100":        http.StatusUnprocessableEntity,
	"NO_PARTNERS":              http.StatusUnprocessableEntity,
	"RESERVED_CATEGORY":        http.StatusUnprocessableEntity,
	"DUPLICATE_PARTNER":        http.StatusConflict,
	"DUPLICATE_INVESTMENT":     http.StatusConflict,
	"PARTNER_NOT_FOUND":        http.StatusNotFound,

	// Identity
	"INVALID_ROLE":        http.StatusBadRequest,
	"USER_NOT_FOUND":      http.StatusNotFound,
	"USERNAME_TAKEN":      http.StatusConflict,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"LAST_ADMIN":          http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes fall back to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
