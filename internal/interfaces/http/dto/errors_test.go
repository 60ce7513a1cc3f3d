package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	t.Run("maps known codes", func(t *testing.T) {
		assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus("INSUFFICIENT_FUNDS"))
		assert.Equal(t, http.StatusConflict, GetHTTPStatus("DUPLICATE_PARTNER"))
		assert.Equal(t, http.StatusNotFound, GetHTTPStatus("UNKNOWN_UNIT"))
		assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus("INVALID_CREDENTIALS"))
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeBadRequest))
	})

	t.Run("unknown code falls back to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
	})
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID("INVALID_AMOUNT", "Amount must be at least 0.01", "req-123")
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_AMOUNT", resp.Error.Code)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}
