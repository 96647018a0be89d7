package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"hallbook/shared/failure"
	"hallbook/transport/http/response"
)

func TestWithJSON_WritesBareBody(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, []int{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "failure keeps code and message",
			err:      failure.OverlappingBooking,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Booking failed: Overlapping time slot"}`,
		},
		{
			name:     "wrapped failure",
			err:      fmt.Errorf("ctx: %w", failure.BadRequestFromString("Invalid request: name is required")),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid request: name is required"}`,
		},
		{
			name:     "failure code other than 400 is kept",
			err:      fmt.Errorf("ctx: %w", &failure.Failure{Code: http.StatusConflict, Message: "taken"}),
			wantCode: http.StatusConflict,
			wantBody: `{"error":"taken"}`,
		},
		{
			name:     "storage error is opaque",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPreparingShutdown(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
}
