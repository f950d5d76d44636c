package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-medical-booking/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", apperror.NotFound("patient not found"), http.StatusNotFound, "patient not found"},
		{"already exists", apperror.AlreadyExists("time slot taken"), http.StatusConflict, "time slot taken"},
		{"bad request", apperror.BadRequest("start time must be before end time"), http.StatusBadRequest, "start time must be before end time"},
		{"access denied", apperror.AccessDenied("not your appointment"), http.StatusForbidden, "not your appointment"},
		{"internal", apperror.Internal(errors.New("dial tcp: refused")), http.StatusInternalServerError, "internal server error"},
		{"plain error", errors.New("unexpected"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FromError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Appointment created successfully", map[string]string{"status": "WAITING"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"message":"Appointment created successfully","data":{"status":"WAITING"}}`, rec.Body.String())
}
