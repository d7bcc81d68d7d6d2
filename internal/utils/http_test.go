package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code     models.StatusCode
		expected int
	}{
		{code: models.StatusSuccess, expected: http.StatusOK},
		{code: models.StatusDuplicateEmail, expected: http.StatusConflict},
		{code: models.StatusWeakPassword, expected: http.StatusBadRequest},
		{code: models.StatusInvalidCredentials, expected: http.StatusUnauthorized},
		{code: models.StatusAccountNotVerified, expected: http.StatusForbidden},
		{code: models.StatusOTPNotFound, expected: http.StatusNotFound},
		{code: models.StatusRateLimited, expected: http.StatusTooManyRequests},
		{code: models.StatusGenericError, expected: http.StatusInternalServerError},
		{code: models.StatusCode("UNKNOWN"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.code))
		})
	}
}

func TestWriteResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	res := models.Success("Login successful", models.AuthResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: "24hrs"})
	require.NoError(t, WriteResponse(c, res))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SUCCESS", body["status_code"])
	assert.Equal(t, "Login successful", body["status_message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "24hrs", data["expires_in"])
}

func TestErrorResponseHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ErrorResponseHandler(c, models.StatusOTPExpired, "OTP has expired"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OTP_EXPIRED", body["status_code"])
	assert.Equal(t, "OTP has expired", body["status_message"])
	_, hasData := body["data"]
	assert.False(t, hasData)
}

func TestCreatedResponse(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	require.NoError(t, CreatedResponse(c, models.Success("ok", models.Empty{})))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	require.NoError(t, CreatedResponse(c, models.Failure[models.Empty](models.StatusDuplicateEmail, "taken")))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
