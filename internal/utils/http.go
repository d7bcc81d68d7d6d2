package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/easybank/internal/pkg/models"
)

var httpStatusByCode = map[models.StatusCode]int{
	models.StatusSuccess:               http.StatusOK,
	models.StatusValidationError:       http.StatusBadRequest,
	models.StatusDuplicateEmail:        http.StatusConflict,
	models.StatusBelowMinimumDeposit:   http.StatusBadRequest,
	models.StatusWeakPassword:          http.StatusBadRequest,
	models.StatusInvalidPin:            http.StatusBadRequest,
	models.StatusInvalidEnum:           http.StatusBadRequest,
	models.StatusInvalidAmount:         http.StatusBadRequest,
	models.StatusPrincipalNotFound:     http.StatusUnauthorized,
	models.StatusAccountNotFound:       http.StatusNotFound,
	models.StatusAccountNotVerified:    http.StatusForbidden,
	models.StatusAccountSuspended:      http.StatusForbidden,
	models.StatusInvalidCredentials:    http.StatusUnauthorized,
	models.StatusUnauthorized:          http.StatusUnauthorized,
	models.StatusTokenExpired:          http.StatusUnauthorized,
	models.StatusInvalidTokenSignature: http.StatusUnauthorized,
	models.StatusOTPNotFound:           http.StatusNotFound,
	models.StatusOTPInvalid:            http.StatusBadRequest,
	models.StatusOTPExpired:            http.StatusBadRequest,
	models.StatusRateLimited:           http.StatusTooManyRequests,
	models.StatusGenericError:          http.StatusInternalServerError,
}

// HTTPStatus maps an envelope status code to its HTTP status
func HTTPStatus(code models.StatusCode) int {
	if status, ok := httpStatusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteResponse sends the envelope with the HTTP status of its code
func WriteResponse[T any](c echo.Context, res *models.Response[T]) error {
	return c.JSON(HTTPStatus(res.StatusCode), res)
}

// CreatedResponse sends a successful envelope with 201
func CreatedResponse[T any](c echo.Context, res *models.Response[T]) error {
	if res.OK() {
		return c.JSON(http.StatusCreated, res)
	}
	return WriteResponse(c, res)
}

// ErrorResponseHandler sends a failure envelope without data
func ErrorResponseHandler(c echo.Context, code models.StatusCode, message string) error {
	return c.JSON(HTTPStatus(code), models.Failure[models.Empty](code, message))
}

// BadRequestResponse sends a 400 VALIDATION_ERROR envelope
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, models.StatusValidationError, message)
}

// UnauthorizedResponse sends a 401 UNAUTHORIZED envelope
func UnauthorizedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponseHandler(c, models.StatusUnauthorized, message)
}

// InternalServerErrorResponse sends a 500 GENERIC_ERROR envelope
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Something went wrong, please try again later"
	}
	return ErrorResponseHandler(c, models.StatusGenericError, message)
}

// TooManyRequestsResponse sends a 429 RATE_LIMITED envelope
func TooManyRequestsResponse(c echo.Context) error {
	return ErrorResponseHandler(c, models.StatusRateLimited, "Too many requests, please retry later")
}
