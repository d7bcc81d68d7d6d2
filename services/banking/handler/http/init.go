package http

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/easybank/internal/pkg/logger"
	"github.com/piresc/easybank/internal/pkg/middleware"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/internal/utils"
)

// bindRequest decodes and validates the body into req. When it returns false
// the error response has already been written and its result is in err.
func bindRequest(c echo.Context, v *utils.RequestValidator, req interface{}) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		logger.WarnCtx(c.Request().Context(), "Invalid request payload",
			logger.String("path", c.Path()),
			logger.Err(err))
		return false, utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := v.Validate(req); err != nil {
		return false, utils.BadRequestResponse(c, utils.ValidationMessage(err))
	}
	return true, nil
}

// writeResult sends the envelope, or GENERIC_ERROR for an infrastructure failure
func writeResult[T any](c echo.Context, operation string, res *models.Response[T], err error) error {
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Request failed",
			logger.String("operation", operation),
			logger.Err(err))
		middleware.NoticeError(c, err)
		return utils.InternalServerErrorResponse(c, "")
	}
	return utils.WriteResponse(c, res)
}

// customerID returns the authenticated customer of the request
func customerID(c echo.Context) (int64, bool) {
	ref, ok := middleware.PrincipalFromContext(c)
	if !ok || ref.Kind != models.PrincipalCustomer {
		return 0, false
	}
	return ref.ID, true
}
