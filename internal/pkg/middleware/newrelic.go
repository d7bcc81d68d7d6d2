package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/easybank/internal/pkg/models"
)

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeError reports an error to New Relic
func NoticeError(c echo.Context, err error) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(err)
	}
}

// SetPrincipal tags the current transaction with the authenticated principal
func SetPrincipal(c echo.Context, kind models.PrincipalKind, id int64) {
	AddAttribute(c, "principal.type", string(kind))
	AddAttribute(c, "principal.id", fmt.Sprintf("%d", id))
}
