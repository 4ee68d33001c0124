package request

import (
	"context"
	"github.com/labstack/echo/v4"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/env"
)

const HeaderXUserID = "X-User-Id"

func Context(c echo.Context) context.Context {
	switch env.Get() {
	case env.Production, env.Test:
		return c.Request().Context()

	case env.Development:
		// opt to not use the request context in development situations
		// to avoid timeouts during debugging
		return context.Background()

	default:
		panic("Unrecognized environment")
	}
}

// ID prefers the id the RequestID middleware settled on for the response,
// which is the incoming header when one was sent
func ID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}

	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// UserID is opaque and unverified, it's only good for logging
func UserID(c echo.Context) string {
	return c.Request().Header.Get(HeaderXUserID)
}
