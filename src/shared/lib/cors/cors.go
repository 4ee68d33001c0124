package cors

import (
	"github.com/labstack/echo/v4"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/request"
	"net/http"
	"strings"
)

const (
	AllowAnyOrigin  = "*"
	PreflightMaxAge = "86400"
)

var allowedHeaders = []string{echo.HeaderContentType, request.HeaderXUserID}

// AllowOrigin stamps every response, including the ones rendered by the error handler
func AllowOrigin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, AllowAnyOrigin)
			return next(c)
		}
	}
}

// echo's CORS middleware answers preflights with a 204, browsers and
// the frontend expect a 200 with no body
func PreflightHandler(methods ...string) echo.HandlerFunc {
	allowedMethods := strings.Join(append(methods, http.MethodOptions), ", ")

	return func(c echo.Context) error {
		header := c.Response().Header()
		header.Set(echo.HeaderAccessControlAllowOrigin, AllowAnyOrigin)
		header.Set(echo.HeaderAccessControlAllowMethods, allowedMethods)
		header.Set(echo.HeaderAccessControlAllowHeaders, strings.Join(allowedHeaders, ", "))
		header.Set(echo.HeaderAccessControlMaxAge, PreflightMaxAge)

		return c.NoContent(http.StatusOK)
	}
}
