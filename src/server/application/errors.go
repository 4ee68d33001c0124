package application

import (
	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/veedubyou/stem-split-demo/src/shared/errors/api"
	"github.com/veedubyou/stem-split-demo/src/shared/errors/gateway"
	"github.com/veedubyou/stem-split-demo/src/shared/errors/route"
	"net/http"
)

// handleError is the last stop for anything a handler didn't render itself:
// router misses, wrong methods and recovered panics
func handleError(err error, c echo.Context) {
	if c.Response().Committed {
		log.WithError(err).Warn("Error raised after the response was already written")
		return
	}

	if renderErr := gateway.ErrorResponse(c, toAPIError(err)); renderErr != nil {
		log.WithError(renderErr).Error("Failed to write error response")
	}
}

func toAPIError(err error) *api.Error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusMethodNotAllowed:
			return api.CommitError(err,
				routeerrors.MethodNotAllowedCode,
				"Method not allowed")

		case http.StatusNotFound:
			return api.CommitError(err,
				routeerrors.RouteNotFoundCode,
				"Not found")
		}
	}

	return api.CommitError(errors.Wrap(err, "Unhandled error reached the echo error handler"),
		api.DefaultErrorCode,
		"Unexpected failure while handling the request")
}
