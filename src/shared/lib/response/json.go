package response

import (
	"encoding/json"
	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
)

// JSON writes the body with a bare application/json content type,
// echo's c.JSON tacks a charset onto it
func JSON(c echo.Context, statusCode int, body any) error {
	jsonBytes, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "Failed to marshal response body")
	}

	return c.Blob(statusCode, echo.MIMEApplicationJSON, jsonBytes)
}
