package gateway

import (
	"fmt"
	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/veedubyou/stem-split-demo/src/shared/errors/api"
	"github.com/veedubyou/stem-split-demo/src/shared/errors/route"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/request"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/response"
	"github.com/veedubyou/stem-split-demo/src/split/errors"
	"net/http"
)

const internalErrorPrefix = "Internal server error: "

var httpStatusCodeMap = map[api.ErrorCode]int{
	api.DefaultErrorCode:             http.StatusInternalServerError,
	routeerrors.MethodNotAllowedCode: http.StatusMethodNotAllowed,
	routeerrors.RouteNotFoundCode:    http.StatusNotFound,
	spliterrors.BadUploadDataCode:    http.StatusBadRequest,
	spliterrors.NoAudioDataCode:      http.StatusBadRequest,
	spliterrors.BadAudioEncodingCode: http.StatusBadRequest,
	spliterrors.FileTooLargeCode:     http.StatusBadRequest,
	spliterrors.RequestIDMissingCode: http.StatusInternalServerError,
}

type JSONError struct {
	Error string `json:"error"`
}

func StatusCode(errorCode api.ErrorCode) (int, bool) {
	statusCode, ok := httpStatusCodeMap[errorCode]
	return statusCode, ok
}

func ErrorResponse(c echo.Context, err *api.Error) error {
	statusCode, ok := StatusCode(err.ErrorCode)
	if !ok {
		msg := fmt.Sprintf("Error code %s has no HTTP status code mapping", err.ErrorCode)
		panic(msg)
	}

	logger := log.WithFields(log.Fields{
		"request_id":  request.ID(c),
		"error_code":  err.ErrorCode,
		"status_code": statusCode,
	})

	msg := err.UserMessage
	if statusCode >= http.StatusInternalServerError {
		// the internal chain stays in the logs, callers only get the user message
		logger.WithError(err.InternalError).Error("Request failed")
		msg = internalErrorPrefix + msg
	} else {
		logger.WithField("reason", err.Error()).Warn("Request rejected")
	}

	return response.JSON(c, statusCode, JSONError{
		Error: msg,
	})
}
