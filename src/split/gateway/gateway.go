package splitgateway

import (
	"context"
	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/veedubyou/stem-split-demo/src/shared/errors/api"
	"github.com/veedubyou/stem-split-demo/src/shared/errors/gateway"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/request"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/response"
	"github.com/veedubyou/stem-split-demo/src/split/entity"
	"github.com/veedubyou/stem-split-demo/src/split/errors"
	"io"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const InvalidJSONMessage = "Invalid JSON"

//counterfeiter:generate . Splitter
type Splitter interface {
	Split(ctx context.Context, requestID string, upload splitentity.UploadRequest) (splitentity.SplitResult, *api.Error)
}

type Gateway struct {
	usecase Splitter
}

func NewGateway(usecase Splitter) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

func (g Gateway) SplitAudio(c echo.Context) error {
	ctx := request.Context(c)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		err = errors.Wrap(err, "Failed to read request body")
		apiErr := api.CommitError(err,
			api.DefaultErrorCode,
			"The upload could not be read")
		return gateway.ErrorResponse(c, apiErr)
	}

	upload, err := splitentity.ParseUploadRequest(body)
	if err != nil {
		err = errors.Wrap(err, "Failed to parse request body into an upload")
		apiErr := api.CommitError(err,
			spliterrors.BadUploadDataCode,
			InvalidJSONMessage)
		return gateway.ErrorResponse(c, apiErr)
	}

	requestID := request.ID(c)
	log.WithFields(log.Fields{
		"request_id":  requestID,
		"user_id":     request.UserID(c),
		"filename":    upload.Filename,
		"instruments": upload.Instruments,
	}).Debug("Received split request")

	result, apiErr := g.usecase.Split(ctx, requestID, upload)
	if apiErr != nil {
		apiErr = api.WrapError(apiErr, "Failed to split audio")
		return gateway.ErrorResponse(c, apiErr)
	}

	return response.JSON(c, http.StatusOK, result)
}
