package routeerrors

import (
	"github.com/veedubyou/stem-split-demo/src/shared/errors/api"
)

const (
	MethodNotAllowedCode = api.ErrorCode("method_not_allowed")
	RouteNotFoundCode    = api.ErrorCode("route_not_found")
)
