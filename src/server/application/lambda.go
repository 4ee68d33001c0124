package application

import (
	"bytes"
	"context"
	"encoding/base64"
	"github.com/apex/log"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/veedubyou/stem-split-demo/src/shared/errors/api"
	"github.com/veedubyou/stem-split-demo/src/shared/errors/gateway"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/cors"
	"github.com/veedubyou/stem-split-demo/src/split/errors"
	"github.com/veedubyou/stem-split-demo/src/split/gateway"
	"net/http"
	"net/url"
	"strings"
)

// HandleProxyRequest serves an API Gateway proxy event through the same echo
// app the dev server runs. The function is mounted on a single route, so every
// event is dispatched to the split route whatever path the gateway reports.
func (a *App) HandleProxyRequest(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	writer := newProxyResponseWriter()

	httpRequest, err := newProxyHTTPRequest(ctx, event)
	// only an upload cares about its body, preflights and wrong methods still route
	if err != nil && httpRequest.Method == http.MethodPost {
		c := a.echo.NewContext(httpRequest, writer)
		c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, cors.AllowAnyOrigin)

		apiErr := api.CommitError(err, spliterrors.BadUploadDataCode, splitgateway.InvalidJSONMessage)
		if renderErr := gateway.ErrorResponse(c, apiErr); renderErr != nil {
			return events.APIGatewayProxyResponse{}, errors.Wrap(renderErr, "Failed to render error for undecodable event body")
		}

		return writer.toProxyResponse(), nil
	}

	a.echo.ServeHTTP(writer, httpRequest)
	return writer.toProxyResponse(), nil
}

// the request is always returned so that errors can still be rendered against it,
// an undecodable body leaves it with an empty one
func newProxyHTTPRequest(ctx context.Context, event events.APIGatewayProxyRequest) (*http.Request, error) {
	method := event.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}

	target := url.URL{
		Path:     SplitRoute,
		RawQuery: proxyQuery(event).Encode(),
	}

	body, decodeErr := proxyBody(event)

	httpRequest, err := http.NewRequestWithContext(ctx, method, target.String(), strings.NewReader(body))
	if err != nil {
		// only an unparseable method gets here, fall back to something servable
		log.WithError(err).WithField("method", method).Warn("Unusable method on proxy event")
		httpRequest, _ = http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	}

	for key, value := range event.Headers {
		httpRequest.Header.Set(key, value)
	}

	for key, values := range event.MultiValueHeaders {
		httpRequest.Header.Del(key)
		for _, value := range values {
			httpRequest.Header.Add(key, value)
		}
	}

	if requestID := proxyRequestID(ctx, event); requestID != "" {
		httpRequest.Header.Set(echo.HeaderXRequestID, requestID)
	}

	httpRequest.RemoteAddr = event.RequestContext.Identity.SourceIP

	if decodeErr != nil {
		return httpRequest, decodeErr
	}

	return httpRequest, nil
}

func proxyBody(event events.APIGatewayProxyRequest) (string, error) {
	if !event.IsBase64Encoded {
		return event.Body, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(event.Body)
	if err != nil {
		return "", errors.Wrap(err, "Failed to base64 decode the event body")
	}

	return string(decoded), nil
}

func proxyQuery(event events.APIGatewayProxyRequest) url.Values {
	query := url.Values{}
	for key, value := range event.QueryStringParameters {
		query.Set(key, value)
	}

	for key, values := range event.MultiValueQueryStringParameters {
		query[key] = values
	}

	return query
}

// an empty id lets the RequestID middleware generate one
func proxyRequestID(ctx context.Context, event events.APIGatewayProxyRequest) string {
	if lambdaCtx, ok := lambdacontext.FromContext(ctx); ok && lambdaCtx.AwsRequestID != "" {
		return lambdaCtx.AwsRequestID
	}

	return event.RequestContext.RequestID
}

type proxyResponseWriter struct {
	header     http.Header
	body       bytes.Buffer
	statusCode int
}

var _ http.ResponseWriter = &proxyResponseWriter{}

func newProxyResponseWriter() *proxyResponseWriter {
	return &proxyResponseWriter{
		header:     http.Header{},
		statusCode: 0,
	}
}

func (p *proxyResponseWriter) Header() http.Header {
	return p.header
}

func (p *proxyResponseWriter) Write(b []byte) (int, error) {
	if p.statusCode == 0 {
		p.WriteHeader(http.StatusOK)
	}

	return p.body.Write(b)
}

func (p *proxyResponseWriter) WriteHeader(statusCode int) {
	if p.statusCode != 0 {
		return
	}

	p.statusCode = statusCode
}

func (p *proxyResponseWriter) toProxyResponse() events.APIGatewayProxyResponse {
	statusCode := p.statusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	headers := map[string]string{}
	multiValueHeaders := map[string][]string{}
	for key, values := range p.header {
		if len(values) == 0 {
			continue
		}

		headers[key] = strings.Join(values, ",")
		multiValueHeaders[key] = values
	}

	return events.APIGatewayProxyResponse{
		StatusCode:        statusCode,
		Headers:           headers,
		MultiValueHeaders: multiValueHeaders,
		Body:              p.body.String(),
		IsBase64Encoded:   false,
	}
}
