package testing

import (
	"bytes"
	"encoding/json"
	"github.com/labstack/echo/v4"
	"github.com/onsi/gomega"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/request"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
)

type RequestModifier func(r *http.Request)

type RequestModifiers []RequestModifier

func (r *RequestModifiers) Add(mods ...RequestModifier) {
	*r = append(*r, mods...)
}

func WithUserID(userID string) RequestModifier {
	return func(req *http.Request) {
		req.Header.Set(request.HeaderXUserID, userID)
	}
}

func WithRequestID(requestID string) RequestModifier {
	return func(req *http.Request) {
		req.Header.Set(echo.HeaderXRequestID, requestID)
	}
}

type RequestFactory struct {
	Method  string
	Target  string
	JSONObj interface{}
	// RawBody is sent as-is when there's no JSONObj
	RawBody string
	Mods    RequestModifiers
}

func (r RequestFactory) Make() *http.Request {
	var body io.Reader

	if r.JSONObj != nil {
		buf := &bytes.Buffer{}
		err := json.NewEncoder(buf).Encode(r.JSONObj)
		gomega.ExpectWithOffset(1, err).NotTo(gomega.HaveOccurred())

		body = buf
	} else if r.RawBody != "" {
		body = strings.NewReader(r.RawBody)
	}

	target := r.Target
	if target == "" {
		target = "/"
	}

	httpRequest := httptest.NewRequest(r.Method, target, body)

	isJSONBody := body != nil
	if isJSONBody {
		httpRequest.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	for _, mod := range r.Mods {
		mod(httpRequest)
	}

	return httpRequest
}
