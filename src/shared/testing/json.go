package testing

import (
	"encoding/json"
	"github.com/onsi/gomega"
	"github.com/veedubyou/stem-split-demo/src/shared/errors/gateway"
	"io"
	"strings"
)

func DecodeJSON[T any](jsonBody io.Reader) T {
	t := new(T)
	err := json.NewDecoder(jsonBody).Decode(t)
	gomega.ExpectWithOffset(1, err).NotTo(gomega.HaveOccurred())

	return *t
}

func DecodeJSONString[T any](jsonBody string) T {
	return DecodeJSON[T](strings.NewReader(jsonBody))
}

func DecodeJSONError(jsonBody io.Reader) gateway.JSONError {
	return DecodeJSON[gateway.JSONError](jsonBody)
}
