package storagepath

import (
	"fmt"
	"strings"
)

// Generator lays out stems under <base>/<requestID>/<leaf>
type Generator struct {
	BaseURL string
}

func NewGenerator(baseURL string) Generator {
	return Generator{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (g Generator) GeneratePath(requestID string, leafPath string) string {
	return fmt.Sprintf("%s/%s/%s", g.BaseURL, requestID, leafPath)
}
