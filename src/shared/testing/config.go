package testing

import (
	"github.com/veedubyou/stem-split-demo/src/server/application"
	"github.com/veedubyou/stem-split-demo/src/shared/values/demo"
	"github.com/veedubyou/stem-split-demo/src/split/usecase"
)

const (
	TestOutputBaseURL = "https://demo.stemsplit.com/output"
	// keeps the oversized uploads in tests small
	TestMaxFileSize = 1 * demo.BytesPerMB
)

func SplitConfig() splitusecase.Config {
	config := splitusecase.DefaultConfig()
	config.OutputBaseURL = TestOutputBaseURL
	config.MaxFileSize = TestMaxFileSize
	return config
}

func AppConfig() application.Config {
	return application.Config{
		SplitConfig: SplitConfig(),
		Port:        "",
		Log:         false,
	}
}
