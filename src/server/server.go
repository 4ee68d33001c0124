package main

import (
	"github.com/veedubyou/stem-split-demo/src/server/application"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/env"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/logging"
	"github.com/veedubyou/stem-split-demo/src/shared/values/demo"
	"github.com/veedubyou/stem-split-demo/src/shared/values/dev"
	"github.com/veedubyou/stem-split-demo/src/shared/values/envvar"
	"github.com/veedubyou/stem-split-demo/src/split/usecase"
)

func main() {
	environment := env.Get()
	logging.Configure(environment)

	var appConfig application.Config

	switch environment {
	case env.Production:
		splitConfig := splitusecase.DefaultConfig()
		splitConfig.OutputBaseURL = envvar.GetOrDefault(envvar.OUTPUT_BASE_URL, demo.OutputBaseURL)

		appConfig = application.Config{
			SplitConfig: splitConfig,
			Port:        envvar.GetOrDefault(envvar.PORT, demo.DefaultPort),
			Log:         true,
		}
	case env.Development:
		splitConfig := splitusecase.DefaultConfig()
		splitConfig.OutputBaseURL = dev.OutputBaseURL

		appConfig = application.Config{
			SplitConfig: splitConfig,
			Port:        dev.Port,
			Log:         true,
		}

	default:
		panic("Unexpected environment")
	}

	app := application.NewApp(appConfig)
	if err := app.Start(); err != nil {
		panic(err)
	}
}
