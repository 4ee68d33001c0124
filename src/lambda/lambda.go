package main

import (
	"github.com/aws/aws-lambda-go/lambda"
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

	splitConfig := splitusecase.DefaultConfig()

	switch environment {
	case env.Production:
		splitConfig.OutputBaseURL = envvar.GetOrDefault(envvar.OUTPUT_BASE_URL, demo.OutputBaseURL)
	case env.Development:
		splitConfig.OutputBaseURL = dev.OutputBaseURL
	default:
		panic("Unexpected environment")
	}

	// the runtime logs invocations itself, echo's access log would double them up
	app := application.NewApp(application.Config{
		SplitConfig: splitConfig,
		Log:         false,
	})

	lambda.Start(app.HandleProxyRequest)
}
