package testing

import (
	"github.com/veedubyou/stem-split-demo/src/shared/lib/env"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/logging"
	"github.com/veedubyou/stem-split-demo/src/shared/values/envvar"
	"os"
)

func SetTestEnv() {
	err := os.Setenv(envvar.ENVIRONMENT, string(env.Test))
	if err != nil {
		panic(err)
	}

	logging.Configure(env.Test)
}
