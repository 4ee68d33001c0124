package logging

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/json"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/env"
	"os"
)

func Configure(environment env.Environment) {
	switch environment {
	case env.Production:
		// one object per line, the runtime ships stderr as-is
		log.SetHandler(json.New(os.Stderr))
		log.SetLevel(log.InfoLevel)

	case env.Development:
		log.SetHandler(cli.New(os.Stderr))
		log.SetLevel(log.DebugLevel)

	case env.Test:
		log.SetHandler(discard.New())

	default:
		panic("Unrecognized environment")
	}
}
