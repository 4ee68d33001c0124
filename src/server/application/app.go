package application

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/cors"
	"github.com/veedubyou/stem-split-demo/src/split/gateway"
	"github.com/veedubyou/stem-split-demo/src/split/usecase"
	"net/http"
)

type HTTPMethod string

const (
	GET  HTTPMethod = "GET"
	POST HTTPMethod = "POST"
)

const (
	SplitRoute       = "/audio-split"
	HealthCheckRoute = "/health-check"
)

type App struct {
	echo *echo.Echo
	port string
}

type Config struct {
	SplitConfig splitusecase.Config
	Port        string
	Log         bool
}

func NewApp(config Config) App {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handleError

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(cors.AllowOrigin())

	if config.Log {
		e.Use(middleware.Logger())
	}

	e.Use(middleware.Recover())

	handleRoute := func(method HTTPMethod, path string, handlerFunc echo.HandlerFunc) {
		e.OPTIONS(path, cors.PreflightHandler(string(method)))

		switch method {
		case GET:
			e.GET(path, handlerFunc)
		case POST:
			e.POST(path, handlerFunc)
		default:
			panic("unhandled http method!")
		}
	}

	splitGateway := makeSplitGateway(config.SplitConfig)

	// health check
	handleRoute(GET, HealthCheckRoute, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	handleRoute(POST, SplitRoute, splitGateway.SplitAudio)

	return App{
		echo: e,
		port: config.Port,
	}
}

func (a *App) Start() error {
	err := a.echo.Start(a.port)
	if err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "Couldn't start echo server")
	}

	return nil
}

func (a *App) Stop() error {
	err := a.echo.Close()
	if err != nil {
		return errors.Wrap(err, "Failed to stop echo server")
	}

	return nil
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.echo.ServeHTTP(w, r)
}

func makeSplitGateway(splitConfig splitusecase.Config) splitgateway.Gateway {
	usecase, err := splitusecase.NewUsecase(splitConfig)
	if err != nil {
		panic(errors.Wrap(err, "Failed to create split usecase"))
	}

	return splitgateway.NewGateway(usecase)
}
