package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/adroitdesign/studio-api/internal/config"
	"github.com/adroitdesign/studio-api/internal/infra"
	"github.com/adroitdesign/studio-api/internal/service"
)

const defaultPort = 3000
const defaultShutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, relying on process environment")
	}

	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	pool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer pool.Close()

	redisClient, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer redisClient.Close()

	app, inquirySvc, err := infra.Router(cfg, pool, redisClient)
	if err != nil {
		logrus.Fatal(err)
	}

	start(app, inquirySvc)
}

func start(app *echo.Echo, inquirySvc service.InquiryService) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", defaultPort))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logrus.Fatalf("failed to stop server gracefully - %s", err)
		}

		// Best-effort notification emails may still be in flight.
		inquirySvc.Drain()
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
