// Standalone fake booking service, handy as a local target for suite
// development and manual poking.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bitbucket.org/crgw/booker-regression/internal/fakebooker"
	"bitbucket.org/crgw/service-helpers/logger"
	"github.com/gin-contrib/pprof"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	shutdown := false
	done := make(chan error, 1)
	stop := make(chan os.Signal)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		<-stop
		shutdown = true
		logger.Info().Msg("Shutting down server...")
		_ = httpServer.Shutdown(context.Background())
	}()

	// Notify stop channel if SIGINT or SIGTERM is received
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	err := <-done
	if err != nil && !shutdown {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func main() {
	_ = godotenv.Load(".env")
	log := logger.New(os.Getenv("LOG_LEVEL"))

	router := fakebooker.SetupRouter(log)
	pprof.Register(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("localhost:%s", port),
		Handler: router,
	}

	os.Exit(serverApp(httpServer, log))
}
