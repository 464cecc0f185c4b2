// Package server exposes the capability dispatcher as the public HTTP API.
package server

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/anibridge/anibridge/constant"
	"github.com/anibridge/anibridge/dispatch"
	"github.com/anibridge/anibridge/key"
	"github.com/anibridge/anibridge/log"
	"github.com/anibridge/anibridge/provider/native"
	"github.com/anibridge/anibridge/provider/remote"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/viper"
)

// New assembles the fiber application over the given dispatcher: panic
// recovery, request logging and CORS, then one route per capability.
func New(d *dispatch.Dispatcher) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               constant.Anibridge + " " + constant.Version,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: viper.GetString(key.ServerCORSOrigins),
	}))

	h := &handler{dispatcher: d}

	app.Get("/ping", h.ping)
	app.Get("/recent", h.recent)
	app.Get("/top-airing", h.topAiring)
	app.Get("/trending", h.topAiring)
	app.Get("/genres", h.genres)
	app.Get("/search", h.search)
	app.Get("/anime/:id", h.details)
	app.Get("/anime/:id/episodes", h.episodes)

	// Native episode identifiers may contain slashes, so the episode id rides
	// in the query string instead of the path.
	app.Get("/source", h.source)

	return app
}

// Start builds the provider chain from the configuration, serves the API and
// blocks until the listener stops or the process is interrupted.
func Start() error {
	script := native.NewLazy(viper.GetString(key.ProviderName))
	if !script.Available() {
		log.Warn("Serving from the fallback catalog only")
	}

	app := New(dispatch.New(script, remote.New()))
	go shutdownOnInterrupt(app)

	addr := fmt.Sprintf("%s:%d", viper.GetString(key.ServerHost), viper.GetInt(key.ServerPort))
	log.Infof("Listening on %s", addr)
	return app.Listen(addr)
}

// shutdownOnInterrupt drains in-flight requests and stops the listener when
// the process receives SIGINT or SIGTERM.
func shutdownOnInterrupt(app *fiber.App) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	log.Info("Shutting down")
	if err := app.Shutdown(); err != nil {
		log.Errorf("Shutdown: %v", err)
	}
}
