package app

import (
	"fmt"
	"log"
	"strings"

	"youthbridge/internal/config"
	"youthbridge/internal/delivery/http/handler"
	"youthbridge/internal/delivery/http/middleware"
	"youthbridge/internal/delivery/http/routes"
	"youthbridge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, logger)

	registry := routes.NewRegistry(
		handler.NewJobsHandler(c.JobBoard),
		handler.NewCandidatesHandler(c.CandidateSearch),
		handler.NewMatchHandler(c.CandidateMatch),
		ws.NewHandler(c.Hub, logger),
	)
	registry.Register(f)

	go c.Hub.Run()
	if err := c.Refresh.Start(); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
