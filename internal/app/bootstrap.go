package app

import (
	"context"
	"fmt"
	"strings"

	"venturehive/internal/config"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(ctx context.Context, cfg config.Config, c *Container) (*App, func() error, error) {
	if c == nil {
		var err error
		c, err = NewContainer(ctx, cfg, nil)
		if err != nil {
			return nil, nil, err
		}
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})

	c.Registry.Register(f)
	f.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	f.Get("/ws/deals", c.WSHandler.HandleDealsWS)

	go c.Hub.Run()

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f, Container: c}, cleanup, nil
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
