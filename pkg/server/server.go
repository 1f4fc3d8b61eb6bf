package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/mindspace-ai/safegate/pkg/config"
	"github.com/mindspace-ai/safegate/pkg/infra/prometheus"
	"github.com/mindspace-ai/safegate/pkg/server/router"
)

type Server interface {
	Run() error
	Shutdown() error
}

type APIServer struct {
	config *config.Config
	logger *logrus.Logger
	router *fiber.App
}

func NewAPIServer(cfg *config.Config, logger *logrus.Logger, routers ...router.ServerRouter) (*APIServer, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           60 * time.Second,
		WriteTimeout:          60 * time.Second,
		IdleTimeout:           120 * time.Second,
		BodyLimit:             1 * 1024 * 1024,
	})

	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if cfg.Metrics.Enabled {
		metricsHandler := fasthttpadaptor.NewFastHTTPHandler(prometheus.Handler())
		app.Get("/metrics", func(c *fiber.Ctx) error {
			metricsHandler(c.Context())
			return nil
		})
	} else {
		logger.Info("prometheus metrics are disabled by configuration")
	}

	for _, r := range routers {
		if err := r.BuildRoutes(app); err != nil {
			return nil, fmt.Errorf("failed to build routes: %w", err)
		}
	}

	return &APIServer{
		config: cfg,
		logger: logger,
		router: app,
	}, nil
}

func (s *APIServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.WithField("addr", addr).Info("starting api server")
	return s.router.Listen(addr)
}

func (s *APIServer) Shutdown() error {
	return s.router.Shutdown()
}
