package main

import (
	"fmt"
	"net/url"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"doccatalog/docs"
	"doccatalog/internal/database"
	handlers "doccatalog/internal/http/handler"
	"doccatalog/internal/http/middleware"
	"doccatalog/internal/service"
)

type appDeps struct {
	DB        database.Pinger
	Catalog   service.CatalogService
	Logger    *zap.Logger
	Registry  *prometheus.Registry
	FileLinks bool
	// PublicURL pins the host and scheme in the served Swagger document.
	// Empty leaves both unset so the UI calls the origin it was loaded from.
	PublicURL string
}

// configureSwagger writes docs.SwaggerInfo once, before the server starts.
func configureSwagger(publicURL string) error {
	docs.SwaggerInfo.Host = ""
	docs.SwaggerInfo.Schemes = []string{}
	if publicURL == "" {
		return nil
	}

	u, err := url.Parse(publicURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid APP_PUBLIC_URL %q: want scheme://host[:port]", publicURL)
	}
	docs.SwaggerInfo.Host = u.Host
	docs.SwaggerInfo.Schemes = []string{u.Scheme}
	return nil
}

// newApp assembles the Fiber application: global middleware, catalog routes,
// metrics and API docs.
func newApp(d appDeps) (*fiber.App, error) {
	if err := configureSwagger(d.PublicURL); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(d.Registry)
	if err != nil {
		return nil, err
	}

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(d.Logger))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, handlers.Routes{
		DB:        d.DB,
		Catalog:   d.Catalog,
		Logger:    d.Logger,
		FileLinks: d.FileLinks,
	})

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	app.Get("/swagger/*", swagger.HandlerDefault)

	return app, nil
}
