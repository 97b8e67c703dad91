package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"doccatalog/internal/database"
	"doccatalog/internal/service"
)

const healthTimeout = 2 * time.Second

// Routes holds what RegisterRoutes needs.
type Routes struct {
	DB      database.Pinger
	Catalog service.CatalogService
	Logger  *zap.Logger

	// FileLinks enables /api/documents/:id/file. Requires object storage.
	FileLinks bool
}

// RegisterRoutes attaches the catalog and health routes to app.
func RegisterRoutes(app *fiber.App, r Routes) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app.Get("/health", HealthCheck(r.DB))
	app.Get("/healthz", Liveness())

	api := app.Group("/api")
	api.Get("/engineer", ListDocuments(r.Catalog.ByEngineer, log))
	api.Get("/hr", ListDocuments(r.Catalog.ByHR, log))
	api.Get("/technician", ListDocuments(r.Catalog.ByTechnician, log))
	api.Get("/employees", ListDocuments(r.Catalog.ByEmployee, log))
	api.Get("/documents", ListDocuments(r.Catalog.All, log))

	if r.FileLinks {
		api.Get("/documents/:id/file", DocumentFile(r.Catalog, log))
	}
}
