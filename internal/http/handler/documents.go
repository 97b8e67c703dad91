package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"doccatalog/internal/database"
	"doccatalog/internal/http/middleware"
	"doccatalog/internal/model"
	"doccatalog/internal/service"
)

// ListFunc is one catalog query, e.g. CatalogService.ByEngineer.
type ListFunc func(ctx context.Context) ([]model.Document, error)

// ListDocuments serves a catalog query as a JSON array.
// Any failure becomes 500 {"error":"Server error"}; the cause is only logged.
//
// @Summary List documents
// @Produce json
// @Success 200 {array} model.Document
// @Failure 500 {object} errorPayload
// @Router /api/documents [get]
// @Router /api/engineer [get]
// @Router /api/hr [get]
// @Router /api/technician [get]
// @Router /api/employees [get]
func ListDocuments(list ListFunc, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := list(c.UserContext())
		if err != nil {
			log.Error("list documents failed",
				zap.String("request_id", middleware.RequestIDFromCtx(c)),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return writeServerError(c)
		}
		if docs == nil {
			docs = []model.Document{}
		}
		return c.JSON(docs)
	}
}

// DocumentFile redirects to a presigned download link for the document's file.
//
// @Summary Download a document's file
// @Param id path string true "Document ID"
// @Success 307
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/documents/{id}/file [get]
func DocumentFile(svc service.CatalogService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid document id")
		}

		u, err := svc.FileURL(c.UserContext(), id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "Document not found")
			case errors.Is(err, service.ErrNoFile):
				return writeError(c, fiber.StatusNotFound, "File not found")
			}
			log.Error("file url failed",
				zap.String("request_id", middleware.RequestIDFromCtx(c)),
				zap.String("document_id", id),
				zap.Error(err),
			)
			return writeServerError(c)
		}
		return c.Redirect(u, fiber.StatusTemporaryRedirect)
	}
}

// HealthCheck reports whether the database is reachable.
func HealthCheck(db database.Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "Service unavailable")
		}
		return c.JSON(fiber.Map{"status": "healthy"})
	}
}

// Liveness always answers 200 while the process is serving.
func Liveness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
