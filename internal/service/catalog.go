package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"doccatalog/internal/model"
	"doccatalog/internal/repository"
	"doccatalog/internal/storage"
)

var (
	ErrNotFound        = errors.New("document not found")
	ErrNoFile          = errors.New("document has no file")
	ErrStorageDisabled = errors.New("object storage is not configured")
)

const defaultPresignExpiry = 15 * time.Minute

var tracer = otel.Tracer("doccatalog/internal/service")

// CatalogService is the read API over the document store.
// Store failures are returned as-is; callers decide what to expose.
type CatalogService interface {
	ByEngineer(ctx context.Context) ([]model.Document, error)
	ByHR(ctx context.Context) ([]model.Document, error)
	ByTechnician(ctx context.Context) ([]model.Document, error)
	ByEmployee(ctx context.Context) ([]model.Document, error)
	All(ctx context.Context) ([]model.Document, error)

	// EnsureSeeded populates an empty store with the fixture records.
	EnsureSeeded(ctx context.Context) error

	// FileURL returns a time-limited download link for the document's file.
	FileURL(ctx context.Context, id string) (string, error)
}

// Options carries the optional collaborators of the catalog service.
type Options struct {
	// Storage resolves file names; nil disables FileURL.
	Storage       storage.Storage
	PresignExpiry time.Duration
	Logger        *zap.Logger
	// Registerer receives the seeding counter; nil skips registration.
	Registerer prometheus.Registerer
}

type catalogService struct {
	repo          repository.DocumentRepository
	store         storage.Storage
	presignExpiry time.Duration
	log           *zap.Logger
	seeded        prometheus.Counter
}

// NewCatalogService constructs a CatalogService over the given repository.
func NewCatalogService(repo repository.DocumentRepository, opts Options) (CatalogService, error) {
	s := &catalogService{
		repo:          repo,
		store:         opts.Storage,
		presignExpiry: opts.PresignExpiry,
		log:           opts.Logger,
		seeded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_seeded_documents_total",
			Help: "Number of fixture documents inserted by startup seeding.",
		}),
	}
	if s.presignExpiry <= 0 {
		s.presignExpiry = defaultPresignExpiry
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if opts.Registerer != nil {
		if err := opts.Registerer.Register(s.seeded); err != nil {
			return nil, fmt.Errorf("register seed counter: %w", err)
		}
	}
	return s, nil
}

func (s *catalogService) ByEngineer(ctx context.Context) ([]model.Document, error) {
	return s.byCategory(ctx, model.CategoryEngineer)
}

func (s *catalogService) ByHR(ctx context.Context) ([]model.Document, error) {
	return s.byCategory(ctx, model.CategoryHR)
}

func (s *catalogService) ByTechnician(ctx context.Context) ([]model.Document, error) {
	return s.byCategory(ctx, model.CategoryTechnician)
}

func (s *catalogService) ByEmployee(ctx context.Context) ([]model.Document, error) {
	return s.byCategory(ctx, model.CategoryEmployee)
}

func (s *catalogService) byCategory(ctx context.Context, c model.Category) ([]model.Document, error) {
	ctx, span := tracer.Start(ctx, "catalog.byCategory", trace.WithAttributes(attribute.String("document.category", c.String())))
	defer span.End()

	docs, err := s.repo.FindByCategory(ctx, c)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "find by category")
		return nil, err
	}
	span.SetAttributes(attribute.Int("document.count", len(docs)))
	return docs, nil
}

func (s *catalogService) All(ctx context.Context) ([]model.Document, error) {
	ctx, span := tracer.Start(ctx, "catalog.all")
	defer span.End()

	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "find all")
		return nil, err
	}
	span.SetAttributes(attribute.Int("document.count", len(docs)))
	return docs, nil
}

func (s *catalogService) EnsureSeeded(ctx context.Context) error {
	n, err := s.repo.EnsureSeeded(ctx)
	if err != nil {
		return fmt.Errorf("seed documents: %w", err)
	}
	s.seeded.Add(float64(n))
	if n == 0 {
		s.log.Info("seed skipped, documents already present")
		return nil
	}
	s.log.Info("seed documents inserted", zap.Int("inserted", n))
	return nil
}

func (s *catalogService) FileURL(ctx context.Context, id string) (string, error) {
	if s.store == nil {
		return "", ErrStorageDisabled
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if doc.FileName == "" {
		return "", ErrNoFile
	}
	if _, err := s.store.Stat(ctx, doc.FileName); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", ErrNoFile
		}
		return "", fmt.Errorf("stat %s: %w", doc.FileName, err)
	}
	u, err := s.store.PresignGet(ctx, doc.FileName, s.presignExpiry)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", doc.FileName, err)
	}
	return u, nil
}
