package repository

import (
	"context"
	"errors"

	"doccatalog/internal/model"
)

var (
	// ErrStoreUnavailable wraps every persistence failure, including rows the
	// store returns in a shape the model cannot accept.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrNotFound is returned by FindByID when no record has the given ID.
	ErrNotFound = errors.New("document not found")
)

// DocumentRepository is the persistent collection of document records.
// Implementations contain no business logic beyond the one-time seed.
type DocumentRepository interface {
	// EnsureSeeded inserts the fixture records if and only if the collection is empty.
	// It returns the number of inserted records, which is 0 on a populated store.
	EnsureSeeded(ctx context.Context) (int, error)

	// FindByCategory returns every record in the category, in the store's natural order.
	// No match yields an empty slice, never an error.
	FindByCategory(ctx context.Context, category model.Category) ([]model.Document, error)

	// FindAll returns every record in the collection.
	FindAll(ctx context.Context) ([]model.Document, error)

	// FindByID returns a single record.
	FindByID(ctx context.Context, id string) (*model.Document, error)
}
