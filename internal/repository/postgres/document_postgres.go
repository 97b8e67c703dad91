package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"doccatalog/internal/model"
	"doccatalog/internal/repository"
)

// seedLockKey identifies the advisory lock that serializes seeding across
// instances starting against the same database.
const seedLockKey int64 = 2026101901

const documentColumns = `id, title, category, description, file_name, upload_date`

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries.
type DocumentPostgres struct {
	db  *sql.DB
	now func() time.Time
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db, now: time.Now}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// EnsureSeeded inserts the fixture records when the table is empty.
// Count and inserts share one transaction holding pg_advisory_xact_lock, so
// concurrent first starts cannot both observe an empty table.
func (r *DocumentPostgres) EnsureSeeded(ctx context.Context) (int, error) {
	seeds := repository.SeedDocuments()
	for _, d := range seeds {
		if err := d.Validate(); err != nil {
			return 0, fmt.Errorf("seed %q: %w", d.Title, err)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, unavailable("begin seed tx", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, seedLockKey); err != nil {
		return 0, unavailable("acquire seed lock", err)
	}

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count); err != nil {
		return 0, unavailable("count documents", err)
	}
	if count > 0 {
		return 0, nil
	}

	const q = `
		INSERT INTO documents (title, category, description, file_name, upload_date)
		VALUES ($1, $2, $3, $4, $5)
	`
	now := r.now().UTC()
	for _, d := range seeds {
		uploaded := d.UploadDate
		if uploaded.IsZero() {
			uploaded = now
		}
		if _, err := tx.ExecContext(ctx, q,
			d.Title,
			string(d.Category),
			nullString(d.Description),
			nullString(d.FileName),
			uploaded,
		); err != nil {
			return 0, unavailable("insert seed "+d.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, unavailable("commit seed tx", err)
	}
	return len(seeds), nil
}

// FindByCategory returns every document in the given category.
func (r *DocumentPostgres) FindByCategory(ctx context.Context, category model.Category) ([]model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE category = $1`
	rows, err := r.db.QueryContext(ctx, q, string(category))
	if err != nil {
		return nil, unavailable("find by category", err)
	}
	return scanDocuments(rows)
}

// FindAll returns every document.
func (r *DocumentPostgres) FindAll(ctx context.Context) ([]model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, unavailable("find all", err)
	}
	return scanDocuments(rows)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	d, err := scanDocument(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, unavailable("find by id", err)
	}
	return d, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(s rowScanner) (*model.Document, error) {
	var (
		d           model.Document
		category    string
		description sql.NullString
		fileName    sql.NullString
	)
	if err := s.Scan(&d.ID, &d.Title, &category, &description, &fileName, &d.UploadDate); err != nil {
		return nil, err
	}
	c, err := model.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("malformed row %s: %w", d.ID, err)
	}
	d.Category = c
	d.Description = description.String
	d.FileName = fileName.String
	return &d, nil
}

func scanDocuments(rows *sql.Rows) ([]model.Document, error) {
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, unavailable("scan document", err)
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate documents", err)
	}
	return items, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, repository.ErrStoreUnavailable, err)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
