package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

const documentColumns = `id, tenant_id, matter_id, title, file_name, file_path, file_size,
	file_type, description, status, uploaded_by, created_at, updated_at`

// DocumentRepository persists document metadata through the tenant-scoped
// channel.
type DocumentRepository struct{}

func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

// List returns the tenant's documents, newest first, optionally filtered to
// one matter.
func (r *DocumentRepository) List(ctx context.Context, ch tenancy.Channel, matterID *uuid.UUID) ([]domain.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
	`
	args := []any{}
	if matterID != nil {
		query += ` WHERE matter_id = $1`
		args = append(args, *matterID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := ch.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (r *DocumentRepository) ListByMatter(ctx context.Context, ch tenancy.Channel, matterID uuid.UUID) ([]domain.Document, error) {
	return r.List(ctx, ch, &matterID)
}

func (r *DocumentRepository) Store(ctx context.Context, ch tenancy.Channel, d *domain.Document) error {
	d.TenantID = ch.TenantID()

	query := `
		INSERT INTO documents (id, tenant_id, matter_id, title, file_name, file_path,
			file_size, file_type, description, status, uploaded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := ch.ExecContext(ctx, query,
		d.ID,
		d.TenantID,
		d.MatterID,
		d.Title,
		d.FileName,
		d.FilePath,
		d.FileSize,
		d.FileType,
		d.Description,
		d.Status,
		d.UploadedBy,
		d.CreatedAt,
		d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("store document: %w", err)
	}
	return nil
}

func scanDocument(row interface{ Scan(...any) error }) (domain.Document, error) {
	var (
		d           domain.Document
		description sql.NullString
	)
	if err := row.Scan(
		&d.ID,
		&d.TenantID,
		&d.MatterID,
		&d.Title,
		&d.FileName,
		&d.FilePath,
		&d.FileSize,
		&d.FileType,
		&description,
		&d.Status,
		&d.UploadedBy,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return domain.Document{}, err
	}
	d.Description = description.String
	return d, nil
}
