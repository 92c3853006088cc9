package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

const matterColumns = `id, tenant_id, title, description, client_name, client_email, client_phone,
	status, matter_type, assigned_to, created_at, updated_at`

// MatterRepository persists matters. Every method takes the tenant-scoped
// channel; the RLS policies confine reads and writes to the bound tenant,
// and inserts stamp the channel's tenant id explicitly as well.
type MatterRepository struct{}

func NewMatterRepository() *MatterRepository {
	return &MatterRepository{}
}

func (r *MatterRepository) List(ctx context.Context, ch tenancy.Channel) ([]domain.Matter, error) {
	query := `
		SELECT ` + matterColumns + `
		FROM matters
		ORDER BY created_at DESC
	`

	rows, err := ch.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list matters: %w", err)
	}
	defer rows.Close()

	var matters []domain.Matter
	for rows.Next() {
		m, err := scanMatter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan matter: %w", err)
		}
		matters = append(matters, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list matters: %w", err)
	}
	return matters, nil
}

func (r *MatterRepository) FindByID(ctx context.Context, ch tenancy.Channel, id uuid.UUID) (*domain.Matter, error) {
	query := `
		SELECT ` + matterColumns + `
		FROM matters
		WHERE id = $1
	`

	rows, err := ch.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("find matter: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("find matter: %w", err)
		}
		return nil, domain.ErrNotFound
	}
	m, err := scanMatter(rows)
	if err != nil {
		return nil, fmt.Errorf("scan matter: %w", err)
	}
	return &m, nil
}

func (r *MatterRepository) Store(ctx context.Context, ch tenancy.Channel, m *domain.Matter) error {
	m.TenantID = ch.TenantID()

	query := `
		INSERT INTO matters (id, tenant_id, title, description, client_name, client_email,
			client_phone, status, matter_type, assigned_to, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := ch.ExecContext(ctx, query,
		m.ID,
		m.TenantID,
		m.Title,
		m.Description,
		m.ClientName,
		m.ClientEmail,
		m.ClientPhone,
		m.Status,
		m.MatterType,
		m.AssignedTo,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("store matter: %w", err)
	}
	return nil
}

func (r *MatterRepository) Update(ctx context.Context, ch tenancy.Channel, id uuid.UUID, upd domain.MatterUpdate) (*domain.Matter, error) {
	query := `
		UPDATE matters SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			client_name = COALESCE($4, client_name),
			client_email = COALESCE($5, client_email),
			client_phone = COALESCE($6, client_phone),
			status = COALESCE($7, status),
			matter_type = COALESCE($8, matter_type),
			assigned_to = COALESCE($9, assigned_to),
			updated_at = $10
		WHERE id = $1
		RETURNING ` + matterColumns + `
	`

	rows, err := ch.QueryContext(ctx, query,
		id,
		upd.Title,
		upd.Description,
		upd.ClientName,
		upd.ClientEmail,
		upd.ClientPhone,
		upd.Status,
		upd.MatterType,
		upd.AssignedTo,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("update matter: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("update matter: %w", err)
		}
		return nil, domain.ErrNotFound
	}
	m, err := scanMatter(rows)
	if err != nil {
		return nil, fmt.Errorf("scan matter: %w", err)
	}
	return &m, nil
}

func (r *MatterRepository) Delete(ctx context.Context, ch tenancy.Channel, id uuid.UUID) error {
	result, err := ch.ExecContext(ctx, `DELETE FROM matters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete matter: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete matter: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanMatter reads one matter row from either a *sql.Row or *sql.Rows.
func scanMatter(row interface{ Scan(...any) error }) (domain.Matter, error) {
	var (
		m           domain.Matter
		description sql.NullString
		clientEmail sql.NullString
		clientPhone sql.NullString
		matterType  sql.NullString
		assignedTo  uuid.NullUUID
	)
	if err := row.Scan(
		&m.ID,
		&m.TenantID,
		&m.Title,
		&description,
		&m.ClientName,
		&clientEmail,
		&clientPhone,
		&m.Status,
		&matterType,
		&assignedTo,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return domain.Matter{}, err
	}
	m.Description = description.String
	m.ClientEmail = clientEmail.String
	m.ClientPhone = clientPhone.String
	m.MatterType = matterType.String
	if assignedTo.Valid {
		m.AssignedTo = &assignedTo.UUID
	}
	return m, nil
}
