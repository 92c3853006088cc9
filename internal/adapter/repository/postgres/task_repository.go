package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

const taskColumns = `id, tenant_id, matter_id, task_type, title, description, status,
	created_by, created_at, updated_at`

// TaskRepository persists legal tasks through the tenant-scoped channel.
type TaskRepository struct{}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// List returns the tenant's tasks, newest first, optionally filtered to one
// matter.
func (r *TaskRepository) List(ctx context.Context, ch tenancy.Channel, matterID *uuid.UUID) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
	`
	args := []any{}
	if matterID != nil {
		query += ` WHERE matter_id = $1`
		args = append(args, *matterID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := ch.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Store(ctx context.Context, ch tenancy.Channel, t *domain.Task) error {
	t.TenantID = ch.TenantID()

	query := `
		INSERT INTO tasks (id, tenant_id, matter_id, task_type, title, description,
			status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := ch.ExecContext(ctx, query,
		t.ID,
		t.TenantID,
		t.MatterID,
		t.TaskType,
		t.Title,
		t.Description,
		t.Status,
		t.CreatedBy,
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("store task: %w", err)
	}
	return nil
}

func scanTask(row interface{ Scan(...any) error }) (domain.Task, error) {
	var (
		t           domain.Task
		description sql.NullString
	)
	if err := row.Scan(
		&t.ID,
		&t.TenantID,
		&t.MatterID,
		&t.TaskType,
		&t.Title,
		&description,
		&t.Status,
		&t.CreatedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return domain.Task{}, err
	}
	t.Description = description.String
	return t, nil
}
