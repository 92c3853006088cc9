package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

type taskService struct {
	scoper  *tenancy.Scoper
	tasks   TaskRepository
	matters MatterRepository
}

func NewTaskService(scoper *tenancy.Scoper, tasks TaskRepository, matters MatterRepository) TaskUseCase {
	return &taskService{
		scoper:  scoper,
		tasks:   tasks,
		matters: matters,
	}
}

func (s *taskService) List(ctx context.Context, matterID *uuid.UUID) ([]domain.Task, error) {
	return tenancy.WithTenantScope(ctx, s.scoper, func(ctx context.Context, ch tenancy.Channel) ([]domain.Task, error) {
		return s.tasks.List(ctx, ch, matterID)
	})
}

func (s *taskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	return tenancy.WithTenantScope(ctx, s.scoper, func(ctx context.Context, ch tenancy.Channel) (*domain.Task, error) {
		if _, err := s.matters.FindByID(ctx, ch, input.MatterID); err != nil {
			return nil, err
		}

		membership := tenancy.MembershipFromContext(ctx)
		now := time.Now().UTC()
		task := &domain.Task{
			ID:          uuid.New(),
			MatterID:    input.MatterID,
			TaskType:    input.TaskType,
			Title:       input.Title,
			Description: input.Description,
			Status:      domain.TaskPending,
			CreatedBy:   membership.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.tasks.Store(ctx, ch, task); err != nil {
			return nil, err
		}
		return task, nil
	})
}
