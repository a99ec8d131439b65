package repositories

import (
	"context"

	"taskflow-api/domain/models"
)

// TaskRepository — ทุก list method เรียงตาม created_at DESC เสมอ
// และคืน total count ของ filter นั้นมาด้วย
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	Update(ctx context.Context, id uint, task *models.Task) error
	UpdateStatus(ctx context.Context, id uint, status models.Status) error
	Delete(ctx context.Context, id uint) error

	ListAll(ctx context.Context, offset, limit int) ([]*models.Task, int64, error)
	ListByStatus(ctx context.Context, status models.Status, offset, limit int) ([]*models.Task, int64, error)
	ListByPriority(ctx context.Context, priority models.Priority, offset, limit int) ([]*models.Task, int64, error)
	ListByAssignee(ctx context.Context, assigneeID uint, offset, limit int) ([]*models.Task, int64, error)
	SearchByTitle(ctx context.Context, search string, offset, limit int) ([]*models.Task, int64, error)

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.Status) (int64, error)
	CountOverdue(ctx context.Context, before models.DateOnly, excluded models.Status) (int64, error)
}
