package services

import (
	"context"

	"taskflow-api/domain/dto"
	"taskflow-api/domain/models"
)

type TaskService interface {
	List(ctx context.Context, filter *dto.TaskFilterRequest) ([]*models.Task, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*models.Task, error)
	UpdateStatus(ctx context.Context, id uint, status models.Status) (*models.Task, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*dto.TaskStatsResponse, error)
}
