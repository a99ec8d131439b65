package services

import (
	"context"

	"taskflow-api/domain/dto"
	"taskflow-api/domain/models"
)

type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	SetActive(ctx context.Context, id uint, active bool) (*models.User, error)
}
