package services

import (
	"context"

	"taskflow-api/domain/dto"
	"taskflow-api/domain/models"
)

type AuthService interface {
	// Login ตรวจ email+password แบบ stateless ไม่มี session/token
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error)
}
