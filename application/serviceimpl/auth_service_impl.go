package serviceimpl

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskflow-api/domain/dto"
	"taskflow-api/domain/models"
	"taskflow-api/domain/repositories"
	"taskflow-api/domain/services"
	"taskflow-api/pkg/apperrors"
	"taskflow-api/pkg/logger"
)

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) services.AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Login failed - email not found", "email", req.Email)
			// ข้อความเดียวกันทั้ง email ไม่เจอและ password ผิด ไม่บอกใบ้ว่าพลาดตรงไหน
			return nil, apperrors.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID, "email", req.Email)
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "email", user.Email)

	return user, nil
}
