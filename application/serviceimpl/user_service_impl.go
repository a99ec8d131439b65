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

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) services.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) List(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found: %d", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.WarnContext(ctx, "Email already registered", "email", req.Email)
		return nil, apperrors.Conflict("Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		IsActive:     active,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// backstop กรณี insert ชนกันพร้อม ๆ กัน unique index จะจับให้
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Email already registered")
		}
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User created", "user_id", user.ID, "email", user.Email)

	return user, nil
}

func (s *UserServiceImpl) SetActive(ctx context.Context, id uint, active bool) (*models.User, error) {
	if err := s.userRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found: %d", id)
		}
		return nil, err
	}

	logger.InfoContext(ctx, "User active flag updated", "user_id", id, "active", active)

	return s.GetByID(ctx, id)
}
