package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskflow-api/domain/dto"
	"taskflow-api/domain/services"
	"taskflow-api/pkg/apperrors"
	"taskflow-api/pkg/logger"
	"taskflow-api/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login ตรวจ credentials แล้วคืน user (ไม่มี password hash) ไม่มี token
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return apperrors.Validation("Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		message := utils.FirstValidationError(err)
		logger.WarnContext(ctx, "Validation failed", "error", message)
		return apperrors.Validation(message)
	}

	logger.InfoContext(ctx, "Login attempt", "email", req.Email)

	user, err := h.authService.Login(ctx, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}
