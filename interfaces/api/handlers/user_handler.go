package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskflow-api/domain/dto"
	"taskflow-api/domain/services"
	"taskflow-api/pkg/logger"
	"taskflow-api/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	users, err := h.userService.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return err
	}

	responses := make([]*dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = dto.UserToUserResponse(user)
	}

	return utils.SuccessResponse(c, responses)
}
