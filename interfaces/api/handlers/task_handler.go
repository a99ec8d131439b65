package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"taskflow-api/domain/dto"
	"taskflow-api/domain/models"
	"taskflow-api/domain/services"
	"taskflow-api/pkg/apperrors"
	"taskflow-api/pkg/logger"
	"taskflow-api/pkg/utils"
)

const defaultPageSize = 20

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var filter dto.TaskFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return apperrors.Validation("Invalid query parameters")
	}
	if filter.Size == 0 {
		filter.Size = defaultPageSize
	}

	if err := utils.ValidateStruct(&filter); err != nil {
		message := utils.FirstValidationError(err)
		logger.WarnContext(ctx, "Validation failed", "error", message)
		return apperrors.Validation(message)
	}

	tasks, total, err := h.taskService.List(ctx, &filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return err
	}

	page := dto.NewPageResponse(dto.TasksToTaskResponses(tasks), filter.Page, filter.Size, total)
	return utils.SuccessResponse(c, page)
}

func (h *TaskHandler) GetStats(c *fiber.Ctx) error {
	ctx := c.UserContext()

	stats, err := h.taskService.Stats(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compute task stats", "error", err)
		return err
	}

	return utils.SuccessResponse(c, stats)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return apperrors.Validation("Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		message := utils.FirstValidationError(err)
		logger.WarnContext(ctx, "Validation failed", "error", message)
		return apperrors.Validation(message)
	}

	logger.InfoContext(ctx, "Task creation attempt", "title", req.Title)

	task, err := h.taskService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return apperrors.Validation("Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		message := utils.FirstValidationError(err)
		logger.WarnContext(ctx, "Validation failed", "error", message)
		return apperrors.Validation(message)
	}

	task, err := h.taskService.Update(ctx, taskID, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return apperrors.Validation("Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		message := utils.FirstValidationError(err)
		logger.WarnContext(ctx, "Validation failed", "error", message)
		return apperrors.Validation(message)
	}

	task, err := h.taskService.UpdateStatus(ctx, taskID, models.Status(req.Status))
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(ctx, taskID); err != nil {
		return err
	}

	return utils.NoContentResponse(c)
}

func parseTaskID(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperrors.Validation("Invalid task id: %s", raw)
	}
	return uint(id), nil
}
