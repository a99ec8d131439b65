package serviceimpl

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskflow-api/domain/dto"
	"taskflow-api/domain/models"
	"taskflow-api/domain/repositories"
	"taskflow-api/domain/services"
	"taskflow-api/pkg/apperrors"
	"taskflow-api/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// List — filters เป็น mutually exclusive: ตัวแรกที่ไม่ว่างชนะ ที่เหลือโดนทิ้ง
// ลำดับคือ status > priority > assigneeId > search ถ้าไม่มีเลยคืนทั้งหมด
func (s *TaskServiceImpl) List(ctx context.Context, filter *dto.TaskFilterRequest) ([]*models.Task, int64, error) {
	offset := filter.Page * filter.Size
	limit := filter.Size

	switch {
	case filter.Status != "":
		return s.taskRepo.ListByStatus(ctx, models.Status(filter.Status), offset, limit)
	case filter.Priority != "":
		return s.taskRepo.ListByPriority(ctx, models.Priority(filter.Priority), offset, limit)
	case filter.AssigneeID != nil:
		return s.taskRepo.ListByAssignee(ctx, *filter.AssigneeID, offset, limit)
	case strings.TrimSpace(filter.Search) != "":
		return s.taskRepo.SearchByTitle(ctx, filter.Search, offset, limit)
	}
	return s.taskRepo.ListAll(ctx, offset, limit)
}

func (s *TaskServiceImpl) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Task not found: %d", id)
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskServiceImpl) Create(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	assignee, err := s.resolveAssignee(ctx, req.AssigneeID)
	if err != nil {
		return nil, err
	}

	task := dto.CreateTaskRequestToTask(req)
	if assignee != nil {
		task.AssigneeID = &assignee.ID
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}
	task.Assignee = assignee

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "title", task.Title)

	return task, nil
}

// Update แทนที่ title, description, status, priority, dueDate และ assignee ทั้งหมด
// creation timestamp ไม่ถูกแตะ
func (s *TaskServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	assignee, err := s.resolveAssignee(ctx, req.AssigneeID)
	if err != nil {
		return nil, err
	}

	updated := dto.UpdateTaskRequestToTask(req)
	if assignee != nil {
		updated.AssigneeID = &assignee.ID
	}

	if err := s.taskRepo.Update(ctx, id, updated); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Task not found: %d", id)
		}
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id)

	return s.GetByID(ctx, id)
}

// UpdateStatus แก้เฉพาะ status กับ updated_at field อื่นไม่ถูกแตะ
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, id uint, status models.Status) (*models.Task, error) {
	if err := s.taskRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Task not found: %d", id)
		}
		logger.ErrorContext(ctx, "Failed to update task status", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task status updated", "task_id", id, "status", status)

	return s.GetByID(ctx, id)
}

func (s *TaskServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Task not found: %d", id)
		}
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)

	return nil
}

func (s *TaskServiceImpl) Stats(ctx context.Context) (*dto.TaskStatsResponse, error) {
	total, err := s.taskRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.taskRepo.CountByStatus(ctx, models.StatusInProgress)
	if err != nil {
		return nil, err
	}
	completed, err := s.taskRepo.CountByStatus(ctx, models.StatusDone)
	if err != nil {
		return nil, err
	}
	// overdue = due date เลยวันนี้แล้วและยังไม่ DONE / ไม่มี due date ไม่นับ
	overdue, err := s.taskRepo.CountOverdue(ctx, models.Today(), models.StatusDone)
	if err != nil {
		return nil, err
	}

	return &dto.TaskStatsResponse{
		Total:      total,
		InProgress: inProgress,
		Completed:  completed,
		Overdue:    overdue,
	}, nil
}

func (s *TaskServiceImpl) resolveAssignee(ctx context.Context, assigneeID *uint) (*models.User, error) {
	if assigneeID == nil {
		return nil, nil
	}
	assignee, err := s.userRepo.GetByID(ctx, *assigneeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Assignee not found", "assignee_id", *assigneeID)
			return nil, apperrors.NotFound("User not found: %d", *assigneeID)
		}
		return nil, err
	}
	return assignee, nil
}
