package dto

import (
	"time"

	"taskflow-api/domain/models"
)

type CreateTaskRequest struct {
	Title       string           `json:"title" validate:"required,min=3,max=200"`
	Description string           `json:"description"`
	Status      string           `json:"status" validate:"required,oneof=TODO IN_PROGRESS DONE"`
	Priority    string           `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	DueDate     *models.DateOnly `json:"dueDate"`
	AssigneeID  *uint            `json:"assigneeId"`
}

// UpdateTaskRequest แทนที่ทุก field ของ task (full replacement)
type UpdateTaskRequest struct {
	Title       string           `json:"title" validate:"required,min=3,max=200"`
	Description string           `json:"description"`
	Status      string           `json:"status" validate:"required,oneof=TODO IN_PROGRESS DONE"`
	Priority    string           `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	DueDate     *models.DateOnly `json:"dueDate"`
	AssigneeID  *uint            `json:"assigneeId"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=TODO IN_PROGRESS DONE"`
}

// TaskFilterRequest — filters เป็น mutually exclusive ตามลำดับ
// status > priority > assigneeId > search (ตัวแรกที่ไม่ว่างชนะ)
type TaskFilterRequest struct {
	Status     string `query:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority   string `query:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	AssigneeID *uint  `query:"assigneeId"`
	Search     string `query:"search"`
	Page       int    `query:"page" validate:"min=0"`
	Size       int    `query:"size" validate:"min=1,max=100"`
}

type TaskResponse struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      models.Status    `json:"status"`
	Priority    models.Priority  `json:"priority"`
	DueDate     *models.DateOnly `json:"dueDate"`
	Assignee    *UserResponse    `json:"assignee"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type TaskStatsResponse struct {
	Total      int64 `json:"total"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
	Overdue    int64 `json:"overdue"`
}
