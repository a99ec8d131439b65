package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow-api/domain/dto"
)

func TestTaskOverdueLifecycle(t *testing.T) {
	api := newTestAPI(t)

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	resp := api.do(t, http.MethodPost, "/api/tasks", fiber.Map{
		"title":    "late delivery",
		"status":   "TODO",
		"priority": "HIGH",
		"dueDate":  yesterday,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.TaskResponse
	decodeBody(t, resp, &created)
	require.NotZero(t, created.ID)
	require.NotNil(t, created.DueDate)
	assert.Equal(t, yesterday, created.DueDate.String())

	resp = api.do(t, http.MethodGet, "/api/tasks/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats dto.TaskStatsResponse
	decodeBody(t, resp, &stats)
	assert.EqualValues(t, 1, stats.Total)
	assert.EqualValues(t, 1, stats.Overdue)

	// ปิดงาน → หายจาก overdue
	resp = api.do(t, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", created.ID), fiber.Map{
		"status": "DONE",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/tasks/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &stats)
	assert.EqualValues(t, 0, stats.Overdue)
	assert.EqualValues(t, 1, stats.Completed)
}

func TestCreateTaskUnknownAssignee(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/api/tasks", fiber.Map{
		"title":      "orphan task",
		"status":     "TODO",
		"priority":   "LOW",
		"assigneeId": 9999,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "User not found: 9999", body["message"])

	// ต้องไม่มีอะไรถูกสร้าง
	resp = api.do(t, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page dto.PageResponse
	decodeBody(t, resp, &page)
	assert.EqualValues(t, 0, page.TotalElements)
}

func TestCreateTaskValidation(t *testing.T) {
	api := newTestAPI(t)

	// title สั้นเกินไป
	resp := api.do(t, http.MethodPost, "/api/tasks", fiber.Map{
		"title":    "ab",
		"status":   "TODO",
		"priority": "LOW",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// enum ผิด
	resp = api.do(t, http.MethodPost, "/api/tasks", fiber.Map{
		"title":    "valid title",
		"status":   "PENDING",
		"priority": "LOW",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// dueDate เป็น "" ต้องโดน 400 ไม่ใช่หลุดเข้าไปเป็น 0001-01-01 แล้วถูกนับ overdue
	resp = api.do(t, http.MethodPost, "/api/tasks", fiber.Map{
		"title":    "empty due date",
		"status":   "TODO",
		"priority": "LOW",
		"dueDate":  "",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/tasks/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats dto.TaskStatsResponse
	decodeBody(t, resp, &stats)
	assert.EqualValues(t, 0, stats.Total)
	assert.EqualValues(t, 0, stats.Overdue)
}

func TestErrorBodyShape(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodGet, "/api/tasks/999", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)

	assert.Contains(t, body, "timestamp")
	assert.EqualValues(t, http.StatusNotFound, body["status"])
	assert.Equal(t, "Not Found", body["error"])
	assert.Equal(t, "Task not found: 999", body["message"])
	assert.Equal(t, "/api/tasks/999", body["path"])
}

func TestListTasksPagination(t *testing.T) {
	api := newTestAPI(t)

	for i := 0; i < 3; i++ {
		resp := api.do(t, http.MethodPost, "/api/tasks", fiber.Map{
			"title":    fmt.Sprintf("task number %d", i),
			"status":   "TODO",
			"priority": "LOW",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := api.do(t, http.MethodGet, "/api/tasks?page=0&size=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page struct {
		Content       []dto.TaskResponse `json:"content"`
		Page          int                `json:"page"`
		Size          int                `json:"size"`
		TotalElements int64              `json:"totalElements"`
		TotalPages    int                `json:"totalPages"`
	}
	decodeBody(t, resp, &page)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 2, page.Size)
	assert.EqualValues(t, 3, page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)

	resp = api.do(t, http.MethodGet, "/api/tasks?page=1&size=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &page)
	assert.Len(t, page.Content, 1)
	assert.Equal(t, 1, page.Page)
}

func TestDeleteTaskEndpoint(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/api/tasks", fiber.Map{
		"title":    "to be removed",
		"status":   "TODO",
		"priority": "LOW",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.TaskResponse
	decodeBody(t, resp, &created)

	resp = api.do(t, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = api.do(t, http.MethodGet, fmt.Sprintf("/api/tasks/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTaskIDMustBeNumeric(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodGet, "/api/tasks/abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid task id: abc", body["message"])
}
