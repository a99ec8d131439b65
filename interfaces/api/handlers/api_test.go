package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskflow-api/application/serviceimpl"
	"taskflow-api/domain/dto"
	"taskflow-api/domain/models"
	"taskflow-api/domain/services"
	"taskflow-api/infrastructure/postgres"
	"taskflow-api/interfaces/api/handlers"
	"taskflow-api/interfaces/api/middleware"
	"taskflow-api/interfaces/api/routes"
)

type testAPI struct {
	app   *fiber.App
	users services.UserService
}

// newTestAPI ต่อ app จริงทั้งแท่ง (middleware, routes, error handler) บน sqlite in-memory
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	userService := serviceimpl.NewUserService(userRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(middleware.RequestIDMiddleware())

	h := handlers.NewHandlers(&handlers.Services{
		AuthService: serviceimpl.NewAuthService(userRepo),
		UserService: userService,
		TaskService: serviceimpl.NewTaskService(taskRepo, userRepo),
	})
	routes.SetupRoutes(app, h)

	return &testAPI{app: app, users: userService}
}

func (a *testAPI) seedUser(t *testing.T, name, email, password string) *models.User {
	t.Helper()

	user, err := a.users.Create(context.Background(), &dto.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}
