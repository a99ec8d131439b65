package serviceimpl

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskflow-api/domain/dto"
	"taskflow-api/domain/models"
	"taskflow-api/domain/repositories"
	"taskflow-api/infrastructure/postgres"
)

// newTestDB สร้าง sqlite in-memory แยกต่อ test พร้อม schema จริง
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

type testEnv struct {
	userRepo repositories.UserRepository
	taskRepo repositories.TaskRepository
	users    *UserServiceImpl
	tasks    *TaskServiceImpl
	auth     *AuthServiceImpl
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	return &testEnv{
		userRepo: userRepo,
		taskRepo: taskRepo,
		users:    NewUserService(userRepo).(*UserServiceImpl),
		tasks:    NewTaskService(taskRepo, userRepo).(*TaskServiceImpl),
		auth:     NewAuthService(userRepo).(*AuthServiceImpl),
	}
}

func (e *testEnv) createUser(t *testing.T, name, email string) *models.User {
	t.Helper()

	user, err := e.users.Create(context.Background(), &dto.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createTask(t *testing.T, req *dto.CreateTaskRequest) *models.Task {
	t.Helper()

	task, err := e.tasks.Create(context.Background(), req)
	require.NoError(t, err)
	return task
}
