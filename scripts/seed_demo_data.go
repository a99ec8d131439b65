package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taskflow-api/domain/models"
)

// Config from .env
const (
	DB_HOST     = "localhost"
	DB_PORT     = "5432"
	DB_USER     = "postgres"
	DB_PASSWORD = "postgres"
	DB_NAME     = "taskflow"
)

// seed ข้อมูล demo สำหรับลองยิง API (go run scripts/seed_demo_data.go)
func main() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	users := []models.User{
		{Name: "Alice Admin", Email: "alice@taskflow.local", PasswordHash: string(hash), IsActive: true},
		{Name: "Bob Builder", Email: "bob@taskflow.local", PasswordHash: string(hash), IsActive: true},
		{Name: "Carol Closed", Email: "carol@taskflow.local", PasswordHash: string(hash), IsActive: false},
	}
	for i := range users {
		if err := db.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			log.Fatalf("seed user %s: %v", users[i].Email, err)
		}
		fmt.Printf("user #%d %s\n", users[i].ID, users[i].Email)
	}

	yesterday := models.NewDateOnly(time.Now().UTC().AddDate(0, 0, -1))
	nextWeek := models.NewDateOnly(time.Now().UTC().AddDate(0, 0, 7))

	tasks := []models.Task{
		{Title: "Set up CI pipeline", Status: models.StatusInProgress, Priority: models.PriorityHigh, AssigneeID: &users[0].ID, DueDate: &nextWeek},
		{Title: "Write onboarding docs", Status: models.StatusTodo, Priority: models.PriorityMedium, AssigneeID: &users[1].ID},
		{Title: "Fix login timeout", Status: models.StatusTodo, Priority: models.PriorityCritical, DueDate: &yesterday},
		{Title: "Archive old reports", Status: models.StatusDone, Priority: models.PriorityLow},
	}
	for i := range tasks {
		if err := db.Where("title = ?", tasks[i].Title).FirstOrCreate(&tasks[i]).Error; err != nil {
			log.Fatalf("seed task %q: %v", tasks[i].Title, err)
		}
		fmt.Printf("task #%d %s\n", tasks[i].ID, tasks[i].Title)
	}

	fmt.Println("done")
}
