package postgres

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskflow-api/domain/models"
	"taskflow-api/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	// Omit associations ไม่ให้ gorm แตะ row ของ assignee
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Preload("Assignee").Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update แทนที่ทุก field ใน statement เดียว โดยยึด id เป็นหลัก
// ถ้า row โดนลบไปแล้วจะไม่มีอะไรถูกเขียน (กัน resurrect)
func (r *TaskRepositoryImpl) Update(ctx context.Context, id uint, task *models.Task) error {
	var dueDate interface{}
	if task.DueDate != nil {
		dueDate = *task.DueDate
	}

	res := r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"priority":    task.Priority,
			"due_date":    dueDate,
			"assignee_id": task.AssigneeID,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status models.Status) error {
	res := r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Task{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) ListAll(ctx context.Context, offset, limit int) ([]*models.Task, int64, error) {
	return r.list(ctx, nil, offset, limit)
}

func (r *TaskRepositoryImpl) ListByStatus(ctx context.Context, status models.Status, offset, limit int) ([]*models.Task, int64, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("status = ?", status)
	}, offset, limit)
}

func (r *TaskRepositoryImpl) ListByPriority(ctx context.Context, priority models.Priority, offset, limit int) ([]*models.Task, int64, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("priority = ?", priority)
	}, offset, limit)
}

func (r *TaskRepositoryImpl) ListByAssignee(ctx context.Context, assigneeID uint, offset, limit int) ([]*models.Task, int64, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("assignee_id = ?", assigneeID)
	}, offset, limit)
}

func (r *TaskRepositoryImpl) SearchByTitle(ctx context.Context, search string, offset, limit int) ([]*models.Task, int64, error) {
	pattern := "%" + strings.ToLower(search) + "%"
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		// LOWER + LIKE ใช้ได้ทั้ง postgres และ sqlite (ILIKE เป็นของ postgres อย่างเดียว)
		return q.Where("LOWER(title) LIKE ?", pattern)
	}, offset, limit)
}

func (r *TaskRepositoryImpl) list(ctx context.Context, cond func(*gorm.DB) *gorm.DB, offset, limit int) ([]*models.Task, int64, error) {
	// สร้าง query ใหม่ทุกครั้ง ไม่ reuse statement ข้าม Count/Find
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Task{})
		if cond != nil {
			q = cond(q)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []*models.Task
	err := base().
		Preload("Assignee").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r *TaskRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) CountByStatus(ctx context.Context, status models.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) CountOverdue(ctx context.Context, before models.DateOnly, excluded models.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("due_date IS NOT NULL AND due_date < ? AND status <> ?", before.Time, excluded).
		Count(&count).Error
	return count, err
}
