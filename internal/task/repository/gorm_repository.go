package repository

import (
	"errors"

	"planner-backend/internal/task/domain"

	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id uint) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByUserID(userID uint, status *domain.TaskStatus) ([]*domain.Task, error) {
	tasks := []*domain.Task{}

	query := r.db.Model(&domain.Task{}).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	err := query.Order("order_index ASC, id ASC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	return r.db.Save(task).Error
}

// Delete walks the subtask tree breadth-first and removes the whole subtree in one transaction.
func (r *gormTaskRepository) Delete(id uint) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		ids := []uint{id}
		seen := map[uint]bool{id: true}
		frontier := []uint{id}

		for len(frontier) > 0 {
			var children []uint
			if err := tx.Model(&domain.Task{}).
				Where("parent_task_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return err
			}
			frontier = frontier[:0]
			for _, child := range children {
				if seen[child] {
					continue
				}
				seen[child] = true
				ids = append(ids, child)
				frontier = append(frontier, child)
			}
		}

		result := tx.Where("id IN ?", ids).Delete(&domain.Task{})
		deleted = result.RowsAffected
		return result.Error
	})
	return deleted, err
}
