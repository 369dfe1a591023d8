package usecase

import (
	"log"
	"strings"

	"planner-backend/internal/task/domain"
	"planner-backend/internal/task/repository"
	"planner-backend/pkg/apperror"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) CreateTask(userID uint, req *TaskCreateRequest) (*domain.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.MissingField("title")
	}

	task := &domain.Task{
		UserID:      userID,
		Title:       title,
		Description: req.Description,
		Priority:    parsePriority(req.Priority),
		Status:      parseStatus(req.Status),
		OrderIndex:  req.OrderIndex,
	}
	if req.DueDate != nil {
		due := req.DueDate.UTC()
		task.DueDate = &due
	}

	if req.ParentTaskID != nil {
		if _, err := u.GetTaskByID(userID, *req.ParentTaskID); err != nil {
			return nil, parentError(err)
		}
		parent := *req.ParentTaskID
		task.ParentTaskID = &parent
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, apperror.Internal(err)
	}

	return task, nil
}

func (u *taskUsecase) GetTaskByID(userID, taskID uint) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if task == nil {
		return nil, apperror.NotFound("Task")
	}
	if task.UserID != userID {
		return nil, apperror.Forbidden()
	}
	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID uint, status *string) ([]*domain.Task, error) {
	var statusFilter *domain.TaskStatus
	if status != nil && *status != "" {
		s := domain.TaskStatus(*status)
		switch s {
		case domain.TaskStatusTodo, domain.TaskStatusInProgress, domain.TaskStatusCompleted:
		default:
			return nil, apperror.BadRequest("invalid status filter")
		}
		statusFilter = &s
	}

	tasks, err := u.taskRepo.FindByUserID(userID, statusFilter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return tasks, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID uint, updates *TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		title := strings.TrimSpace(*updates.Title)
		if title == "" {
			return nil, apperror.BadRequest("title cannot be empty")
		}
		task.Title = title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Priority != nil {
		task.Priority = parsePriority(*updates.Priority)
	}
	if updates.Status != nil {
		task.Status = parseStatus(*updates.Status)
	}
	if updates.OrderIndex != nil {
		task.OrderIndex = *updates.OrderIndex
	}
	if updates.DueDate.Set {
		if updates.DueDate.Valid {
			due := updates.DueDate.Value.UTC()
			task.DueDate = &due
		} else {
			task.DueDate = nil
		}
	}
	if updates.ParentTaskID.Set {
		if !updates.ParentTaskID.Valid {
			task.ParentTaskID = nil
		} else {
			parentID := updates.ParentTaskID.Value
			if err := u.checkParent(userID, task.ID, parentID); err != nil {
				return nil, err
			}
			task.ParentTaskID = &parentID
		}
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, apperror.Internal(err)
	}

	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID uint) error {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return err
	}

	deleted, err := u.taskRepo.Delete(task.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	if deleted > 1 {
		log.Printf("[Task] deleted task %d with %d subtasks", task.ID, deleted-1)
	}
	return nil
}

// checkParent rejects a parent the user does not own and any link that would make taskID its own ancestor.
func (u *taskUsecase) checkParent(userID, taskID, parentID uint) error {
	if parentID == taskID {
		return apperror.BadRequest("a task cannot be its own parent")
	}

	visited := map[uint]bool{taskID: true}
	current := parentID
	for {
		ancestor, err := u.GetTaskByID(userID, current)
		if err != nil {
			return parentError(err)
		}
		visited[current] = true
		if ancestor.ParentTaskID == nil {
			return nil
		}
		next := *ancestor.ParentTaskID
		if visited[next] {
			return apperror.BadRequest("a task cannot be its own ancestor")
		}
		current = next
	}
}

func parentError(err error) error {
	if apperror.KindOf(err) == apperror.KindNotFound {
		return apperror.NotFound("Parent task")
	}
	return err
}

func parsePriority(p string) domain.Priority {
	switch p {
	case "high":
		return domain.PriorityHigh
	case "low":
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}

func parseStatus(s string) domain.TaskStatus {
	switch s {
	case "in_progress":
		return domain.TaskStatusInProgress
	case "completed":
		return domain.TaskStatusCompleted
	default:
		return domain.TaskStatusTodo
	}
}
