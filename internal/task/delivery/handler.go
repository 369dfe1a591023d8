package delivery

import (
	"net/http"

	"planner-backend/internal/task/usecase"
	"planner-backend/pkg/httputil"
	"planner-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// GetTasks returns all tasks for the authenticated user
// GET /tasks?user_id=&status=todo
func (h *TaskHandler) GetTasks(c *gin.Context) {
	if err := httputil.EnsureUserScope(c, c.Query("user_id")); err != nil {
		httputil.Error(c, err)
		return
	}

	var statusPtr *string
	if status := c.Query("status"); status != "" {
		statusPtr = &status
	}

	tasks, err := h.taskUsecase.GetUserTasks(httputil.CurrentUserID(c), statusPtr)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID returns a specific task
// GET /tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	taskID, err := httputil.ParamID(c, "id")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	task, err := h.taskUsecase.GetTaskByID(httputil.CurrentUserID(c), taskID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
// POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req usecase.TaskCreateRequest
	if err := httputil.BindJSON(c, &req); err != nil {
		httputil.Error(c, err)
		return
	}
	if err := httputil.EnsureBodyUserScope(c, req.UserID); err != nil {
		httputil.Error(c, err)
		return
	}

	task, err := h.taskUsecase.CreateTask(httputil.CurrentUserID(c), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	metrics.TrackOperation("task", "create")
	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates an existing task
// PATCH /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, err := httputil.ParamID(c, "id")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	var updates usecase.TaskUpdateRequest
	if err := httputil.BindStrictJSON(c, &updates); err != nil {
		httputil.Error(c, err)
		return
	}

	task, err := h.taskUsecase.UpdateTask(httputil.CurrentUserID(c), taskID, &updates)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	metrics.TrackOperation("task", "update")
	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task and its subtasks
// DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, err := httputil.ParamID(c, "id")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	if err := h.taskUsecase.DeleteTask(httputil.CurrentUserID(c), taskID); err != nil {
		httputil.Error(c, err)
		return
	}

	metrics.TrackOperation("task", "delete")
	httputil.NoContent(c)
}
