package delivery

import (
	"net/http"

	"planner-backend/internal/reminder/dto"
	"planner-backend/internal/reminder/usecase"
	"planner-backend/pkg/httputil"
	"planner-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// ReminderHandler handles reminder HTTP requests
type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
	}
}

// GetReminders
// GET /reminders?user_id=
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	if err := httputil.EnsureUserScope(c, c.Query("user_id")); err != nil {
		httputil.Error(c, err)
		return
	}

	reminders, err := h.reminderUsecase.ListReminders(httputil.CurrentUserID(c))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// GET /reminders/:id
func (h *ReminderHandler) GetReminder(c *gin.Context) {
	id, err := httputil.ParamID(c, "id")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	reminder, err := h.reminderUsecase.GetReminder(httputil.CurrentUserID(c), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, reminder)
}

// CreateReminder
// POST /reminders
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req dto.CreateReminderRequest
	if err := httputil.BindJSON(c, &req); err != nil {
		httputil.Error(c, err)
		return
	}
	if err := httputil.EnsureBodyUserScope(c, req.UserID); err != nil {
		httputil.Error(c, err)
		return
	}

	reminder, err := h.reminderUsecase.CreateReminder(httputil.CurrentUserID(c), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	metrics.TrackOperation("reminder", "create")
	c.JSON(http.StatusCreated, reminder)
}

// UpdateReminder applies a partial update
// PATCH /reminders/:id
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	id, err := httputil.ParamID(c, "id")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	var req dto.UpdateReminderRequest
	if err := httputil.BindStrictJSON(c, &req); err != nil {
		httputil.Error(c, err)
		return
	}

	reminder, err := h.reminderUsecase.UpdateReminder(httputil.CurrentUserID(c), id, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	metrics.TrackOperation("reminder", "update")
	c.JSON(http.StatusOK, reminder)
}

// DELETE /reminders/:id
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id, err := httputil.ParamID(c, "id")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	if err := h.reminderUsecase.DeleteReminder(httputil.CurrentUserID(c), id); err != nil {
		httputil.Error(c, err)
		return
	}
	metrics.TrackOperation("reminder", "delete")
	httputil.NoContent(c)
}
