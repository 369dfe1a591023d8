package delivery

import (
	"net/http"

	"planner-backend/internal/notification/usecase"
	"planner-backend/pkg/httputil"
	"planner-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes stored notifications
type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

// GET /notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	if err := httputil.EnsureUserScope(c, c.Query("user_id")); err != nil {
		httputil.Error(c, err)
		return
	}

	notifications, err := h.notificationUsecase.ListNotifications(httputil.CurrentUserID(c))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// POST /notifications
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req usecase.CreateNotificationRequest
	if err := httputil.BindJSON(c, &req); err != nil {
		httputil.Error(c, err)
		return
	}
	if err := httputil.EnsureBodyUserScope(c, req.UserID); err != nil {
		httputil.Error(c, err)
		return
	}

	notification, err := h.notificationUsecase.CreateNotification(httputil.CurrentUserID(c), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	metrics.TrackOperation("notification", "create")
	c.JSON(http.StatusCreated, notification)
}

// DELETE /notifications/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := httputil.ParamID(c, "id")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	if err := h.notificationUsecase.DeleteNotification(httputil.CurrentUserID(c), id); err != nil {
		httputil.Error(c, err)
		return
	}
	metrics.TrackOperation("notification", "delete")
	httputil.NoContent(c)
}
