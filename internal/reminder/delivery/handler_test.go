package delivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	notificationdomain "planner-backend/internal/notification/domain"
	"planner-backend/internal/reminder/domain"
	"planner-backend/internal/reminder/repository"
	"planner-backend/internal/reminder/usecase"
	"planner-backend/pkg/database"
	"planner-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
)

// fakeAuth stands in for the auth middleware; the caller is named by X-User-ID.
func fakeAuth(c *gin.Context) {
	id, _ := strconv.ParseUint(c.GetHeader("X-User-ID"), 10, 64)
	c.Set(httputil.UserIDKey, uint(id))
	c.Next()
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	httputil.InitValidator()

	db, err := database.OpenInMemory(&domain.Reminder{}, &notificationdomain.Notification{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	h := NewReminderHandler(usecase.NewReminderUsecase(repository.NewGormReminderRepository(db)))

	r := gin.New()
	r.Use(fakeAuth)
	r.GET("/reminders", h.GetReminders)
	r.POST("/reminders", h.CreateReminder)
	r.GET("/reminders/:id", h.GetReminder)
	r.PATCH("/reminders/:id", h.UpdateReminder)
	r.DELETE("/reminders/:id", h.DeleteReminder)
	return r
}

func do(r *gin.Engine, method, path string, userID uint, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", strconv.FormatUint(uint64(userID), 10))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createReminder(t *testing.T, r *gin.Engine, userID uint, body string) domain.Reminder {
	t.Helper()
	w := do(r, http.MethodPost, "/reminders", userID, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d %s", w.Code, w.Body.String())
	}
	var rem domain.Reminder
	if err := json.Unmarshal(w.Body.Bytes(), &rem); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	return rem
}

func TestCreateReminderDefaultsAndValidation(t *testing.T) {
	r := setupRouter(t)

	rem := createReminder(t, r, 1, `{"title":"Dentist","reminder_date":"2026-05-01T09:00:00Z"}`)
	if rem.Status != domain.StatusPending || rem.Category != domain.CategoryPersonal || rem.Timezone != "UTC" {
		t.Errorf("defaults not applied: %+v", rem)
	}
	if rem.UserID != 1 {
		t.Errorf("expected owner 1, got %d", rem.UserID)
	}

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing title", `{"reminder_date":"2026-05-01T09:00:00Z"}`, http.StatusBadRequest},
		{"missing date", `{"title":"x"}`, http.StatusBadRequest},
		{"bad category", `{"title":"x","reminder_date":"2026-05-01T09:00:00Z","category":"gym"}`, http.StatusBadRequest},
		{"bad timezone", `{"title":"x","reminder_date":"2026-05-01T09:00:00Z","timezone":"Mars/Base"}`, http.StatusBadRequest},
		{"bad recurrence", `{"title":"x","reminder_date":"2026-05-01T09:00:00Z","recurrence_rule":"every day"}`, http.StatusBadRequest},
		{"cron recurrence", `{"title":"x","reminder_date":"2026-05-01T09:00:00Z","recurrence_rule":"0 9 * * 1"}`, http.StatusCreated},
		{"descriptor recurrence", `{"title":"x","reminder_date":"2026-05-01T09:00:00Z","recurrence_rule":"@weekly"}`, http.StatusCreated},
		{"foreign user_id", `{"user_id":2,"title":"x","reminder_date":"2026-05-01T09:00:00Z"}`, http.StatusForbidden},
		{"own user_id", `{"user_id":1,"title":"x","reminder_date":"2026-05-01T09:00:00Z"}`, http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/reminders", 1, tt.body)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestReminderOwnershipAndPatch(t *testing.T) {
	r := setupRouter(t)
	rem := createReminder(t, r, 1, `{"title":"Standup","reminder_date":"2026-05-01T09:00:00Z"}`)
	path := fmt.Sprintf("/reminders/%d", rem.ID)

	if w := do(r, http.MethodGet, path, 2, ""); w.Code != http.StatusForbidden {
		t.Errorf("foreign get: expected 403, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/reminders/9999", 1, ""); w.Code != http.StatusNotFound {
		t.Errorf("missing get: expected 404, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/reminders?user_id=2", 1, ""); w.Code != http.StatusForbidden {
		t.Errorf("foreign list scope: expected 403, got %d", w.Code)
	}

	w := do(r, http.MethodPatch, path, 1, `{"user_id":2,"title":"hijack"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("forbidden field: expected 400, got %d %s", w.Code, w.Body.String())
	}
	w = do(r, http.MethodGet, path, 1, "")
	var unchanged domain.Reminder
	_ = json.Unmarshal(w.Body.Bytes(), &unchanged)
	if unchanged.Title != "Standup" {
		t.Errorf("rejected PATCH changed the row: %+v", unchanged)
	}

	w = do(r, http.MethodPatch, path, 1, `{"status":"completed","category":"work"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d %s", w.Code, w.Body.String())
	}
	var updated domain.Reminder
	_ = json.Unmarshal(w.Body.Bytes(), &updated)
	if updated.Status != domain.StatusCompleted || updated.Category != domain.CategoryWork || updated.Title != "Standup" {
		t.Errorf("unexpected update result: %+v", updated)
	}

	if w := do(r, http.MethodPatch, path, 1, `{"status":"done"}`); w.Code != http.StatusBadRequest {
		t.Errorf("invalid status: expected 400, got %d", w.Code)
	}
	if w := do(r, http.MethodDelete, path, 2, ""); w.Code != http.StatusForbidden {
		t.Errorf("foreign delete: expected 403, got %d", w.Code)
	}
	if w := do(r, http.MethodDelete, path, 1, ""); w.Code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, path, 1, ""); w.Code != http.StatusNotFound {
		t.Errorf("after delete: expected 404, got %d", w.Code)
	}
}

func TestListRemindersScopedToCaller(t *testing.T) {
	r := setupRouter(t)
	createReminder(t, r, 1, `{"title":"early","reminder_date":"2026-01-01T09:00:00Z"}`)
	createReminder(t, r, 1, `{"title":"late","reminder_date":"2026-12-01T09:00:00Z"}`)
	createReminder(t, r, 2, `{"title":"other","reminder_date":"2026-06-01T09:00:00Z"}`)

	w := do(r, http.MethodGet, "/reminders?user_id=1", 1, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var list []domain.Reminder
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 2 || list[0].Title != "late" || list[1].Title != "early" {
		t.Errorf("unexpected list: %+v", list)
	}
}
