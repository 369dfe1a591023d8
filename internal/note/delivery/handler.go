package delivery

import (
	"net/http"
	"strconv"

	"planner-backend/internal/note/dto"
	"planner-backend/internal/note/usecase"
	"planner-backend/pkg/apperror"
	"planner-backend/pkg/httputil"
	"planner-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles note and tag requests
type NoteHandler struct {
	noteUsecase usecase.NoteUsecase
}

func NewNoteHandler(noteUsecase usecase.NoteUsecase) *NoteHandler {
	return &NoteHandler{
		noteUsecase: noteUsecase,
	}
}

// GetNotes lists the caller's notes that are not archived
// GET /notes?user_id=
func (h *NoteHandler) GetNotes(c *gin.Context) {
	if err := httputil.EnsureUserScope(c, c.Query("user_id")); err != nil {
		httputil.Error(c, err)
		return
	}

	notes, err := h.noteUsecase.ListNotes(httputil.CurrentUserID(c))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// SearchNotes
// GET /notes/search?user_id=&q=
func (h *NoteHandler) SearchNotes(c *gin.Context) {
	if err := httputil.EnsureUserScope(c, c.Query("user_id")); err != nil {
		httputil.Error(c, err)
		return
	}

	notes, err := h.noteUsecase.SearchNotes(httputil.CurrentUserID(c), c.Query("q"))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// GET /notes/:id
func (h *NoteHandler) GetNote(c *gin.Context) {
	id, err := httputil.ParamID(c, "id")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	note, err := h.noteUsecase.GetNote(httputil.CurrentUserID(c), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// CreateNote
// POST /notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := httputil.BindJSON(c, &req); err != nil {
		httputil.Error(c, err)
		return
	}
	if err := httputil.EnsureBodyUserScope(c, req.UserID); err != nil {
		httputil.Error(c, err)
		return
	}

	note, err := h.noteUsecase.CreateNote(httputil.CurrentUserID(c), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	metrics.TrackOperation("note", "create")
	c.JSON(http.StatusCreated, note)
}

// UpdateNote
// PATCH /notes/:id
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, err := httputil.ParamID(c, "id")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	var req dto.UpdateNoteRequest
	if err := httputil.BindStrictJSON(c, &req); err != nil {
		httputil.Error(c, err)
		return
	}

	note, err := h.noteUsecase.UpdateNote(httputil.CurrentUserID(c), id, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	metrics.TrackOperation("note", "update")
	c.JSON(http.StatusOK, note)
}

// DeleteNote archives the note
// DELETE /notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, err := httputil.ParamID(c, "id")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	if err := h.noteUsecase.ArchiveNote(httputil.CurrentUserID(c), id); err != nil {
		httputil.Error(c, err)
		return
	}
	metrics.TrackOperation("note", "archive")
	httputil.NoContent(c)
}

// GET /notes/tags
func (h *NoteHandler) GetTags(c *gin.Context) {
	tags, err := h.noteUsecase.ListTags(httputil.CurrentUserID(c))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// SuggestTags powers tag autocompletion
// GET /notes/tags/suggest?q=&limit=
func (h *NoteHandler) SuggestTags(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httputil.Error(c, apperror.BadRequest("invalid limit"))
			return
		}
		limit = n
	}

	tags, err := h.noteUsecase.SuggestTags(httputil.CurrentUserID(c), c.Query("q"), limit)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}
