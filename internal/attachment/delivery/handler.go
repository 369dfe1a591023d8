package delivery

import (
	"net/http"

	"planner-backend/internal/attachment/domain"
	"planner-backend/internal/attachment/usecase"
	"planner-backend/pkg/apperror"
	"planner-backend/pkg/httputil"
	"planner-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// AttachmentHandler handles file uploads for notes and tasks
type AttachmentHandler struct {
	attachmentUsecase usecase.AttachmentUsecase
}

func NewAttachmentHandler(attachmentUsecase usecase.AttachmentUsecase) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentUsecase: attachmentUsecase,
	}
}

// Upload stores a file and links it to its owner
// POST /attachments/upload (multipart: file, owner_type, owner_id)
func (h *AttachmentHandler) Upload(c *gin.Context) {
	if err := httputil.EnsureUserScope(c, c.PostForm("user_id")); err != nil {
		httputil.Error(c, err)
		return
	}

	owner, err := domain.ParseOwnerRef(c.PostForm("owner_type"), c.PostForm("owner_id"))
	if err != nil {
		httputil.Error(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httputil.Error(c, apperror.MissingField("file"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		httputil.Error(c, apperror.Internal(err))
		return
	}
	defer file.Close()

	attachment, err := h.attachmentUsecase.Upload(httputil.CurrentUserID(c), owner, &usecase.Upload{
		Filename:       fileHeader.Filename,
		HeaderMimeType: fileHeader.Header.Get("Content-Type"),
		Content:        file,
	})
	if err != nil {
		httputil.Error(c, err)
		return
	}

	metrics.TrackOperation("attachment", "upload")
	c.JSON(http.StatusCreated, attachment)
}

// GET /attachments?owner_type=&owner_id=
func (h *AttachmentHandler) GetAttachments(c *gin.Context) {
	owner, err := domain.ParseOwnerRef(c.Query("owner_type"), c.Query("owner_id"))
	if err != nil {
		httputil.Error(c, err)
		return
	}

	attachments, err := h.attachmentUsecase.ListForOwner(httputil.CurrentUserID(c), owner)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, attachments)
}

// DELETE /attachments/:id
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	id, err := httputil.ParamID(c, "id")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	if err := h.attachmentUsecase.Delete(httputil.CurrentUserID(c), id); err != nil {
		httputil.Error(c, err)
		return
	}
	metrics.TrackOperation("attachment", "delete")
	httputil.NoContent(c)
}
