package dto

type CreateNoteRequest struct {
	// UserID is accepted for older clients; it must match the caller when present.
	UserID   *uint    `json:"user_id"`
	Title    string   `json:"title" binding:"required,max=200"`
	Body     string   `json:"body"`
	IsPinned bool     `json:"is_pinned"`
	Tags     []string `json:"tags" binding:"omitempty,max=50,dive,max=50"`
}

// UpdateNoteRequest is the PATCH allow-list. A present tags array replaces the note's tags.
type UpdateNoteRequest struct {
	Title      *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Body       *string   `json:"body"`
	IsPinned   *bool     `json:"is_pinned"`
	IsArchived *bool     `json:"is_archived"`
	Tags       *[]string `json:"tags" binding:"omitempty,max=50,dive,max=50"`
}
