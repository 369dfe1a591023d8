package dto

import authdomain "planner-backend/internal/auth/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,max=72"`
	Timezone string `json:"timezone" binding:"omitempty,timezone"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh"`
}

// UpdateUserRequest lists every user field a client may change.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=254"`
	Timezone *string `json:"timezone" binding:"omitempty,timezone"`
	DarkMode *bool   `json:"dark_mode"`
	Password *string `json:"password" binding:"omitempty,min=1,max=72"`
}

type TokenResponse struct {
	AccessToken  string           `json:"access"`
	RefreshToken string           `json:"refresh"`
	User         *authdomain.User `json:"user"`
}
