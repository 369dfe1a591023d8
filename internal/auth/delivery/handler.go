package delivery

import (
	"net/http"

	authdomain "planner-backend/internal/auth/domain"
	authdto "planner-backend/internal/auth/dto"
	"planner-backend/internal/auth/usecase"
	"planner-backend/pkg/httputil"
	"planner-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles credential and profile requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates an account and returns a token pair
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := httputil.BindJSON(c, &req); err != nil {
		metrics.TrackAuthAttempt("register", err)
		httputil.Error(c, err)
		return
	}

	resp, err := h.authUsecase.Register(&req)
	metrics.TrackAuthAttempt("register", err)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := httputil.BindJSON(c, &req); err != nil {
		metrics.TrackAuthAttempt("login", err)
		httputil.Error(c, err)
		return
	}

	resp, err := h.authUsecase.Login(&req)
	metrics.TrackAuthAttempt("login", err)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RefreshToken exchanges a refresh token for a new pair
// POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := httputil.BindJSON(c, &req); err != nil {
		httputil.Error(c, err)
		return
	}

	resp, err := h.authUsecase.Refresh(c.Request.Context(), req.RefreshToken)
	metrics.TrackAuthAttempt("refresh", err)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout revokes the bearer token (and the refresh token, if sent)
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req authdto.LogoutRequest
	if err := httputil.BindOptionalJSON(c, &req); err != nil {
		httputil.Error(c, err)
		return
	}

	user := c.MustGet(httputil.UserKey).(*authdomain.User)
	err := h.authUsecase.Logout(c.Request.Context(), user, c.GetString(httputil.TokenKey), req.RefreshToken)
	metrics.TrackAuthAttempt("logout", err)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetUser
// GET /users/:id
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, err := httputil.ParamID(c, "id")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	user, err := h.authUsecase.GetUser(httputil.CurrentUserID(c), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser
// PATCH /users/:id/update
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, err := httputil.ParamID(c, "id")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	var req authdto.UpdateUserRequest
	if err := httputil.BindStrictJSON(c, &req); err != nil {
		httputil.Error(c, err)
		return
	}

	user, err := h.authUsecase.UpdateUser(httputil.CurrentUserID(c), id, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
