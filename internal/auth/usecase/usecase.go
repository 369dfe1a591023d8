package usecase

import (
	"context"

	authdomain "planner-backend/internal/auth/domain"
	authdto "planner-backend/internal/auth/dto"
)

// AuthUsecase covers credentials, token issuance/verification and the user profile.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*authdto.TokenResponse, error)

	// Logout revokes the access token and, when given, the refresh token of the same user.
	Logout(ctx context.Context, user *authdomain.User, accessToken, refreshToken string) error

	// ValidateToken verifies signature, expiry, type and revocation of an access token.
	ValidateToken(ctx context.Context, token string) (*authdomain.User, error)

	GetUser(requesterID, userID uint) (*authdomain.User, error)
	UpdateUser(requesterID, userID uint, req *authdto.UpdateUserRequest) (*authdomain.User, error)
}
