package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	authdomain "planner-backend/internal/auth/domain"
	authdto "planner-backend/internal/auth/dto"
	"planner-backend/internal/auth/repository"
	"planner-backend/pkg/apperror"
	"planner-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTimezone = "UTC"

// Claims is the signed token payload.
type Claims struct {
	UserID uint                 `json:"user_id"`
	Type   authdomain.TokenType `json:"type"`
	jwt.RegisteredClaims
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo       repository.UserRepository
	revocationRepo repository.RevocationRepository
	config         *config.Config
	now            func() time.Time
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, revocationRepo repository.RevocationRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo:       userRepo,
		revocationRepo: revocationRepo,
		config:         cfg,
		now:            time.Now,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	if err := requireFields(map[string]string{"name": req.Name, "email": req.Email, "password": req.Password}, "name", "email", "password"); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.New(apperror.KindDuplicateEmail, "Email already exists")
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = defaultTimezone
	}

	user := &authdomain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Timezone:     timezone,
	}

	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperror.New(apperror.KindDuplicateEmail, "Email already exists")
		}
		return nil, apperror.Internal(err)
	}

	log.Printf("[Auth] registered user %d", user.ID)
	return u.generateTokens(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	if err := requireFields(map[string]string{"email": req.Email, "password": req.Password}, "email", "password"); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Unknown email and wrong password are reported differently; this allows account
	// enumeration and is accepted for an internal tool.
	if user == nil {
		return nil, apperror.NotFound("User")
	}

	if !repository.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperror.New(apperror.KindInvalidCredentials, "Invalid credentials")
	}

	return u.generateTokens(user)
}

func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*authdto.TokenResponse, error) {
	claims, err := u.parseToken(ctx, refreshToken, authdomain.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User")
	}

	// Rotation: a refresh token is good for exactly one refresh. Losing the insert race
	// to a concurrent refresh of the same token counts as revoked.
	inserted, err := u.revocationRepo.Revoke(ctx, user.ID, refreshToken, claims.ExpiresAt.Time)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !inserted {
		return nil, apperror.New(apperror.KindRevoked, "token has been revoked")
	}

	return u.generateTokens(user)
}

func (u *authUsecase) Logout(ctx context.Context, user *authdomain.User, accessToken, refreshToken string) error {
	accessClaims, err := u.parseToken(ctx, accessToken, authdomain.TokenTypeAccess)
	if err != nil {
		return err
	}

	if refreshToken != "" {
		refreshClaims, err := u.parseToken(ctx, refreshToken, authdomain.TokenTypeRefresh)
		if err != nil {
			if errors.Is(err, apperror.ErrRevoked) {
				refreshClaims = nil
			} else {
				return apperror.BadRequest("invalid refresh token")
			}
		}
		if refreshClaims != nil {
			if refreshClaims.UserID != user.ID {
				return apperror.Forbidden()
			}
			if _, err := u.revocationRepo.Revoke(ctx, user.ID, refreshToken, refreshClaims.ExpiresAt.Time); err != nil {
				return apperror.Internal(err)
			}
		}
	}

	if _, err := u.revocationRepo.Revoke(ctx, user.ID, accessToken, accessClaims.ExpiresAt.Time); err != nil {
		return apperror.Internal(err)
	}

	log.Printf("[Auth] user %d logged out", user.ID)
	return nil
}

func (u *authUsecase) ValidateToken(ctx context.Context, tokenString string) (*authdomain.User, error) {
	claims, err := u.parseToken(ctx, tokenString, authdomain.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.New(apperror.KindMalformed, "token subject no longer exists")
	}

	return user, nil
}

func (u *authUsecase) GetUser(requesterID, userID uint) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User")
	}
	if user.ID != requesterID {
		return nil, apperror.Forbidden()
	}
	return user, nil
}

func (u *authUsecase) UpdateUser(requesterID, userID uint, req *authdto.UpdateUserRequest) (*authdomain.User, error) {
	user, err := u.GetUser(requesterID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Timezone != nil {
		user.Timezone = *req.Timezone
	}
	if req.DarkMode != nil {
		user.DarkMode = *req.DarkMode
	}
	if req.Password != nil {
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := u.userRepo.Update(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperror.New(apperror.KindDuplicateEmail, "Email already exists")
		}
		return nil, apperror.Internal(err)
	}

	return user, nil
}

func (u *authUsecase) generateTokens(user *authdomain.User) (*authdto.TokenResponse, error) {
	accessToken, err := u.signToken(user.ID, authdomain.TokenTypeAccess, u.config.JWTAccessExpiry)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	refreshToken, err := u.signToken(user.ID, authdomain.TokenTypeRefresh, u.config.JWTRefreshExpiry)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (u *authUsecase) signToken(userID uint, tokenType authdomain.TokenType, ttl time.Duration) (string, error) {
	now := u.now()
	claims := Claims{
		UserID: userID,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

// parseToken verifies signature and expiry, checks the token type and consults the revocation list.
func (u *authUsecase) parseToken(ctx context.Context, tokenString string, want authdomain.TokenType) (*Claims, error) {
	if tokenString == "" {
		return nil, apperror.New(apperror.KindMalformed, "token is required")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(u.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, apperror.Wrap(apperror.KindExpired, "token has expired", err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, apperror.Wrap(apperror.KindInvalidSignature, "invalid token signature", err)
		default:
			return nil, apperror.Wrap(apperror.KindMalformed, "malformed token", err)
		}
	}

	if claims.UserID == 0 {
		return nil, apperror.New(apperror.KindMalformed, "malformed token")
	}
	if claims.Type != want {
		return nil, apperror.New(apperror.KindMalformed, "invalid token type")
	}

	revoked, err := u.revocationRepo.IsRevoked(ctx, tokenString)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if revoked {
		return nil, apperror.New(apperror.KindRevoked, "token has been revoked")
	}

	return claims, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := repository.HashPassword(password)
	if err != nil {
		if errors.Is(err, repository.ErrPasswordTooLong) {
			return "", apperror.BadRequest("password must be at most 72 bytes")
		}
		return "", apperror.Internal(err)
	}
	return hashed, nil
}

func requireFields(values map[string]string, order ...string) error {
	for _, field := range order {
		if strings.TrimSpace(values[field]) == "" {
			return apperror.MissingField(field)
		}
	}
	return nil
}
