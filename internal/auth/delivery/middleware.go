package delivery

import (
	"strings"

	"planner-backend/internal/auth/usecase"
	"planner-backend/pkg/apperror"
	"planner-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates the bearer token on every protected route, revocation included.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.Error(c, apperror.New(apperror.KindMalformed, "authorization header required"))
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httputil.Error(c, apperror.New(apperror.KindMalformed, "invalid authorization header format"))
			return
		}

		token := parts[1]
		user, err := authUsecase.ValidateToken(c.Request.Context(), token)
		if err != nil {
			httputil.Error(c, err)
			return
		}

		c.Set(httputil.UserKey, user)
		c.Set(httputil.UserIDKey, user.ID)
		c.Set(httputil.TokenKey, token)
		c.Next()
	}
}
