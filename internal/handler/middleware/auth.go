package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"locker-hub/internal/domain/user"
	"locker-hub/internal/handler/httperr"
	"locker-hub/internal/pkg/errs"
	"locker-hub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"

	accessTokenCookie = "access_token"
)

var (
	errMissingToken       = errs.New("access token required")
	errInsufficientRole   = errs.New("insufficient role")
	errMissingAuthContext = errs.New("auth context missing; RequireAuth not applied")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	logger         *slog.Logger
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		logger:         logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			m.logger.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"user_id": userID.String(),
			"role":    string(role),
		})
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actual, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingAuthContext, "Internal server error", nil)
			return
		}
		if actual != role {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

// cookie first, then the Authorization header
func bearerToken(c *gin.Context) string {
	if token, err := c.Cookie(accessTokenCookie); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
