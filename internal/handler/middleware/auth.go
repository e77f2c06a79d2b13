package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"gas-agency/internal/domain/identity"
	"gas-agency/internal/usecase"
	"gas-agency/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxAccountIDKey = "account_id"
	ctxRoleKey      = "account_role"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	admins         commands.AdminRegistry
	sessions       commands.SessionStore
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, admins commands.AdminRegistry, sessions commands.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		admins:         admins,
		sessions:       sessions,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		accountID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAccountIDKey, accountID)
		c.Set(ctxRoleKey, role)
		c.Next()
	}
}

// RequireAdmin gates the admin surface. The role claim alone is not trusted:
// the account must still have a row in the admin registry. An admin token
// whose registry row has been removed gets every session terminated and the
// request denied.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			// Should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}
		accountID, _ := GetAccountID(c)

		if role != identity.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			c.Abort()
			return
		}

		exists, err := m.admins.Exists(c.Request.Context(), accountID)
		if err != nil {
			slog.Error("admin registry check failed", "account_id", accountID, "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}
		if !exists {
			if termErr := m.sessions.Terminate(c.Request.Context(), accountID); termErr != nil {
				slog.Warn("failed to terminate sessions of revoked admin",
					"account_id", accountID, "error", termErr.Error())
			}
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin access revoked",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, exists := c.Get(ctxAccountIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := accountID.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (identity.Role, bool) {
	role, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	r, ok := role.(identity.Role)
	return r, ok
}
