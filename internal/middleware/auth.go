package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"fixmate_backend/internal/appErrors"
	"fixmate_backend/internal/auth"
	"fixmate_backend/internal/logger"
	"fixmate_backend/internal/models"
	"fixmate_backend/internal/repositories"
)

const (
	ctxUserIDKey = "userID"
	ctxRoleKey   = "role"

	// TokenCookieName is the http-only cookie carrying the session token for
	// browser clients that do not send an Authorization header.
	TokenCookieName = "token"
)

// AuthMiddleware validates the session token from the Authorization header or
// the token cookie and loads the account to reject deactivated users.
func AuthMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			appErrors.HandleError(c, appErrors.ErrUnauthorized)
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			appErrors.HandleError(c, appErrors.ErrInvalidToken)
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			appErrors.HandleError(c, appErrors.ErrInvalidToken)
			return
		}
		if !user.IsActive || user.IsSuspended {
			appErrors.HandleError(c, appErrors.ErrAccountInactive)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(ctxUserIDKey, user.ID)
		c.Set(ctxRoleKey, user.Role)
		c.Next()
	}
}

// RequireRoles gates a route group to the given roles. Must run after
// AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		if !allowed[GetUserRole(c)] {
			appErrors.HandleError(c, appErrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(TokenCookieName); err == nil {
		return cookie
	}
	return ""
}

// GetUserID returns the authenticated user's id, or "" outside AuthMiddleware.
func GetUserID(c *gin.Context) string {
	id, _ := c.Get(ctxUserIDKey)
	s, _ := id.(string)
	return s
}

func GetUserRole(c *gin.Context) models.UserRole {
	v, _ := c.Get(ctxRoleKey)
	role, _ := v.(models.UserRole)
	return role
}
