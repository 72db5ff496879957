package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"anoa.com/clanportal/internal/model"
	"anoa.com/clanportal/internal/repository"
)

// SessionCookie carries the signed session token.
const SessionCookie = "session"

const userContextKey = "current_user"

type AuthMiddleware struct {
	users  repository.UserRepository
	secret string
}

func NewAuthMiddleware(users repository.UserRepository, secret string) *AuthMiddleware {
	return &AuthMiddleware{
		users:  users,
		secret: secret,
	}
}

// ResolveUser loads the session user into the request context when a valid
// cookie is present. The user row is re-fetched on every request, so a
// deleted user or a role change takes effect immediately. It never aborts;
// guards below decide what unauthenticated means per route.
func (m *AuthMiddleware) ResolveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.Next()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(m.secret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok {
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.Next()
			return
		}

		user, err := m.users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireAuth denies API access without a resolved user.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole passes only when the session user's role matches exactly; an
// admin does not satisfy a clan_owner gate.
func (m *AuthMiddleware) RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the resolved session user, or nil.
func CurrentUser(c *gin.Context) *model.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}

	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}
