package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashdev14/five-in-a-row/backend/internal/repository/postgres"
	"github.com/ashdev14/five-in-a-row/backend/pkg/auth"
	"github.com/ashdev14/five-in-a-row/backend/pkg/httputil"
)

const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// AuthMiddleware validates the JWT from the cookie (or Authorization
// header) and, when a session repo is wired, checks the session is
// still active in the database. Guest tokens carry no session ID and
// skip the stateful check, as does a memory-only deployment.
func AuthMiddleware(sessionRepo *postgres.SessionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateAccessToken(tokenString)
		if err != nil {
			httputil.ClearAuthCookie(c.Writer)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if sessionRepo != nil && claims.SessionID != "" {
			session, err := sessionRepo.GetSessionByID(claims.SessionID)
			if err != nil || session == nil {
				httputil.ClearAuthCookie(c.Writer)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session invalid"})
				return
			}
			if !session.IsActive {
				httputil.ClearAuthCookie(c.Writer)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session logged out"})
				return
			}
			if time.Now().After(session.ExpiresAt) {
				httputil.ClearAuthCookie(c.Writer)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
				return
			}

			// Run in background to not block the request
			go sessionRepo.UpdateSessionActivity(claims.SessionID)
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// UserFromContext pulls the identity the auth middleware stored.
func UserFromContext(c *gin.Context) (int64, string, bool) {
	userID, ok := c.Get(ContextUserID)
	if !ok {
		return 0, "", false
	}
	username, _ := c.Get(ContextUsername)
	id, ok := userID.(int64)
	if !ok {
		return 0, "", false
	}
	name, _ := username.(string)
	return id, name, true
}
