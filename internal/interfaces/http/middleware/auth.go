package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"borrowbank.backend/pkg/jwt"
	"borrowbank.backend/pkg/redis"
)

const (
	// AuthorizationHeader carries the bearer token.
	AuthorizationHeader = "Authorization"
	// SessionIDHeader carries a server-side session id as an
	// alternative to a bearer token.
	SessionIDHeader = "X-Session-Id"
	// BearerPrefix is the expected token prefix.
	BearerPrefix = "Bearer "
	// UserIDKey is the gin context key for the authenticated user id.
	UserIDKey = "user_id"
	// UsernameKey is the gin context key for the authenticated username.
	UsernameKey = "username"
)

// Auth authenticates requests with either a bearer token or a session
// id resolved through the session store. sessions may be nil, which
// disables the session path.
func Auth(jwtService *jwt.Service, sessions *redis.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c, sessions)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token has expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}

func extractToken(c *gin.Context, sessions *redis.SessionStore) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			return "", errors.New("invalid authorization format, use: Bearer <token>")
		}
		return strings.TrimPrefix(authHeader, BearerPrefix), nil
	}

	if sessionID := c.GetHeader(SessionIDHeader); sessionID != "" && sessions != nil {
		data, err := sessions.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			return "", errors.New("invalid or expired session")
		}
		return data.AccessToken, nil
	}

	return "", errors.New("authorization required")
}

// GetUserID gets the authenticated user id from context.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
