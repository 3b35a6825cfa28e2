package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cookstemma/edge/internal/observability"
	"github.com/cookstemma/edge/internal/types"
)

// Keys under which AuthMiddleware stores the caller in the gin context.
const (
	ContextUserID      = "user_id"
	ContextUsername    = "username"
	ContextAccessToken = "access_token"
)

// AccessTokenCookie is the cookie the web client keeps its session token in.
const AccessTokenCookie = "access_token"

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware creates a middleware that validates JWT tokens. The token is read from the
// Authorization header, or from the access_token cookie when the header is absent.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		// Store user info in context
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextAccessToken, token)
		c.Request = c.Request.WithContext(observability.WithUserID(c.Request.Context(), claims.UserID.String()))
		c.Next()
	}
}

// bearerToken returns the token and false when an Authorization header is present but malformed.
func bearerToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", false
		}
		return parts[1], true
	}
	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return "", true
	}
	return cookie, true
}
