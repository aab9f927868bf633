package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"mader-backend/internal/domains/user/model"
	"mader-backend/internal/shared/response"
)

const currentUserKey = "current_user"

// Authenticator resolves a bearer token to the account it was issued for
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// AuthMiddleware rejects the request with 401 unless it carries a valid
// bearer token for an existing account. The account is stored on the
// context for CurrentUser.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c, model.ErrNotAuthenticated.Message)
			c.Abort()
			return
		}

		u, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set(currentUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the account set by AuthMiddleware
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	u, ok := v.(*model.User)
	return u, ok && u != nil
}

// bearerToken extracts the token from "Bearer <token>", scheme case-insensitive
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
