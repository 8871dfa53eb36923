package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	domainerr "github.com/imnexerio/i2step-backend/internal/domain/error"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/api/dto"
	tokenauth "github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/auth"
)

// identityKey is the gin context key holding the verified caller identity
const identityKey = "identity"

// RequireAuth verifies the bearer token and stores the caller identity in
// the request context. Requests without a valid token are rejected with 401
// before any handler runs.
func RequireAuth(tokens *tokenauth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:  domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Error: "Missing Authorization header",
			})
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:  domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Error: "Invalid Authorization header format",
			})
			return
		}

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:  domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Error: "Invalid or expired token",
			})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// CallerIdentity returns the identity stored by RequireAuth. The second
// return is false when the middleware did not run on this route.
func CallerIdentity(c *gin.Context) (entity.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return entity.Identity{}, false
	}
	identity, ok := value.(entity.Identity)
	return identity, ok
}
