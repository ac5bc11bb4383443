package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"repairshop/internal/domain/party"
	"repairshop/internal/handler/httperr"
	"repairshop/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

var errMissingToken = errors.New("missing bearer token")

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxMechanicKey = "mechanic"

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth admits requests carrying a valid mechanic token and stores the
// mechanic in the gin context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		mechanic := claims.Mechanic()
		c.Set(ctxMechanicKey, mechanic)
		c.Set("jwt_claims", map[string]any{
			"mechanic_id":   mechanic.ID.String(),
			"mechanic_name": mechanic.Name,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetMechanic(c *gin.Context) (party.Mechanic, bool) {
	v, exists := c.Get(ctxMechanicKey)
	if !exists {
		return party.Mechanic{}, false
	}
	mechanic, ok := v.(party.Mechanic)
	return mechanic, ok
}

// SetMechanic is used by handler tests that bypass token validation.
func SetMechanic(c *gin.Context, mechanic party.Mechanic) {
	c.Set(ctxMechanicKey, mechanic)
}
