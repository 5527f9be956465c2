package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/image-variants/internal/infrastructure/auth"
	"github.com/marcos-nsantos/image-variants/internal/pkg/httputil"
)

const (
	SubjectKey   = httputil.SubjectKey
	BearerPrefix = "Bearer "
)

type AuthMiddleware struct {
	jwtSvc *auth.JWTService
}

func NewAuthMiddleware(jwtSvc *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtSvc: jwtSvc}
}

// RequireAuth checks the bearer token and stores its subject. It lets every
// request through when no secret is configured.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.jwtSvc.Enabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "authorization header required")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid authorization format")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, BearerPrefix)
		subject, err := m.jwtSvc.ValidateAccessToken(token)
		if err != nil {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "TOKEN_INVALID", "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}
