package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appauth "github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

// IdentityResolver maps a bearer token to the admin it was issued for
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (*models.Admin, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	resolver IdentityResolver
	logger   zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(resolver IdentityResolver, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

// Authenticate resolves the caller's identity from the Authorization header.
// It never rejects a request: on any failure the request continues anonymously.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		admin, err := m.resolver.ResolveIdentity(c.Request.Context(), token)
		if err != nil {
			m.logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Identity not resolved")
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(appauth.WithIdentity(c.Request.Context(), admin))
		c.Next()
	}
}

// LoggedInOnly aborts with 401 unless Authenticate resolved an identity
func (m *AuthMiddleware) LoggedInOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentAdmin(c) == nil {
			HandleAPIError(c, apperrors.ErrNotLoggedIn)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentAdmin returns the admin making the request, or nil
func CurrentAdmin(c *gin.Context) *models.Admin {
	return appauth.IdentityFromContext(c.Request.Context())
}
