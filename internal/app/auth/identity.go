package auth

import (
	"context"

	"github.com/yigit/coursehub/internal/app/models"
)

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying the authenticated admin.
func WithIdentity(ctx context.Context, admin *models.Admin) context.Context {
	return context.WithValue(ctx, identityKey{}, admin)
}

// IdentityFromContext returns the admin attached to ctx, or nil for
// anonymous requests.
func IdentityFromContext(ctx context.Context) *models.Admin {
	admin, _ := ctx.Value(identityKey{}).(*models.Admin)
	return admin
}
