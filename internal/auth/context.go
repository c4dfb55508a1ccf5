package auth

import (
	"context"

	models "breate/backend/internal/models/gorm"
)

type contextKey string

var currentUserKey contextKey = "current_user"

// SetCurrentUser stores the resolved caller identity on the request context.
func SetCurrentUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// CurrentUser returns the caller identity, or nil outside an authenticated
// request.
func CurrentUser(ctx context.Context) *models.User {
	val := ctx.Value(currentUserKey)
	if user, ok := val.(*models.User); ok {
		return user
	}
	return nil
}
