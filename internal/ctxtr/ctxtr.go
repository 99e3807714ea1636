// Package ctxtr carries the acting user on the request context.
package ctxtr

import (
	"context"
	"errors"
)

type ctxKey string

const UserIDKey ctxKey = "user_id"

var ErrUserNotFound = errors.New("user not found")

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// UserID returns the acting user, or ErrUserNotFound for anonymous requests.
func UserID(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	if !ok || userID == 0 {
		return 0, ErrUserNotFound
	}

	return userID, nil
}
