// Package ctxtr carries the caller identity supplied by the upstream auth
// proxy through the request context.
package ctxtr

import (
	"context"
	"errors"
	"strings"
)

type ctxKey string

const UserIDKey ctxKey = "user_id"

const DefaultUserHeader = "x-user-id"

var ErrUserNotFound = errors.New("user not found")

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func UserID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", ErrUserNotFound
	}

	return userID, nil
}

func normalizeHeader(header string) string {
	header = strings.ToLower(strings.TrimSpace(header))
	if header == "" {
		return DefaultUserHeader
	}

	return header
}
