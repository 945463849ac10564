package utils

import (
	"context"

	"association-console/pkg/contextkeys"
	apperrors "association-console/pkg/errors"
)

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextkeys.TokenKey, token)
}

func GetTokenFromCtx(ctx context.Context) (string, error) {
	token, ok := ctx.Value(contextkeys.TokenKey).(string)
	if !ok || token == "" {
		return "", apperrors.ErrTokenNotFound
	}
	return token, nil
}

func WithUserName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, contextkeys.UserNameKey, name)
}

// GetUserNameFromCtx returns "" for anonymous contexts (CLI, tests).
func GetUserNameFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(contextkeys.UserNameKey).(string)
	return name
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextkeys.RequestIDKey, id)
}

func GetRequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(contextkeys.RequestIDKey).(string)
	return id
}
