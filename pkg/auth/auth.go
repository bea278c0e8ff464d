package auth

import (
	"context"

	"github.com/pkg/errors"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"

	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type ctxKey int

const (
	userNameKey ctxKey = iota
	userRoleKey
)

var ErrNoAuth = errors.New("no auth context")

func SetAuthContext(ctx context.Context, userName, role string) context.Context {
	ctx = context.WithValue(ctx, userNameKey, userName)
	return context.WithValue(ctx, userRoleKey, role)
}

func GetUserName(ctx context.Context) (string, error) {
	name, ok := ctx.Value(userNameKey).(string)
	if !ok || name == "" {
		return "", ErrNoAuth
	}
	return name, nil
}

func GetUserRole(ctx context.Context) (string, error) {
	role, ok := ctx.Value(userRoleKey).(string)
	if !ok || role == "" {
		return "", ErrNoAuth
	}
	return role, nil
}
