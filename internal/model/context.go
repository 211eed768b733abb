package model

import "context"

type ContextManager interface {
	SetUserToContext(ctx context.Context, user SessionUser) context.Context
	GetUserFromContext(ctx context.Context) (SessionUser, bool)
}
