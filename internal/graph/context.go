package graph

import (
	"context"

	"loopa-be/internal/middleware"
)

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(middleware.UserIDKey).(string)
	return uid, ok
}
