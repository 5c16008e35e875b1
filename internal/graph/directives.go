package graph

import (
	"context"
	"errors"

	"loopa-be/internal/graph/model"
	"loopa-be/internal/middleware"

	"github.com/99designs/gqlgen/graphql"
	"github.com/golang-jwt/jwt/v5"
)

func AuthDirective(ctx context.Context, obj interface{}, next graphql.Resolver, role *model.Role) (res interface{}, err error) {

	token := ctx.Value(middleware.TokenClaimsKey)
	if token == nil {
		return nil, errors.New("unauthorized")
	}

	claims, ok := token.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token")
	}

	userRole, _ := claims["role"].(string)
	if userRole == "" {
		return nil, errors.New("unauthorized")
	}

	requiredRole := model.RoleUser
	if role != nil {
		requiredRole = *role
	}
	if requiredRole == model.RoleAdmin && userRole != string(model.RoleAdmin) {
		return nil, errors.New("forbidden: admin only")
	}
	return next(ctx)
}
