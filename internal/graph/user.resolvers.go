package graph

import (
	"context"

	"loopa-be/internal/graph/model"
	"loopa-be/internal/utils"
)

// Users is the resolver for the users field.
func (r *queryResolver) Users(ctx context.Context) ([]*model.User, error) {
	users, err := r.UserRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*model.User, 0, len(users))
	for _, u := range users {
		var name *string
		if u.Name != "" {
			name = utils.StrPtr(u.Name)
		}
		out = append(out, &model.User{
			ID:    u.ID,
			Email: u.Email,
			Name:  name,
		})
	}
	return out, nil
}
