package graph

import (
	"context"

	"loopa-be/internal/graph/model"
)

func (r *queryResolver) Categories(ctx context.Context) ([]*model.Category, error) {
	cats, err := r.CategorySvc.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, &model.Category{
			ID:       c.ID,
			Label:    c.Label,
			Icon:     c.Icon,
			IsActive: c.IsActive,
			Count:    c.Count,
		})
	}
	return out, nil
}

func (r *mutationResolver) CreateCategory(ctx context.Context,
	label, icon string, isActive *bool, count *int32) (*model.Category, error) {

	c, err := r.CategorySvc.Create(ctx, label, icon, isActive, count)
	if err != nil {
		return nil, wrapError(ctx, err)
	}

	return &model.Category{
		ID:       c.ID,
		Label:    c.Label,
		Icon:     c.Icon,
		IsActive: c.IsActive,
		Count:    c.Count,
	}, nil
}
