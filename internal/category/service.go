package category

import (
	"context"
	"errors"
	"strings"
)

type Service interface {
	List(ctx context.Context) ([]*Category, error)
	// Create applies the input defaults: isActive true, count 0.
	Create(ctx context.Context, label, icon string, isActive *bool, count *int32) (*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, label, icon string, isActive *bool, count *int32) (*Category, error) {
	if strings.TrimSpace(label) == "" {
		return nil, errors.New("label cannot be empty")
	}

	active := true
	if isActive != nil {
		active = *isActive
	}

	var c int32
	if count != nil {
		c = *count
	}

	return s.repo.Create(ctx, label, icon, active, c)
}
