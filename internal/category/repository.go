package category

import (
	"context"
	"database/sql"

	"loopa-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, label, icon string, isActive bool, count int32) (*Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, label, icon, is_active, count, created_at
		FROM categories
		ORDER BY created_at
	`)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Label, &c.Icon, &c.IsActive, &c.Count, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

func (r *repository) Create(ctx context.Context, label, icon string, isActive bool, count int32) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (id, label, icon, is_active, count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, label, icon, is_active, count, created_at
	`,
		uuid.NewString(), label, icon, isActive, count,
	).Scan(&c.ID, &c.Label, &c.Icon, &c.IsActive, &c.Count, &c.CreatedAt)

	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert category",
			zap.String("label", label),
			zap.Error(err),
		)
		return nil, err
	}

	return &c, nil
}
