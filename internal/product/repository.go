package product

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"loopa-be/internal/logger"
	"loopa-be/internal/pickup"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	// ListByCategory returns all products joined with their seller.
	// A nil category disables category filtering; matching is
	// case-insensitive. Distance filtering happens above this layer.
	ListByCategory(ctx context.Context, category *string) ([]*Product, error)
	// GetByID returns (nil, nil) when the product does not exist.
	GetByID(ctx context.Context, id string) (*Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Product, error)
	Update(ctx context.Context, input UpdateInput) (*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	p.id, p.seller_id, p.title, p.description, p.price, p.currency,
	p.quantity_available, p.quantity_left, p.images, p.primary_image,
	p.image_url, p.category, p.tags, p.badges, p.pickup_windows,
	p.pickup_location, p.is_active, p.created_at, p.updated_at,
	s.id, s.user_id, s.name, s.description, s.latitude, s.longitude,
	s.pickup_days, s.pickup_start_time, s.pickup_end_time
`

const productBaseQuery = `
	SELECT ` + productColumns + `
	FROM products p
	JOIN sellers s ON s.id = p.seller_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var (
		p              Product
		price          string
		primaryImage   sql.NullString
		imageURL       sql.NullString
		category       sql.NullString
		pickupWindows  []byte
		pickupLocation []byte
		pickupDays     sql.NullString
		pickupStart    sql.NullString
		pickupEnd      sql.NullString
	)

	err := row.Scan(
		&p.ID, &p.SellerID, &p.Title, &p.Description, &price, &p.Currency,
		&p.QuantityAvailable, &p.QuantityLeft, pq.Array(&p.Images), &primaryImage,
		&imageURL, &category, pq.Array(&p.Tags), pq.Array(&p.Badges), &pickupWindows,
		&pickupLocation, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		&p.Seller.ID, &p.Seller.UserID, &p.Seller.Name, &p.Seller.Description,
		&p.Seller.Latitude, &p.Seller.Longitude,
		&pickupDays, &pickupStart, &pickupEnd,
	)
	if err != nil {
		return nil, err
	}

	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("invalid price for product %s: %w", p.ID, err)
	}

	if primaryImage.Valid {
		p.PrimaryImage = &primaryImage.String
	}
	if imageURL.Valid {
		p.ImageURL = &imageURL.String
	}
	if category.Valid {
		p.Category = &category.String
	}

	if len(pickupWindows) > 0 {
		if err := json.Unmarshal(pickupWindows, &p.PickupWindows); err != nil {
			return nil, fmt.Errorf("invalid pickup_windows for product %s: %w", p.ID, err)
		}
	}
	if len(pickupLocation) > 0 {
		var loc pickup.Location
		if err := json.Unmarshal(pickupLocation, &loc); err != nil {
			return nil, fmt.Errorf("invalid pickup_location for product %s: %w", p.ID, err)
		}
		p.PickupLocation = &loc
	}

	p.Seller.PickupDays = pickupDays.String
	p.Seller.PickupStartTime = pickupStart.String
	p.Seller.PickupEndTime = pickupEnd.String

	return &p, nil
}

func (r *repository) queryProducts(ctx context.Context, query string, args ...any) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("db: product query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) ListByCategory(ctx context.Context, category *string) ([]*Product, error) {
	query := productBaseQuery + " WHERE p.is_active"
	args := []any{}

	// Case-insensitive equality, never pattern matching: the caller's
	// category must not act as a wildcard.
	if category != nil {
		query += " AND LOWER(p.category) = LOWER($1)"
		args = append(args, *category)
	}

	query += " ORDER BY p.created_at"

	return r.queryProducts(ctx, query, args...)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, productBaseQuery+" WHERE p.id = $1", id)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) ListByIDs(ctx context.Context, ids []string) ([]*Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.queryProducts(ctx, productBaseQuery+" WHERE p.id = ANY($1)", pq.Array(ids))
}

func (r *repository) Update(ctx context.Context, input UpdateInput) (*Product, error) {
	set := []string{}
	args := []any{}

	add := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if input.Title != nil {
		add("title", *input.Title)
	}
	if input.Description != nil {
		add("description", *input.Description)
	}
	if input.Price != nil {
		add("price", input.Price.String())
	}
	if input.Currency != nil {
		add("currency", *input.Currency)
	}
	if input.QuantityAvailable != nil {
		add("quantity_available", *input.QuantityAvailable)
	}
	if input.Category != nil {
		add("category", *input.Category)
	}
	if input.PrimaryImage != nil {
		add("primary_image", *input.PrimaryImage)
	}
	if input.Images != nil {
		add("images", pq.Array(input.Images))
	}
	if input.Tags != nil {
		add("tags", pq.Array(input.Tags))
	}
	if input.IsActive != nil {
		add("is_active", *input.IsActive)
	}

	if len(set) == 0 {
		return nil, ErrNoFields
	}

	set = append(set, "updated_at = NOW()")

	query := "UPDATE products SET "
	for i, s := range set {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(" WHERE id = $%d", len(args)+1)
	args = append(args, input.ID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("db: product update failed",
			zap.String("product_id", input.ID),
			zap.Error(err),
		)
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProductNotFound
	}

	return r.GetByID(ctx, input.ID)
}
