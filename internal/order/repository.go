package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"loopa-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const pqUniqueViolation = "23505"

type Repository interface {
	// Create inserts the order and its items in one transaction and
	// decrements product stock conditionally. Returns
	// ErrOrderNumberTaken when the order number collides.
	Create(ctx context.Context, o *Order) error
	// GetByID returns (nil, nil) when the order does not exist.
	GetByID(ctx context.Context, id string) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, order_number, status, customer_id, total_amount, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`,
		o.ID, o.OrderNumber, o.Status, o.CustomerID, o.TotalAmount.String(), o.Currency,
	).Scan(&o.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return ErrOrderNumberTaken
		}
		log.Error("db: failed to insert order",
			zap.String("order_number", o.OrderNumber),
			zap.Error(err),
		)
		return err
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.ID = uuid.NewString()
		item.OrderID = o.ID

		var pickupData []byte
		if item.Pickup != nil {
			pickupData, err = json.Marshal(item.Pickup)
			if err != nil {
				return fmt.Errorf("failed to encode pickup snapshot: %w", err)
			}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, price, pickup_data)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			item.ID, o.ID, item.ProductID, item.Quantity, item.Price.String(), pickupData,
		)
		if err != nil {
			log.Error("db: failed to insert order item",
				zap.String("order_id", o.ID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return err
		}

		// Conditional decrement; a dangling product reference matches
		// zero rows and the order still stands.
		_, err = tx.ExecContext(ctx, `
			UPDATE products
			SET quantity_left = GREATEST(quantity_left - $1, 0)
			WHERE id = $2
		`,
			item.Quantity, item.ProductID,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	var (
		o     Order
		total string
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT o.id, o.order_number, o.status, o.customer_id, o.total_amount,
		       o.currency, o.created_at, u.name
		FROM orders o
		JOIN users u ON u.id = o.customer_id
		WHERE o.id = $1
	`, id).Scan(
		&o.ID, &o.OrderNumber, &o.Status, &o.CustomerID, &total,
		&o.Currency, &o.CreatedAt, &o.CustomerName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to fetch order",
			zap.String("order_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	o.TotalAmount, err = decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("invalid total for order %s: %w", o.ID, err)
	}

	items, err := r.getItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *repository) getItems(ctx context.Context, orderID string) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT i.id, i.product_id, i.quantity, i.price, i.pickup_data,
		       COALESCE(p.title, ''), COALESCE(s.id, ''), COALESCE(s.name, ''),
		       COALESCE(s.latitude, 0), COALESCE(s.longitude, 0)
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		LEFT JOIN sellers s ON s.id = p.seller_id
		WHERE i.order_id = $1
		ORDER BY i.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var (
			item       Item
			price      string
			pickupData []byte
		)

		err := rows.Scan(
			&item.ID, &item.ProductID, &item.Quantity, &price, &pickupData,
			&item.ProductTitle, &item.SellerID, &item.SellerName,
			&item.SellerLat, &item.SellerLng,
		)
		if err != nil {
			return nil, err
		}

		item.OrderID = orderID
		item.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("invalid price for order item %s: %w", item.ID, err)
		}

		if len(pickupData) > 0 {
			var snap Snapshot
			if err := json.Unmarshal(pickupData, &snap); err != nil {
				return nil, fmt.Errorf("invalid pickup snapshot for item %s: %w", item.ID, err)
			}
			item.Pickup = &snap
		}

		items = append(items, item)
	}

	return items, rows.Err()
}
