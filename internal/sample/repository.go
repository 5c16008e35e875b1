package sample

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"loopa-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	// GetByID returns (nil, nil) when the sample does not exist.
	GetByID(ctx context.Context, id string) (*Sample, error)
	// ListAvailableExcluding returns available samples (with seller)
	// whose seller is not in the exclusion list.
	ListAvailableExcluding(ctx context.Context, sellerIDs []string) ([]*Sample, error)
	// Claim performs the conditional available→claimed transition.
	// Exactly one concurrent caller can win; losers get (nil, nil).
	Claim(ctx context.Context, sampleID, userID string) (*Sample, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const sampleColumns = `
	sp.id, sp.seller_id, sp.product_id, sp.status, sp.pickup_windows,
	sp.claimed_by_user_id, sp.claimed_at, sp.expires_at,
	s.id, s.user_id, s.name, s.description, s.latitude, s.longitude,
	s.pickup_days, s.pickup_start_time, s.pickup_end_time
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSample(row rowScanner) (*Sample, error) {
	var (
		smp         Sample
		windows     []byte
		claimedBy   sql.NullString
		claimedAt   sql.NullTime
		expiresAt   sql.NullTime
		pickupDays  sql.NullString
		pickupStart sql.NullString
		pickupEnd   sql.NullString
	)

	err := row.Scan(
		&smp.ID, &smp.SellerID, &smp.ProductID, &smp.Status, &windows,
		&claimedBy, &claimedAt, &expiresAt,
		&smp.Seller.ID, &smp.Seller.UserID, &smp.Seller.Name, &smp.Seller.Description,
		&smp.Seller.Latitude, &smp.Seller.Longitude,
		&pickupDays, &pickupStart, &pickupEnd,
	)
	if err != nil {
		return nil, err
	}

	if len(windows) > 0 {
		if err := json.Unmarshal(windows, &smp.Windows); err != nil {
			return nil, fmt.Errorf("invalid pickup_windows for sample %s: %w", smp.ID, err)
		}
	}
	if claimedBy.Valid {
		smp.ClaimedByUserID = &claimedBy.String
	}
	if claimedAt.Valid {
		smp.ClaimedAt = &claimedAt.Time
	}
	if expiresAt.Valid {
		smp.ExpiresAt = &expiresAt.Time
	}

	smp.Seller.PickupDays = pickupDays.String
	smp.Seller.PickupStartTime = pickupStart.String
	smp.Seller.PickupEndTime = pickupEnd.String

	return &smp, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Sample, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+sampleColumns+`
		FROM samples sp
		JOIN sellers s ON s.id = sp.seller_id
		WHERE sp.id = $1
	`, id)

	smp, err := scanSample(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to fetch sample",
			zap.String("sample_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return smp, nil
}

func (r *repository) ListAvailableExcluding(ctx context.Context, sellerIDs []string) ([]*Sample, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+sampleColumns+`
		FROM samples sp
		JOIN sellers s ON s.id = sp.seller_id
		WHERE sp.status = 'available' AND sp.seller_id <> ALL($1)
		ORDER BY sp.id
	`, pq.Array(sellerIDs))
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list available samples", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var samples []*Sample
	for rows.Next() {
		smp, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		samples = append(samples, smp)
	}

	return samples, rows.Err()
}

func (r *repository) Claim(ctx context.Context, sampleID, userID string) (*Sample, error) {
	var (
		smp       Sample
		windows   []byte
		claimedBy sql.NullString
		claimedAt sql.NullTime
		expiresAt sql.NullTime
	)

	// The WHERE clause is the state machine: only an available row can
	// transition, so concurrent claims cannot both match.
	err := r.db.QueryRowContext(ctx, `
		UPDATE samples
		SET status = 'claimed', claimed_by_user_id = $2, claimed_at = NOW()
		WHERE id = $1 AND status = 'available'
		RETURNING id, seller_id, product_id, status, pickup_windows,
		          claimed_by_user_id, claimed_at, expires_at
	`, sampleID, userID).Scan(
		&smp.ID, &smp.SellerID, &smp.ProductID, &smp.Status, &windows,
		&claimedBy, &claimedAt, &expiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to claim sample",
			zap.String("sample_id", sampleID),
			zap.Error(err),
		)
		return nil, err
	}

	if len(windows) > 0 {
		if err := json.Unmarshal(windows, &smp.Windows); err != nil {
			return nil, fmt.Errorf("invalid pickup_windows for sample %s: %w", smp.ID, err)
		}
	}
	if claimedBy.Valid {
		smp.ClaimedByUserID = &claimedBy.String
	}
	if claimedAt.Valid {
		smp.ClaimedAt = &claimedAt.Time
	}
	if expiresAt.Valid {
		smp.ExpiresAt = &expiresAt.Time
	}

	return &smp, nil
}
