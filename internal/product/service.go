package product

import (
	"context"
	"strings"
	"time"

	"loopa-be/internal/geo"
	"loopa-be/internal/logger"

	"go.uber.org/zap"
)

// unboundedRadiusMiles stands in for "no distance filter". The scan is
// in-memory, so an explicit sentinel keeps the comparison in one place.
const unboundedRadiusMiles = 10000.0

// categoryAll disables category filtering when requested (any case).
const categoryAll = "all"

type Service interface {
	// ListNearby returns active products whose seller lies within
	// radiusMiles of the reference point, closest-unfiltered full scan.
	ListNearby(ctx context.Context, lat, lng float64, radiusMiles *float64, category *string) ([]*Product, error)
	// GetByID returns (nil, nil) when the product does not exist.
	GetByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, input UpdateInput) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListNearby(
	ctx context.Context,
	lat, lng float64,
	radiusMiles *float64,
	category *string,
) ([]*Product, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListNearby"),
	)
	start := time.Now()

	if category != nil && strings.EqualFold(*category, categoryAll) {
		category = nil
	}

	maxRadius := unboundedRadiusMiles
	if radiusMiles != nil {
		maxRadius = *radiusMiles
	}

	products, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		log.Error("failed to fetch products",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	// Full scan over the result set. Distances are rounded to the
	// display precision before the cutoff so a listing never shows a
	// distance it was excluded for.
	nearby := make([]*Product, 0, len(products))
	for _, p := range products {
		dist := geo.Round1(geo.Distance(lat, lng, p.Seller.Latitude, p.Seller.Longitude))
		if dist <= maxRadius {
			nearby = append(nearby, p)
		}
	}

	log.Info("nearby products listed",
		zap.Int("scanned", len(products)),
		zap.Int("matched", len(nearby)),
		zap.Float64("radius_miles", maxRadius),
		zap.Duration("duration", time.Since(start)),
	)

	return nearby, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*Product, error) {
	if input.ID == "" {
		return nil, ErrProductNotFound
	}
	if !input.HasAnyField() {
		return nil, ErrNoFields
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if input.QuantityAvailable != nil && *input.QuantityAvailable < 0 {
		return nil, ErrInvalidQuantity
	}

	return s.repo.Update(ctx, input)
}
