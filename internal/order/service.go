package order

import (
	"context"
	"fmt"
	"time"

	"loopa-be/internal/config"
	"loopa-be/internal/logger"
	"loopa-be/internal/product"
	"loopa-be/internal/user"
	"loopa-be/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultCurrency = "USD"

// orderNumberAttempts bounds the retry loop when the short random order
// number collides with an existing row.
const orderNumberAttempts = 5

type Service interface {
	Create(ctx context.Context, customerID string, items []ItemInput) (*Order, error)
	// GetByID returns (nil, nil) when the order does not exist.
	GetByID(ctx context.Context, id string) (*Order, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
	userRepo    user.Repository
	policy      config.MissingProductPolicy
}

func NewService(repo Repository, productRepo product.Repository, userRepo user.Repository, policy config.MissingProductPolicy) Service {
	return &service{
		repo:        repo,
		productRepo: productRepo,
		userRepo:    userRepo,
		policy:      policy,
	}
}

func (s *service) Create(ctx context.Context, customerID string, items []ItemInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
	)
	start := time.Now()

	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, in := range items {
		if in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %s", ErrInvalidQuantity, in.ProductID)
		}
	}

	customer, err := s.userRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	productIDs := make([]string, 0, len(items))
	for _, in := range items {
		productIDs = append(productIDs, in.ProductID)
	}

	products, err := s.productRepo.ListByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	o := &Order{
		Status:       StatusPending,
		CustomerID:   customer.ID,
		Currency:     defaultCurrency,
		CustomerName: customer.Name,
	}

	total := decimal.Zero
	for _, in := range items {
		p, ok := byID[in.ProductID]
		if !ok {
			if s.policy == config.MissingProductStrict {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, in.ProductID)
			}
			// Degrade: the line is kept at price zero with no pickup
			// snapshot rather than failing the whole order.
			log.Warn("order line references unknown product",
				zap.String("product_id", in.ProductID),
			)
			o.Items = append(o.Items, Item{
				ProductID: in.ProductID,
				Quantity:  in.Quantity,
				Price:     decimal.Zero,
			})
			continue
		}

		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(in.Quantity))))

		o.Items = append(o.Items, Item{
			ProductID:    in.ProductID,
			Quantity:     in.Quantity,
			Price:        p.Price,
			Pickup:       snapshotFor(p),
			ProductTitle: p.Title,
			SellerID:     p.Seller.ID,
			SellerName:   p.Seller.Name,
			SellerLat:    p.Seller.Latitude,
			SellerLng:    p.Seller.Longitude,
		})
	}
	o.TotalAmount = total

	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		o.OrderNumber = utils.GenerateOrderNumber()

		err = s.repo.Create(ctx, o)
		if err == ErrOrderNumberTaken {
			log.Warn("order number collision, retrying",
				zap.String("order_number", o.OrderNumber),
				zap.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			return nil, err
		}

		log.Info("order created",
			zap.String("order_id", o.ID),
			zap.String("order_number", o.OrderNumber),
			zap.Int("items", len(o.Items)),
			zap.String("total", o.TotalAmount.String()),
			zap.Duration("duration", time.Since(start)),
		)
		return o, nil
	}

	return nil, fmt.Errorf("could not allocate an order number after %d attempts: %w", orderNumberAttempts, ErrOrderNumberTaken)
}

// snapshotFor freezes the pickup data for a resolved product: explicit
// product data first, then the fixed fallbacks.
func snapshotFor(p *product.Product) *Snapshot {
	snap := &Snapshot{
		Location: SnapshotLocation{
			Address:       FallbackAddress,
			City:          FallbackCity,
			DistanceMiles: FallbackDistanceMiles,
			Coordinates:   Coordinates{Lat: p.Seller.Latitude, Lng: p.Seller.Longitude},
		},
		Window: SnapshotWindow{
			Day:       FallbackWindowDay,
			StartTime: FallbackWindowStart,
			EndTime:   FallbackWindowEnd,
			Formatted: FallbackWindowFormatted,
		},
	}

	if loc := p.PickupLocation; loc != nil {
		snap.Location = SnapshotLocation{
			Address:       loc.Address,
			City:          utils.City(loc.Address),
			DistanceMiles: loc.DistanceMiles,
			Coordinates:   Coordinates{Lat: loc.Latitude, Lng: loc.Longitude},
		}
	}

	if len(p.PickupWindows) > 0 {
		w := p.PickupWindows[0]
		snap.Window = SnapshotWindow{
			Day:       w.Days,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			Formatted: w.Formatted,
		}
	}

	return snap
}

func (s *service) GetByID(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}
