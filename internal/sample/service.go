package sample

import (
	"context"
	"regexp"
	"strings"

	"loopa-be/internal/geo"
	"loopa-be/internal/logger"
	"loopa-be/internal/order"

	"go.uber.org/zap"
)

// Fixed eligibility terms for the free-sample program.
const (
	claimLimit       = 1
	eligibilityTerm  = "48 hours"
	sampleRating     = 4.9
	sampleReviews    = 124
	sampleDisclaimer = "This is a complimentary sample. Loopa does not take responsibility for product quality, ingredients, allergens, or safety. Please review details carefully before claiming."
)

// Fallback reference point when an order has no resolvable seller
// coordinate to measure from.
const (
	fallbackRefLat = 40.94
	fallbackRefLng = -123.63
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

type Service interface {
	// Claim transitions a sample available→claimed for the order's
	// customer. The transition happens at most once per sample.
	Claim(ctx context.Context, input ClaimInput) (*Sample, error)
	// EligibleSellers lists available samples from sellers not already
	// represented in the order.
	EligibleSellers(ctx context.Context, orderID string) (*Offer, error)
}

type service struct {
	repo      Repository
	orderRepo order.Repository
}

func NewService(repo Repository, orderRepo order.Repository) Service {
	return &service{repo: repo, orderRepo: orderRepo}
}

func (s *service) Claim(ctx context.Context, input ClaimInput) (*Sample, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("sample_id", input.SampleID),
		zap.String("order_id", input.OrderID),
	)

	ord, err := s.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	smp, err := s.repo.GetByID(ctx, input.SampleID)
	if err != nil {
		return nil, err
	}
	if smp == nil {
		return nil, ErrSampleNotFound
	}

	if smp.Status != StatusAvailable {
		return nil, ErrNotAvailable
	}
	if smp.SellerID != input.SellerID {
		return nil, ErrSellerMismatch
	}
	if !hasWindow(smp.WindowsOrDefault(), input.PickupWindowID) {
		return nil, ErrInvalidWindow
	}

	claimed, err := s.repo.Claim(ctx, input.SampleID, ord.CustomerID)
	if err != nil {
		return nil, err
	}
	if claimed == nil {
		// Lost the race against a concurrent claim.
		log.Info("sample claim lost conditional update")
		return nil, ErrNotAvailable
	}

	log.Info("sample claimed", zap.String("claimed_by", ord.CustomerID))
	return claimed, nil
}

func hasWindow(windows []Window, id string) bool {
	for _, w := range windows {
		if w.ID == id {
			return true
		}
	}
	return false
}

func (s *service) EligibleSellers(ctx context.Context, orderID string) (*Offer, error) {
	ord, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	// Sellers already in the order never offer the buyer a sample.
	exclude := make([]string, 0, len(ord.Items))
	seen := make(map[string]bool)
	for _, item := range ord.Items {
		if item.SellerID != "" && !seen[item.SellerID] {
			seen[item.SellerID] = true
			exclude = append(exclude, item.SellerID)
		}
	}

	samples, err := s.repo.ListAvailableExcluding(ctx, exclude)
	if err != nil {
		return nil, err
	}

	refLat, refLng := fallbackRefLat, fallbackRefLng
	if len(ord.Items) > 0 && ord.Items[0].SellerID != "" {
		refLat, refLng = ord.Items[0].SellerLat, ord.Items[0].SellerLng
	}

	sellers := make([]OfferSeller, 0, len(samples))
	for _, smp := range samples {
		sellers = append(sellers, OfferSeller{
			ID:            smp.Seller.ID,
			Name:          smp.Seller.Name,
			AvatarURL:     avatarURL(smp.Seller.Name),
			Rating:        sampleRating,
			ReviewCount:   sampleReviews,
			DistanceMiles: geo.Round1(geo.Distance(refLat, refLng, smp.Seller.Latitude, smp.Seller.Longitude)),
			Disclaimer:    sampleDisclaimer,
			Windows:       smp.WindowsOrDefault(),
		})
	}

	return &Offer{
		Status: string(StatusAvailable),
		Eligibility: Eligibility{
			OrderID:    ord.ID,
			ClaimLimit: claimLimit,
			ExpiresIn:  eligibilityTerm,
		},
		Sellers: sellers,
	}, nil
}

func avatarURL(sellerName string) string {
	slug := whitespaceRegex.ReplaceAllString(strings.ToLower(sellerName), "")
	return "https://cdn.loopa.app/avatars/" + slug + ".jpg"
}
