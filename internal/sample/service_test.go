package sample

import (
	"context"
	"testing"
	"time"

	"loopa-be/internal/order"
	"loopa-be/internal/seller"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Sample, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Sample), args.Error(1)
}

func (m *MockRepository) ListAvailableExcluding(ctx context.Context, sellerIDs []string) ([]*Sample, error) {
	args := m.Called(ctx, sellerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Sample), args.Error(1)
}

func (m *MockRepository) Claim(ctx context.Context, sampleID, userID string) (*Sample, error) {
	args := m.Called(ctx, sampleID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Sample), args.Error(1)
}

type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

// --- Fixtures ---

func availableSample() *Sample {
	return &Sample{
		ID:        "sample-1",
		SellerID:  "seller-2",
		ProductID: "prod-2",
		Status:    StatusAvailable,
		Seller:    seller.Seller{ID: "seller-2", Name: "Sarah's Kitchen", Latitude: 40.9401, Longitude: -123.6305},
	}
}

func orderWithSeller() *order.Order {
	return &order.Order{
		ID:         "order-1",
		CustomerID: "user-1",
		Items: []order.Item{{
			ProductID: "prod-1",
			SellerID:  "seller-1",
			SellerLat: 40.94,
			SellerLng: -123.63,
		}},
	}
}

// --- Claim tests ---

func TestService_Claim_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	orders := new(MockOrderRepo)
	svc := NewService(repo, orders)

	now := time.Now()
	claimedBy := "user-1"
	claimed := availableSample()
	claimed.Status = StatusClaimed
	claimed.ClaimedByUserID = &claimedBy
	claimed.ClaimedAt = &now

	orders.On("GetByID", ctx, "order-1").Return(orderWithSeller(), nil)
	repo.On("GetByID", ctx, "sample-1").Return(availableSample(), nil)
	repo.On("Claim", ctx, "sample-1", "user-1").Return(claimed, nil)

	res, err := svc.Claim(ctx, ClaimInput{
		OrderID:        "order-1",
		SampleID:       "sample-1",
		SellerID:       "seller-2",
		PickupWindowID: "win_1",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusClaimed, res.Status)
	assert.Equal(t, "user-1", *res.ClaimedByUserID)
	repo.AssertExpectations(t)
}

func TestService_Claim_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	orders := new(MockOrderRepo)
	svc := NewService(repo, orders)

	orders.On("GetByID", ctx, "ghost").Return(nil, nil)

	_, err := svc.Claim(ctx, ClaimInput{OrderID: "ghost", SampleID: "sample-1", SellerID: "seller-2", PickupWindowID: "win_1"})
	assert.ErrorIs(t, err, ErrOrderNotFound)
	repo.AssertNotCalled(t, "Claim")
}

func TestService_Claim_SampleNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	orders := new(MockOrderRepo)
	svc := NewService(repo, orders)

	orders.On("GetByID", ctx, "order-1").Return(orderWithSeller(), nil)
	repo.On("GetByID", ctx, "ghost").Return(nil, nil)

	_, err := svc.Claim(ctx, ClaimInput{OrderID: "order-1", SampleID: "ghost", SellerID: "seller-2", PickupWindowID: "win_1"})
	assert.ErrorIs(t, err, ErrSampleNotFound)
}

func TestService_Claim_AlreadyClaimed(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	orders := new(MockOrderRepo)
	svc := NewService(repo, orders)

	taken := availableSample()
	taken.Status = StatusClaimed

	orders.On("GetByID", ctx, "order-1").Return(orderWithSeller(), nil)
	repo.On("GetByID", ctx, "sample-1").Return(taken, nil)

	_, err := svc.Claim(ctx, ClaimInput{OrderID: "order-1", SampleID: "sample-1", SellerID: "seller-2", PickupWindowID: "win_1"})
	assert.ErrorIs(t, err, ErrNotAvailable)
	repo.AssertNotCalled(t, "Claim")
}

func TestService_Claim_SellerMismatchDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	orders := new(MockOrderRepo)
	svc := NewService(repo, orders)

	orders.On("GetByID", ctx, "order-1").Return(orderWithSeller(), nil)
	repo.On("GetByID", ctx, "sample-1").Return(availableSample(), nil)

	_, err := svc.Claim(ctx, ClaimInput{OrderID: "order-1", SampleID: "sample-1", SellerID: "seller-9", PickupWindowID: "win_1"})
	assert.ErrorIs(t, err, ErrSellerMismatch)
	repo.AssertNotCalled(t, "Claim")
}

func TestService_Claim_WindowValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownPlaceholderWindow", func(t *testing.T) {
		repo := new(MockRepository)
		orders := new(MockOrderRepo)
		svc := NewService(repo, orders)

		orders.On("GetByID", ctx, "order-1").Return(orderWithSeller(), nil)
		repo.On("GetByID", ctx, "sample-1").Return(availableSample(), nil)

		_, err := svc.Claim(ctx, ClaimInput{OrderID: "order-1", SampleID: "sample-1", SellerID: "seller-2", PickupWindowID: "win_9"})
		assert.ErrorIs(t, err, ErrInvalidWindow)
		repo.AssertNotCalled(t, "Claim")
	})

	t.Run("StructuredWindowMatch", func(t *testing.T) {
		repo := new(MockRepository)
		orders := new(MockOrderRepo)
		svc := NewService(repo, orders)

		smp := availableSample()
		smp.Windows = []Window{{ID: "custom_1", Day: "Fri", Available: true}}

		claimed := *smp
		claimed.Status = StatusClaimed

		orders.On("GetByID", ctx, "order-1").Return(orderWithSeller(), nil)
		repo.On("GetByID", ctx, "sample-1").Return(smp, nil)
		repo.On("Claim", ctx, "sample-1", "user-1").Return(&claimed, nil)

		_, err := svc.Claim(ctx, ClaimInput{OrderID: "order-1", SampleID: "sample-1", SellerID: "seller-2", PickupWindowID: "custom_1"})
		assert.NoError(t, err)

		// Placeholder ids are not accepted once structured windows exist.
		repo.On("GetByID", ctx, "sample-1").Return(smp, nil)
		_, err = svc.Claim(ctx, ClaimInput{OrderID: "order-1", SampleID: "sample-1", SellerID: "seller-2", PickupWindowID: "win_1"})
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})
}

func TestService_Claim_LostRace(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	orders := new(MockOrderRepo)
	svc := NewService(repo, orders)

	orders.On("GetByID", ctx, "order-1").Return(orderWithSeller(), nil)
	repo.On("GetByID", ctx, "sample-1").Return(availableSample(), nil)
	// Conditional update matched zero rows: someone else won.
	repo.On("Claim", ctx, "sample-1", "user-1").Return(nil, nil)

	_, err := svc.Claim(ctx, ClaimInput{OrderID: "order-1", SampleID: "sample-1", SellerID: "seller-2", PickupWindowID: "win_1"})
	assert.ErrorIs(t, err, ErrNotAvailable)
}

// --- Eligibility tests ---

func TestService_EligibleSellers(t *testing.T) {
	ctx := context.Background()

	t.Run("ExcludesOrderSellers", func(t *testing.T) {
		repo := new(MockRepository)
		orders := new(MockOrderRepo)
		svc := NewService(repo, orders)

		orders.On("GetByID", ctx, "order-1").Return(orderWithSeller(), nil)
		repo.On("ListAvailableExcluding", ctx, []string{"seller-1"}).
			Return([]*Sample{availableSample()}, nil)

		offer, err := svc.EligibleSellers(ctx, "order-1")
		require.NoError(t, err)

		assert.Equal(t, "available", offer.Status)
		assert.Equal(t, "order-1", offer.Eligibility.OrderID)
		assert.Equal(t, 1, offer.Eligibility.ClaimLimit)
		assert.Equal(t, "48 hours", offer.Eligibility.ExpiresIn)

		require.Len(t, offer.Sellers, 1)
		s := offer.Sellers[0]
		assert.Equal(t, "Sarah's Kitchen", s.Name)
		assert.Equal(t, "https://cdn.loopa.app/avatars/sarah'skitchen.jpg", s.AvatarURL)
		assert.Equal(t, 4.9, s.Rating)
		assert.Equal(t, 124, s.ReviewCount)
		assert.Less(t, s.DistanceMiles, 0.1)
		// No structured windows on the sample: placeholder set.
		assert.Equal(t, DefaultWindows, s.Windows)
	})

	t.Run("OrderNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		orders := new(MockOrderRepo)
		svc := NewService(repo, orders)

		orders.On("GetByID", ctx, "ghost").Return(nil, nil)

		_, err := svc.EligibleSellers(ctx, "ghost")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("EmptyOrderUsesFallbackReference", func(t *testing.T) {
		repo := new(MockRepository)
		orders := new(MockOrderRepo)
		svc := NewService(repo, orders)

		emptyOrder := &order.Order{ID: "order-2", CustomerID: "user-1"}
		orders.On("GetByID", ctx, "order-2").Return(emptyOrder, nil)
		repo.On("ListAvailableExcluding", ctx, []string{}).
			Return([]*Sample{availableSample()}, nil)

		offer, err := svc.EligibleSellers(ctx, "order-2")
		require.NoError(t, err)
		require.Len(t, offer.Sellers, 1)
		// Distance measured from the fixed fallback coordinate.
		assert.Less(t, offer.Sellers[0].DistanceMiles, 0.1)
	})

	t.Run("DeduplicatesSellers", func(t *testing.T) {
		repo := new(MockRepository)
		orders := new(MockOrderRepo)
		svc := NewService(repo, orders)

		multi := orderWithSeller()
		multi.Items = append(multi.Items, multi.Items[0])
		orders.On("GetByID", ctx, "order-1").Return(multi, nil)
		repo.On("ListAvailableExcluding", ctx, []string{"seller-1"}).
			Return([]*Sample{}, nil)

		offer, err := svc.EligibleSellers(ctx, "order-1")
		require.NoError(t, err)
		assert.Empty(t, offer.Sellers)
		repo.AssertExpectations(t)
	})
}
