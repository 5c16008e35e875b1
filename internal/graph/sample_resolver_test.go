package graph

import (
	"context"
	"errors"
	"testing"
	"time"

	"loopa-be/internal/graph/model"
	"loopa-be/internal/sample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockSampleService struct {
	mock.Mock
}

func (m *MockSampleService) Claim(ctx context.Context, input sample.ClaimInput) (*sample.Sample, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sample.Sample), args.Error(1)
}

func (m *MockSampleService) EligibleSellers(ctx context.Context, orderID string) (*sample.Offer, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sample.Offer), args.Error(1)
}

// --- Tests ---

func TestMutationResolver_ClaimSample(t *testing.T) {
	input := model.ClaimSampleInput{
		OrderID:        "order-1",
		SampleID:       "sample-1",
		SellerID:       "seller-1",
		PickupWindowID: "win_1",
	}
	domainInput := sample.ClaimInput{
		OrderID:        "order-1",
		SampleID:       "sample-1",
		SellerID:       "seller-1",
		PickupWindowID: "win_1",
	}

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockSampleService)
		mr := &mutationResolver{&Resolver{SampleSvc: mockSvc}}

		ctx := context.Background()
		claimedAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
		claimed := &sample.Sample{
			ID:        "sample-1",
			SellerID:  "seller-1",
			ProductID: "prod-1",
			Status:    sample.StatusClaimed,
			ClaimedAt: &claimedAt,
		}
		mockSvc.On("Claim", ctx, domainInput).Return(claimed, nil)

		res, err := mr.ClaimSample(ctx, input)

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "Sample claimed successfully!", res.Message)
		require.NotNil(t, res.ClaimedSample)
		assert.Equal(t, "sample-1", res.ClaimedSample.ID)
		assert.Equal(t, "claimed", res.ClaimedSample.Status)
		require.NotNil(t, res.ClaimedSample.ClaimedAt)
		assert.Equal(t, "2025-03-02T10:00:00Z", *res.ClaimedSample.ClaimedAt)
		mockSvc.AssertExpectations(t)
	})

	t.Run("AlreadyClaimedFoldsIntoPayload", func(t *testing.T) {
		mockSvc := new(MockSampleService)
		mr := &mutationResolver{&Resolver{SampleSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("Claim", ctx, domainInput).Return(nil, sample.ErrNotAvailable)

		res, err := mr.ClaimSample(ctx, input)

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "Sample is no longer available", res.Message)
		assert.Nil(t, res.ClaimedSample)
	})

	t.Run("OrderNotFoundFoldsIntoPayload", func(t *testing.T) {
		mockSvc := new(MockSampleService)
		mr := &mutationResolver{&Resolver{SampleSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("Claim", ctx, domainInput).Return(nil, sample.ErrOrderNotFound)

		res, err := mr.ClaimSample(ctx, input)

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "Order not found", res.Message)
	})

	t.Run("UnexpectedErrorSurfaces", func(t *testing.T) {
		mockSvc := new(MockSampleService)
		mr := &mutationResolver{&Resolver{SampleSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("Claim", ctx, domainInput).Return(nil, errors.New("db down"))

		res, err := mr.ClaimSample(ctx, input)

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestQueryResolver_AvailableSampleSellers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockSampleService)
		qr := &queryResolver{&Resolver{SampleSvc: mockSvc}}

		ctx := context.Background()
		offer := &sample.Offer{
			Status: "available",
			Eligibility: sample.Eligibility{
				OrderID:    "order-1",
				ClaimLimit: 1,
				ExpiresIn:  "48 hours",
			},
			Sellers: []sample.OfferSeller{
				{
					ID:            "seller-2",
					Name:          "Sarah's Kitchen",
					AvatarURL:     "https://cdn.loopa.app/avatars/sarah'skitchen.jpg",
					Rating:        4.9,
					ReviewCount:   124,
					DistanceMiles: 1.2,
					Disclaimer:    "disclaimer",
					Windows:       sample.DefaultWindows,
				},
			},
		}
		mockSvc.On("EligibleSellers", ctx, "order-1").Return(offer, nil)

		res, err := qr.AvailableSampleSellers(ctx, "order-1")

		assert.NoError(t, err)
		assert.Equal(t, "available", res.Status)
		assert.Equal(t, int32(1), res.Eligibility.ClaimLimit)
		assert.Equal(t, "48 hours", res.Eligibility.ExpiresIn)
		require.Len(t, res.Sellers, 1)
		assert.Equal(t, 1.2, res.Sellers[0].DistanceMiles)
		require.Len(t, res.Sellers[0].PickupWindows, 3)
		assert.Equal(t, "win_1", res.Sellers[0].PickupWindows[0].ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("OrderNotFound", func(t *testing.T) {
		mockSvc := new(MockSampleService)
		qr := &queryResolver{&Resolver{SampleSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("EligibleSellers", ctx, "missing").Return(nil, sample.ErrOrderNotFound)

		res, err := qr.AvailableSampleSellers(ctx, "missing")

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}
