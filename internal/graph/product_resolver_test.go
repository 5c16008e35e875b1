package graph

import (
	"context"
	"testing"

	"loopa-be/internal/graph/model"
	"loopa-be/internal/product"
	"loopa-be/internal/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) ListNearby(ctx context.Context, lat, lng float64, radiusMiles *float64, category *string) ([]*product.Product, error) {
	args := m.Called(ctx, lat, lng, radiusMiles, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, input product.UpdateInput) (*product.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

// --- Tests ---

func TestQueryResolver_NearbyProducts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockProductService)
		qr := &queryResolver{&Resolver{ProductSvc: mockSvc}}

		ctx := context.Background()
		radius := 5.0
		listing := &product.Product{
			ID:     "prod-1",
			Title:  "Lavender Candle",
			Price:  decimal.RequireFromString("15.00"),
			Seller: testSeller(),
		}
		mockSvc.On("ListNearby", ctx, 40.94, -123.63, &radius, (*string)(nil)).
			Return([]*product.Product{listing}, nil)

		res, err := qr.NearbyProducts(ctx, model.LocationInput{
			Latitude:    40.94,
			Longitude:   -123.63,
			RadiusMiles: &radius,
		}, nil)

		assert.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "prod-1", res[0].ID)
		require.NotNil(t, res[0].Seller.DistanceMiles)
		mockSvc.AssertExpectations(t)
	})

	t.Run("CategoryPassesThrough", func(t *testing.T) {
		mockSvc := new(MockProductService)
		qr := &queryResolver{&Resolver{ProductSvc: mockSvc}}

		ctx := context.Background()
		cat := "candles"
		mockSvc.On("ListNearby", ctx, 40.94, -123.63, (*float64)(nil), &cat).
			Return([]*product.Product{}, nil)

		res, err := qr.NearbyProducts(ctx, model.LocationInput{
			Latitude:  40.94,
			Longitude: -123.63,
		}, &cat)

		assert.NoError(t, err)
		assert.Empty(t, res)
		mockSvc.AssertExpectations(t)
	})
}

func TestQueryResolver_Product(t *testing.T) {
	t.Run("NotFoundResolvesToNull", func(t *testing.T) {
		mockSvc := new(MockProductService)
		qr := &queryResolver{&Resolver{ProductSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("GetByID", ctx, "missing").Return(nil, nil)

		res, err := qr.Product(ctx, "missing")

		assert.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("PresentedFromOwnSellerCoordinate", func(t *testing.T) {
		mockSvc := new(MockProductService)
		qr := &queryResolver{&Resolver{ProductSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("GetByID", ctx, "prod-1").Return(&product.Product{
			ID:     "prod-1",
			Seller: testSeller(),
		}, nil)

		res, err := qr.Product(ctx, "prod-1")

		assert.NoError(t, err)
		require.NotNil(t, res)
		require.NotNil(t, res.Seller.DistanceMiles)
		assert.Equal(t, 0.0, *res.Seller.DistanceMiles)
	})
}

func TestMutationResolver_UpdateProduct(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		mockSvc := new(MockProductService)
		mr := &mutationResolver{&Resolver{ProductSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("Update", ctx, mock.Anything).Return(nil, product.ErrProductNotFound)

		res, err := mr.UpdateProduct(ctx, "missing", model.UpdateProductInput{
			Title: utils.StrPtr("x"),
		})

		require.Error(t, err)
		assert.Nil(t, res)
	})
}
