package product

import (
	"context"
	"errors"
	"testing"

	"loopa-be/internal/seller"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListByCategory(ctx context.Context, category *string) ([]*Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) ListByIDs(ctx context.Context, ids []string) ([]*Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, input UpdateInput) (*Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func productAt(id string, lat, lng float64) *Product {
	return &Product{
		ID:     id,
		Seller: seller.Seller{ID: "seller-" + id, Latitude: lat, Longitude: lng},
	}
}

// --- Tests ---

func TestService_ListNearby_CategoryNormalization(t *testing.T) {
	ctx := context.Background()

	t.Run("AllDisablesFilter", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		all := "ALL"

		mockRepo.On("ListByCategory", ctx, (*string)(nil)).Return([]*Product{}, nil)

		_, err := svc.ListNearby(ctx, 40.94, -123.63, nil, &all)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("CategoryPassedThrough", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		body := "body"

		mockRepo.On("ListByCategory", ctx, &body).Return([]*Product{}, nil)

		_, err := svc.ListNearby(ctx, 40.94, -123.63, nil, &body)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_ListNearby_RadiusFilter(t *testing.T) {
	ctx := context.Background()

	near := productAt("near", 40.9401, -123.6305) // well under 0.1 mi
	far := productAt("far", 37.77, -122.42)       // a few hundred miles

	t.Run("ExcludesBeyondRadius", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		radius := 5.0

		mockRepo.On("ListByCategory", ctx, (*string)(nil)).Return([]*Product{near, far}, nil)

		res, err := svc.ListNearby(ctx, 40.94, -123.63, &radius, nil)
		assert.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "near", res[0].ID)
	})

	t.Run("BoundaryIsIncluded", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		// ~0.69 mi north of the reference point; rounds to 0.7.
		boundary := productAt("boundary", 40.95, -123.63)
		radius := 0.7

		mockRepo.On("ListByCategory", ctx, (*string)(nil)).Return([]*Product{boundary}, nil)

		res, err := svc.ListNearby(ctx, 40.94, -123.63, &radius, nil)
		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("AbsentRadiusIsUnbounded", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("ListByCategory", ctx, (*string)(nil)).Return([]*Product{near, far}, nil)

		res, err := svc.ListNearby(ctx, 40.94, -123.63, nil, nil)
		assert.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("ListByCategory", ctx, (*string)(nil)).Return(nil, errors.New("db error"))

		_, err := svc.ListNearby(ctx, 40.94, -123.63, nil, nil)
		assert.Error(t, err)
	})
}

func TestService_Update_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("NegativePrice", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		neg := decimal.NewFromFloat(-1)

		_, err := svc.Update(ctx, UpdateInput{ID: "prod-1", Price: &neg})
		assert.ErrorIs(t, err, ErrInvalidPrice)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		neg := int32(-5)

		_, err := svc.Update(ctx, UpdateInput{ID: "prod-1", QuantityAvailable: &neg})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("NoFields", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Update(ctx, UpdateInput{ID: "prod-1"})
		assert.ErrorIs(t, err, ErrNoFields)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		title := "Lavender & Sage Candle"
		input := UpdateInput{ID: "prod-1", Title: &title}

		mockRepo.On("Update", ctx, input).Return(&Product{ID: "prod-1", Title: title}, nil)

		res, err := svc.Update(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, title, res.Title)
	})
}
