package graph

import (
	"context"
	"testing"
	"time"

	"loopa-be/internal/graph/model"
	"loopa-be/internal/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, customerID string, items []order.ItemInput) (*order.Order, error) {
	args := m.Called(ctx, customerID, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

// --- Tests ---

func TestMutationResolver_CreateOrder(t *testing.T) {
	created := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		mr := &mutationResolver{&Resolver{OrderSvc: mockSvc}}

		ctx := context.Background()
		placed := &order.Order{
			ID:           "order-1",
			OrderNumber:  "LPA-4821",
			Status:       order.StatusPending,
			CustomerID:   "user-1",
			CustomerName: "Maya Chen",
			TotalAmount:  decimal.RequireFromString("15.00"),
			Currency:     "USD",
			CreatedAt:    created,
		}
		mockSvc.On("Create", ctx, "user-1", []order.ItemInput{{ProductID: "prod-1", Quantity: 1}}).
			Return(placed, nil)

		res, err := mr.CreateOrder(ctx, model.CreateOrderInput{
			CustomerID: "user-1",
			Items:      []*model.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
		})

		assert.NoError(t, err)
		assert.Equal(t, "success", res.Status)
		assert.Equal(t, "Order placed successfully", res.Message)
		assert.Equal(t, "LPA-4821", res.Order.OrderNumber)
		assert.Equal(t, "Success!", res.Celebration.Title)
		assert.True(t, res.FreeSampleOffer.Enabled)
		assert.Equal(t, "A gift for you...", res.FreeSampleOffer.Title)
		mockSvc.AssertExpectations(t)
	})

	t.Run("CustomerNotFound", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		mr := &mutationResolver{&Resolver{OrderSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("Create", ctx, "ghost", mock.Anything).Return(nil, order.ErrCustomerNotFound)

		res, err := mr.CreateOrder(ctx, model.CreateOrderInput{
			CustomerID: "ghost",
			Items:      []*model.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
		})

		require.Error(t, err)
		assert.Nil(t, res)
		assert.Contains(t, err.Error(), "customer not found")
	})
}

func TestQueryResolver_Order(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		qr := &queryResolver{&Resolver{OrderSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("GetByID", ctx, "order-1").Return(&order.Order{
			ID:          "order-1",
			OrderNumber: "LPA-1234",
			Status:      order.StatusPending,
			CreatedAt:   time.Now(),
		}, nil)

		res, err := qr.Order(ctx, "order-1")

		assert.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "LPA-1234", res.OrderNumber)
	})

	t.Run("NotFoundResolvesToNull", func(t *testing.T) {
		mockSvc := new(MockOrderService)
		qr := &queryResolver{&Resolver{OrderSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("GetByID", ctx, "missing").Return(nil, nil)

		res, err := qr.Order(ctx, "missing")

		assert.NoError(t, err)
		assert.Nil(t, res)
	})
}
