package order

import (
	"context"
	"testing"

	"loopa-be/internal/config"
	"loopa-be/internal/pickup"
	"loopa-be/internal/product"
	"loopa-be/internal/seller"
	"loopa-be/internal/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, o *Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) ListByCategory(ctx context.Context, category *string) ([]*product.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepo) GetByID(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepo) ListByIDs(ctx context.Context, ids []string) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepo) Update(ctx context.Context, input product.UpdateInput) (*product.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

// --- Fixtures ---

func candle() *product.Product {
	return &product.Product{
		ID:    "prod-1",
		Title: "Lavender & Sage Candle",
		Price: decimal.RequireFromString("15.00"),
		PickupWindows: []pickup.Window{{
			Days:      "Mon-Fri",
			StartTime: "17:00",
			EndTime:   "19:00",
			Formatted: "Mon-Fri 5:00 PM - 7:00 PM",
		}},
		PickupLocation: &pickup.Location{
			Address:       "88 Oak Ave, Willow Creek",
			Latitude:      40.9382,
			Longitude:     -123.6321,
			DistanceMiles: 1.2,
		},
		Seller: seller.Seller{ID: "seller-1", Name: "The Candle Nook", Latitude: 40.94, Longitude: -123.63},
	}
}

func jam() *product.Product {
	return &product.Product{
		ID:     "prod-2",
		Title:  "Spiced Peach & Honey Jam",
		Price:  decimal.RequireFromString("8.50"),
		Seller: seller.Seller{ID: "seller-2", Name: "Sarah's Kitchen", Latitude: 40.9401, Longitude: -123.6305},
	}
}

func jamie() *user.User {
	return &user.User{ID: "user-1", Email: "jamie@loopa.app", Name: "Jamie Rivera"}
}

func newTestService(repo *MockRepository, products *MockProductRepo, users *MockUserRepo, policy config.MissingProductPolicy) Service {
	return NewService(repo, products, users, policy)
}

// --- Tests ---

func TestService_Create_TotalAndSnapshots(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	products := new(MockProductRepo)
	users := new(MockUserRepo)
	svc := newTestService(repo, products, users, config.MissingProductDegrade)

	users.On("GetByID", ctx, "user-1").Return(jamie(), nil)
	products.On("ListByIDs", ctx, []string{"prod-1", "prod-2"}).
		Return([]*product.Product{candle(), jam()}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	o, err := svc.Create(ctx, "user-1", []ItemInput{
		{ProductID: "prod-1", Quantity: 2},
		{ProductID: "prod-2", Quantity: 1},
	})
	require.NoError(t, err)

	// 2 * 15.00 + 1 * 8.50
	assert.Equal(t, "38.5", o.TotalAmount.String())
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "USD", o.Currency)
	assert.Regexp(t, `^LPA-\d{4}$`, o.OrderNumber)
	assert.Equal(t, "Jamie Rivera", o.CustomerName)

	require.Len(t, o.Items, 2)

	// First item snapshots the product's explicit pickup data.
	first := o.Items[0]
	require.NotNil(t, first.Pickup)
	assert.Equal(t, "88 Oak Ave, Willow Creek", first.Pickup.Location.Address)
	assert.Equal(t, "Willow Creek", first.Pickup.Location.City)
	assert.Equal(t, 1.2, first.Pickup.Location.DistanceMiles)
	assert.Equal(t, "Mon-Fri 5:00 PM - 7:00 PM", first.Pickup.Window.Formatted)

	// Second product has no structured pickup data: fixed fallbacks.
	second := o.Items[1]
	require.NotNil(t, second.Pickup)
	assert.Equal(t, FallbackAddress, second.Pickup.Location.Address)
	assert.Equal(t, FallbackDistanceMiles, second.Pickup.Location.DistanceMiles)
	assert.Equal(t, 40.9401, second.Pickup.Location.Coordinates.Lat)
	assert.Equal(t, FallbackWindowFormatted, second.Pickup.Window.Formatted)
}

func TestService_Create_MissingProductDegrades(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	products := new(MockProductRepo)
	users := new(MockUserRepo)
	svc := newTestService(repo, products, users, config.MissingProductDegrade)

	users.On("GetByID", ctx, "user-1").Return(jamie(), nil)
	products.On("ListByIDs", ctx, []string{"prod-1", "ghost"}).
		Return([]*product.Product{candle()}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	o, err := svc.Create(ctx, "user-1", []ItemInput{
		{ProductID: "prod-1", Quantity: 1},
		{ProductID: "ghost", Quantity: 3},
	})
	require.NoError(t, err)

	// Only the resolved line contributes to the total.
	assert.Equal(t, "15", o.TotalAmount.String())

	require.Len(t, o.Items, 2)
	degraded := o.Items[1]
	assert.True(t, degraded.Price.IsZero())
	assert.Nil(t, degraded.Pickup)
}

func TestService_Create_MissingProductStrict(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	products := new(MockProductRepo)
	users := new(MockUserRepo)
	svc := newTestService(repo, products, users, config.MissingProductStrict)

	users.On("GetByID", ctx, "user-1").Return(jamie(), nil)
	products.On("ListByIDs", ctx, []string{"ghost"}).Return([]*product.Product{}, nil)

	_, err := svc.Create(ctx, "user-1", []ItemInput{{ProductID: "ghost", Quantity: 1}})
	assert.ErrorIs(t, err, ErrProductNotFound)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_CustomerNotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	products := new(MockProductRepo)
	users := new(MockUserRepo)
	svc := newTestService(repo, products, users, config.MissingProductDegrade)

	users.On("GetByID", ctx, "ghost").Return(nil, nil)

	_, err := svc.Create(ctx, "ghost", []ItemInput{{ProductID: "prod-1", Quantity: 1}})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_Create_InputValidation(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	products := new(MockProductRepo)
	users := new(MockUserRepo)
	svc := newTestService(repo, products, users, config.MissingProductDegrade)

	_, err := svc.Create(ctx, "user-1", nil)
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = svc.Create(ctx, "user-1", []ItemInput{{ProductID: "prod-1", Quantity: 0}})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestService_Create_OrderNumberRetry(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	products := new(MockProductRepo)
	users := new(MockUserRepo)
	svc := newTestService(repo, products, users, config.MissingProductDegrade)

	users.On("GetByID", ctx, "user-1").Return(jamie(), nil)
	products.On("ListByIDs", ctx, []string{"prod-1"}).Return([]*product.Product{candle()}, nil)

	// First two attempts collide, third succeeds.
	repo.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(ErrOrderNumberTaken).Twice()
	repo.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	o, err := svc.Create(ctx, "user-1", []ItemInput{{ProductID: "prod-1", Quantity: 1}})
	require.NoError(t, err)
	assert.Regexp(t, `^LPA-\d{4}$`, o.OrderNumber)
	repo.AssertNumberOfCalls(t, "Create", 3)
}

func TestService_Create_OrderNumberExhausted(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	products := new(MockProductRepo)
	users := new(MockUserRepo)
	svc := newTestService(repo, products, users, config.MissingProductDegrade)

	users.On("GetByID", ctx, "user-1").Return(jamie(), nil)
	products.On("ListByIDs", ctx, []string{"prod-1"}).Return([]*product.Product{candle()}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(ErrOrderNumberTaken)

	_, err := svc.Create(ctx, "user-1", []ItemInput{{ProductID: "prod-1", Quantity: 1}})
	assert.ErrorIs(t, err, ErrOrderNumberTaken)
	repo.AssertNumberOfCalls(t, "Create", orderNumberAttempts)
}
