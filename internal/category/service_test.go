package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]*Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Category), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, label, icon string, isActive bool, count int32) (*Category, error) {
	args := m.Called(ctx, label, icon, isActive, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

// --- Tests ---

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		expected := &Category{ID: "cat-1", Label: "Bakery", Icon: "croissant", IsActive: true}
		mockRepo.On("Create", ctx, "Bakery", "croissant", true, int32(0)).Return(expected, nil)

		res, err := svc.Create(ctx, "Bakery", "croissant", nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, expected, res)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ExplicitValues", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		inactive := false
		count := int32(14)
		mockRepo.On("Create", ctx, "Sweets", "cookie", false, int32(14)).
			Return(&Category{ID: "cat-2"}, nil)

		_, err := svc.Create(ctx, "Sweets", "cookie", &inactive, &count)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("BlankLabel", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, "   ", "icon", nil, nil)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Create", ctx, "Body", "soap", true, int32(0)).Return(nil, errors.New("db error"))

		_, err := svc.Create(ctx, "Body", "soap", nil, nil)
		assert.Error(t, err)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	expected := []*Category{{ID: "cat-1", Label: "All"}}
	mockRepo.On("List", ctx).Return(expected, nil)

	res, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expected, res)
}
