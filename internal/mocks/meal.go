package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/foodiesapp/backend/internal/models"
)

// MockMealRepository is a mock implementation of the meal repository
type MockMealRepository struct {
	mock.Mock
}

// ListAll mocks the ListAll method
func (m *MockMealRepository) ListAll(ctx context.Context) ([]models.Meal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

// GetBySlug mocks the GetBySlug method
func (m *MockMealRepository) GetBySlug(ctx context.Context, slug string) (*models.Meal, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

// Insert mocks the Insert method
func (m *MockMealRepository) Insert(ctx context.Context, meal *models.Meal) error {
	args := m.Called(ctx, meal)
	return args.Error(0)
}

// MockStorage is a mock implementation of the blob storage client
type MockStorage struct {
	mock.Mock
}

// Upload mocks the Upload method
func (m *MockStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

// PublicURL mocks the PublicURL method
func (m *MockStorage) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}
