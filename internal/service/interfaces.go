package service

import (
	"context"

	"github.com/foodiesapp/backend/internal/models"
	"github.com/foodiesapp/backend/internal/types"
)

// IMealService defines the interface for meal operations
type IMealService interface {
	List(ctx context.Context) ([]models.Meal, error)
	GetBySlug(ctx context.Context, slug string) (*models.Meal, error)
	Save(ctx context.Context, draft *types.MealDraft) (*models.Meal, error)
}

// IStorage defines the interface for blob storage operations
type IStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) string
}
