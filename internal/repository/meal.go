package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/foodiesapp/backend/internal/models"
)

// MealRepository is the capability surface of the record store. Backends
// are swappable (postgres in production, sqlite in tests); the store is
// append-only from this service's perspective.
type MealRepository interface {
	ListAll(ctx context.Context) ([]models.Meal, error)
	GetBySlug(ctx context.Context, slug string) (*models.Meal, error)
	Insert(ctx context.Context, meal *models.Meal) error
}

// GormMealRepository implements MealRepository on top of GORM
type GormMealRepository struct {
	db *gorm.DB
}

// NewGormMealRepository creates a new GormMealRepository instance
func NewGormMealRepository(db *gorm.DB) *GormMealRepository {
	return &GormMealRepository{db: db}
}

// ListAll returns every persisted meal in store-native order
func (r *GormMealRepository) ListAll(ctx context.Context) ([]models.Meal, error) {
	var meals []models.Meal
	if err := r.db.WithContext(ctx).Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// GetBySlug looks up a meal by its unique slug. A missing row is not an
// error: it returns (nil, nil) and the caller maps that to not-found.
func (r *GormMealRepository) GetBySlug(ctx context.Context, slug string) (*models.Meal, error) {
	var meal models.Meal
	if err := r.db.WithContext(ctx).First(&meal, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

// Insert appends one meal row; the store assigns the ID. Constraint
// violations (duplicate slug) surface unchanged.
func (r *GormMealRepository) Insert(ctx context.Context, meal *models.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}
