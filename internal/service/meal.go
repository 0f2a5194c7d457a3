package service

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/foodiesapp/backend/internal/models"
	"github.com/foodiesapp/backend/internal/repository"
	"github.com/foodiesapp/backend/internal/sanitize"
	"github.com/foodiesapp/backend/internal/types"
)

// MealService orchestrates slug derivation, sanitization, image upload
// and the row insert for meal submissions
type MealService struct {
	repo    repository.MealRepository
	storage IStorage
}

// NewMealService creates a new MealService instance
func NewMealService(repo repository.MealRepository, storage IStorage) *MealService {
	return &MealService{
		repo:    repo,
		storage: storage,
	}
}

// List returns every shared meal. Failures propagate unchanged; no
// partial results are returned.
func (s *MealService) List(ctx context.Context) ([]models.Meal, error) {
	meals, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list meals", Err: err}
	}
	return meals, nil
}

// GetBySlug fetches one meal by its slug. A missing meal returns
// (nil, nil); not-found is data, not a failure.
func (s *MealService) GetBySlug(ctx context.Context, slug string) (*models.Meal, error) {
	meal, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, &StoreError{Op: "get meal", Err: err}
	}
	return meal, nil
}

// Save persists a new meal draft. The image is uploaded before the row is
// inserted; an upload failure aborts the save before any row exists. An
// insert failure after a successful upload leaves the uploaded object
// orphaned in the bucket — accepted, no compensation is attempted.
func (s *MealService) Save(ctx context.Context, draft *types.MealDraft) (*models.Meal, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	slug := sanitize.Slug(draft.Title)
	instructions := sanitize.HTML(draft.Instructions)

	ext := strings.ToLower(filepath.Ext(draft.ImageFileName))
	key := slug + ext

	if err := s.storage.Upload(ctx, key, draft.ImageData, draft.ImageContentType); err != nil {
		return nil, &StoreError{Op: "upload image", Err: err}
	}

	meal := &models.Meal{
		Title:        draft.Title,
		Slug:         slug,
		Summary:      draft.Summary,
		Instructions: instructions,
		Creator:      draft.Creator,
		CreatorEmail: draft.CreatorEmail,
		Image:        key,
	}

	if err := s.repo.Insert(ctx, meal); err != nil {
		return nil, &StoreError{Op: "insert meal", Err: err}
	}

	return meal, nil
}

func validateDraft(draft *types.MealDraft) error {
	switch {
	case strings.TrimSpace(draft.Title) == "":
		return &ValidationError{Field: "title", Message: "is required"}
	case strings.TrimSpace(draft.Summary) == "":
		return &ValidationError{Field: "summary", Message: "is required"}
	case strings.TrimSpace(draft.Instructions) == "":
		return &ValidationError{Field: "instructions", Message: "is required"}
	case strings.TrimSpace(draft.Creator) == "":
		return &ValidationError{Field: "creator", Message: "is required"}
	case strings.TrimSpace(draft.CreatorEmail) == "":
		return &ValidationError{Field: "creator_email", Message: "is required"}
	case len(draft.ImageData) == 0:
		return &ValidationError{Field: "image", Message: "is required"}
	case filepath.Ext(draft.ImageFileName) == "":
		return &ValidationError{Field: "image", Message: "file name must carry an extension"}
	}
	return nil
}
