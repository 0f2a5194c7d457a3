package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/foodiesapp/backend/internal/mocks"
	"github.com/foodiesapp/backend/internal/models"
	"github.com/foodiesapp/backend/internal/types"
)

func testDraft() *types.MealDraft {
	return &types.MealDraft{
		Title:            "Spicy Thai Curry!",
		Summary:          "A fiery red curry",
		Instructions:     "Step 1\nStep 2",
		Creator:          "Max",
		CreatorEmail:     "max@example.com",
		ImageData:        []byte{0xFF, 0xD8, 0xFF},
		ImageFileName:    "curry.jpg",
		ImageContentType: "image/jpeg",
	}
}

func TestSaveDerivesSlugAndBlobKey(t *testing.T) {
	repo := new(mocks.MockMealRepository)
	storage := new(mocks.MockStorage)
	svc := NewMealService(repo, storage)

	storage.On("Upload", mock.Anything, "spicy-thai-curry.jpg", []byte{0xFF, 0xD8, 0xFF}, "image/jpeg").Return(nil)
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Meal")).Return(nil)

	meal, err := svc.Save(context.Background(), testDraft())
	require.NoError(t, err)
	assert.Equal(t, "spicy-thai-curry", meal.Slug)
	assert.Equal(t, "spicy-thai-curry.jpg", meal.Image)
	assert.Equal(t, "Step 1\nStep 2", meal.Instructions, "stored instructions must preserve the newline")

	storage.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestSaveSanitizesInstructions(t *testing.T) {
	repo := new(mocks.MockMealRepository)
	storage := new(mocks.MockStorage)
	svc := NewMealService(repo, storage)

	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Meal")).Return(nil)

	draft := testDraft()
	draft.Instructions = `Chop onions<script>alert("boom")</script> and fry`

	meal, err := svc.Save(context.Background(), draft)
	require.NoError(t, err)
	assert.NotContains(t, meal.Instructions, "<script>")
	assert.NotContains(t, meal.Instructions, "alert")
	assert.Contains(t, meal.Instructions, "Chop onions")
}

func TestSaveUploadFailureSkipsInsert(t *testing.T) {
	repo := new(mocks.MockMealRepository)
	storage := new(mocks.MockStorage)
	svc := NewMealService(repo, storage)

	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("bucket unreachable"))

	_, err := svc.Save(context.Background(), testDraft())
	require.Error(t, err)

	var storeErr *StoreError
	assert.True(t, errors.As(err, &storeErr))
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSaveInsertFailureLeavesOrphanedBlob(t *testing.T) {
	repo := new(mocks.MockMealRepository)
	storage := new(mocks.MockStorage)
	svc := NewMealService(repo, storage)

	storage.On("Upload", mock.Anything, "spicy-thai-curry.jpg", mock.Anything, mock.Anything).Return(nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("duplicate key value violates unique constraint"))

	_, err := svc.Save(context.Background(), testDraft())
	require.Error(t, err)

	// The upload happened and is never compensated: the object stays in
	// the bucket even though no row was written.
	storage.AssertCalled(t, "Upload", mock.Anything, "spicy-thai-curry.jpg", mock.Anything, mock.Anything)
}

func TestSaveValidatesBeforeAnyIO(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.MealDraft)
		field  string
	}{
		{"missing title", func(d *types.MealDraft) { d.Title = "" }, "title"},
		{"missing summary", func(d *types.MealDraft) { d.Summary = "  " }, "summary"},
		{"missing instructions", func(d *types.MealDraft) { d.Instructions = "" }, "instructions"},
		{"missing creator", func(d *types.MealDraft) { d.Creator = "" }, "creator"},
		{"missing creator email", func(d *types.MealDraft) { d.CreatorEmail = "" }, "creator_email"},
		{"missing image", func(d *types.MealDraft) { d.ImageData = nil }, "image"},
		{"image without extension", func(d *types.MealDraft) { d.ImageFileName = "curry" }, "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockMealRepository)
			storage := new(mocks.MockStorage)
			svc := NewMealService(repo, storage)

			draft := testDraft()
			tt.mutate(draft)

			_, err := svc.Save(context.Background(), draft)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)

			storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestListPropagatesFailure(t *testing.T) {
	repo := new(mocks.MockMealRepository)
	svc := NewMealService(repo, new(mocks.MockStorage))

	repo.On("ListAll", mock.Anything).Return(nil, errors.New("connection refused"))

	meals, err := svc.List(context.Background())
	assert.Nil(t, meals, "no partial results on failure")
	var storeErr *StoreError
	assert.True(t, errors.As(err, &storeErr))
}

func TestList(t *testing.T) {
	repo := new(mocks.MockMealRepository)
	svc := NewMealService(repo, new(mocks.MockStorage))

	repo.On("ListAll", mock.Anything).Return([]models.Meal{{Slug: "one"}, {Slug: "two"}}, nil)

	meals, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, meals, 2)
}

func TestGetBySlugNotFoundIsNotAnError(t *testing.T) {
	repo := new(mocks.MockMealRepository)
	svc := NewMealService(repo, new(mocks.MockStorage))

	repo.On("GetBySlug", mock.Anything, "missing").Return(nil, nil)

	meal, err := svc.GetBySlug(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, meal)
}
