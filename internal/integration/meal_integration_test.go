package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodiesapp/backend/internal/models"
	"github.com/foodiesapp/backend/internal/repository"
	"github.com/foodiesapp/backend/internal/testdb"
)

func TestMealRepositoryAgainstPostgres(t *testing.T) {
	td := testdb.SetupTestDB(t)
	defer func() { _ = td.Close() }()

	repo := repository.NewGormMealRepository(td.DB)
	ctx := context.Background()

	meal := &models.Meal{
		Title:        "Spicy Thai Curry",
		Slug:         "spicy-thai-curry",
		Summary:      "A fiery curry",
		Instructions: "Step 1\nStep 2",
		Creator:      "Max",
		CreatorEmail: "max@example.com",
		Image:        "spicy-thai-curry.jpg",
	}
	require.NoError(t, repo.Insert(ctx, meal))

	got, err := repo.GetBySlug(ctx, "spicy-thai-curry")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Step 1\nStep 2", got.Instructions)

	missing, err := repo.GetBySlug(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// The unique index is the only duplicate-slug protection.
	dup := *meal
	dup.ID = 0
	assert.Error(t, repo.Insert(ctx, &dup))

	meals, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, meals, 1)
}
