package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/image-variants/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/image-variants/internal/domain"
	"github.com/marcos-nsantos/image-variants/internal/domain/entity"
)

func newTestVariantSet() *entity.VariantSet {
	return entity.NewVariantSet("My Photo.jpg", "ab12c", "My-Photo-ab12cjpg", "uploads", "both", []entity.Variant{
		{Label: "100x100", FileName: "My-Photo-100-ab12c.jpg", Width: 100, Height: 75},
		{Label: "200x200", FileName: "My-Photo-200-ab12c.jpg", Width: 200, Height: 150},
	})
}

func TestIntegrationVariantSetRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewVariantSetRepo(db.Pool)
	ctx := context.Background()

	t.Run("creates variant set with variants", func(t *testing.T) {
		db.Truncate(t, "variants", "variant_sets")

		set := newTestVariantSet()
		err := repo.Create(ctx, set)

		require.NoError(t, err)

		var count int
		err = db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM variants WHERE set_id = $1", set.ID).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("creates relocated file without dimensions", func(t *testing.T) {
		db.Truncate(t, "variants", "variant_sets")

		set := entity.NewVariantSet("report.pdf", "ab12c", "report-ab12cpdf", "uploads", "", []entity.Variant{
			{Label: "", FileName: "report-ab12c.pdf"},
		})
		err := repo.Create(ctx, set)

		require.NoError(t, err)
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		db.Truncate(t, "variants", "variant_sets")

		set := newTestVariantSet()
		require.NoError(t, repo.Create(ctx, set))

		err := repo.Create(ctx, set)

		assert.Error(t, err)
	})
}

func TestIntegrationVariantSetRepo_GetByID(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewVariantSetRepo(db.Pool)
	ctx := context.Background()

	t.Run("returns variant set with ordered variants", func(t *testing.T) {
		db.Truncate(t, "variants", "variant_sets")

		set := newTestVariantSet()
		require.NoError(t, repo.Create(ctx, set))

		found, err := repo.GetByID(ctx, set.ID)

		require.NoError(t, err)
		assert.Equal(t, set.ID, found.ID)
		assert.Equal(t, "ab12c", found.Token)
		assert.Equal(t, "My-Photo-ab12cjpg", found.BaseName)
		require.Len(t, found.Variants, 2)
		assert.Equal(t, "100x100", found.Variants[0].Label)
		assert.Equal(t, "My-Photo-200-ab12c.jpg", found.Variants[1].FileName)
		assert.Equal(t, 150, found.Variants[1].Height)
	})

	t.Run("returns not found error", func(t *testing.T) {
		db.Truncate(t, "variants", "variant_sets")

		found, err := repo.GetByID(ctx, uuid.New())

		assert.Nil(t, found)
		assert.ErrorIs(t, err, domain.ErrVariantSetNotFound)
	})
}
