package usecase_test

import (
	"io"
	"testing"

	"catalog_service/internal/domain"
	"catalog_service/internal/store"
	"catalog_service/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newCategoryUseCase() (usecase.CategoryUseCase, domain.CategoryRepository) {
	logger := testLogger()
	repo := store.NewMemoryCategoryRepository(logger)
	return usecase.NewCategoryUseCase(repo, logger), repo
}

func TestCreateCategoryAssignsID(t *testing.T) {
	uc, _ := newCategoryUseCase()

	created, err := uc.CreateCategory(&domain.Category{Name: "Limpeza"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	got, err := uc.GetCategoryByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateCategoryValidation(t *testing.T) {
	testCases := []struct {
		name      string
		input     domain.Category
		wantField string
	}{
		{name: "empty name", input: domain.Category{}, wantField: "name"},
		{name: "name too short", input: domain.Category{Name: "ab"}, wantField: "name"},
		{name: "name too long", input: domain.Category{Name: string(make([]byte, 61))}, wantField: "name"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newCategoryUseCase()

			_, err := uc.CreateCategory(&tc.input)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			require.NotEmpty(t, verr.Fields)
			assert.Equal(t, tc.wantField, verr.Fields[0].Field)

			// No mutation on rejected input.
			all, err := uc.ListCategories()
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	uc, _ := newCategoryUseCase()

	_, err := uc.GetCategoryByID(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetCategoryByID(0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateCategory(t *testing.T) {
	uc, _ := newCategoryUseCase()
	created, err := uc.CreateCategory(&domain.Category{Name: "Limpeza"})
	require.NoError(t, err)

	err = uc.UpdateCategory(created.ID, &domain.Category{ID: created.ID, Name: "Higiene"})
	require.NoError(t, err)

	got, err := uc.GetCategoryByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Higiene", got.Name)
}

func TestUpdateCategoryIDMismatchIsBadRequest(t *testing.T) {
	uc, _ := newCategoryUseCase()
	created, err := uc.CreateCategory(&domain.Category{Name: "Limpeza"})
	require.NoError(t, err)

	// A perfectly valid payload still fails when it names another record.
	err = uc.UpdateCategory(created.ID, &domain.Category{ID: created.ID + 1, Name: "Higiene"})
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	err = uc.UpdateCategory(0, &domain.Category{ID: 0, Name: "Higiene"})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	uc, _ := newCategoryUseCase()

	err := uc.UpdateCategory(42, &domain.Category{ID: 42, Name: "Fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCategory(t *testing.T) {
	uc, _ := newCategoryUseCase()
	created, err := uc.CreateCategory(&domain.Category{Name: "Limpeza"})
	require.NoError(t, err)

	removed, err := uc.DeleteCategory(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Limpeza", removed.Name)

	_, err = uc.GetCategoryByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.DeleteCategory(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.UpdateCategory(created.ID, &domain.Category{ID: created.ID, Name: "Voltou"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCategoriesInsertionOrder(t *testing.T) {
	uc, _ := newCategoryUseCase()
	for _, name := range []string{"Limpeza", "Higiene", "Alimentos"} {
		_, err := uc.CreateCategory(&domain.Category{Name: name})
		require.NoError(t, err)
	}

	all, err := uc.ListCategories()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Limpeza", all[0].Name)
	assert.Equal(t, "Higiene", all[1].Name)
	assert.Equal(t, "Alimentos", all[2].Name)
}
