package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"STOREHUB_BACK-END/internal/apperr"
)

func TestCategoryCreateAndGet(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Books")
	require.NoError(t, err)
	require.Equal(t, "Books", created.Name)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestCategoryCreateEmptyName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())

	_, err := svc.Create(context.Background(), "  ")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	require.Equal(t, "Category name is required.", apperr.ClientMessage(err))
}

func TestCategoryDuplicateName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, "Books")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Books")
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	require.Equal(t, "Category name already exists.", apperr.ClientMessage(err))

	categories, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, "Books", categories[0].Name)
}

func TestCategoryListOrderedByName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())
	ctx := context.Background()

	for _, name := range []string{"Toys", "Books", "Music"} {
		_, err := svc.Create(ctx, name)
		require.NoError(t, err)
	}

	categories, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	require.Equal(t, "Books", categories[0].Name)
	require.Equal(t, "Music", categories[1].Name)
	require.Equal(t, "Toys", categories[2].Name)
}

func TestCategoryUpdate(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())
	ctx := context.Background()

	books, err := svc.Create(ctx, "Books")
	require.NoError(t, err)
	toys, err := svc.Create(ctx, "Toys")
	require.NoError(t, err)

	// Renaming onto another category's name is a conflict.
	_, err = svc.Update(ctx, toys.ID, "Books")
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// Renaming to the category's own name is allowed.
	same, err := svc.Update(ctx, books.ID, "Books")
	require.NoError(t, err)
	require.Equal(t, "Books", same.Name)

	renamed, err := svc.Update(ctx, toys.ID, "Games")
	require.NoError(t, err)
	require.Equal(t, "Games", renamed.Name)
	require.Equal(t, toys.ID, renamed.ID)
}

func TestCategoryUpdateMissing(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, "Books")
	require.NoError(t, err)

	// A missing category is 404 even when the target name collides.
	_, err = svc.Update(ctx, uuid.New(), "Books")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	require.Equal(t, "Category not found.", apperr.ClientMessage(err))
}

func TestCategoryUpdateEmptyName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())

	_, err := svc.Update(context.Background(), uuid.New(), "")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCategoryDeleteMissing(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())

	err := svc.Delete(context.Background(), uuid.New())
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCategoryDelete(t *testing.T) {
	st := newFakeCategoryStore()
	svc := NewCategoryService(st)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Books")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
