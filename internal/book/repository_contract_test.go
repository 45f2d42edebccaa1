package book

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRepositoryContract exercises the behaviour every store adapter shares.
// missingID must be well formed for the store but absent from it.
func runRepositoryContract(t *testing.T, repo Repository, missingID string) {
	ctx := context.Background()

	newBook := func(title string) *Book {
		return &Book{
			Title:           title,
			AuthorFirstName: "Frank",
			AuthorLastName:  "Herbert",
			Genre:           "SciFi",
			PublishedDate:   NewDate(1965, time.January, 1),
			Pages:           412,
		}
	}

	t.Run("create assigns id and get resolves it", func(t *testing.T) {
		b := newBook("Dune")
		require.NoError(t, repo.Create(ctx, b))
		require.NotEmpty(t, b.ID)

		got, err := repo.Get(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, *b, got)
	})

	t.Run("list includes created books", func(t *testing.T) {
		b := newBook("Children of Dune")
		require.NoError(t, repo.Create(ctx, b))

		books, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, books, *b)
	})

	t.Run("update merges provided fields", func(t *testing.T) {
		b := newBook("Dune Messiah")
		require.NoError(t, repo.Create(ctx, b))

		read := true
		updated, err := repo.Update(ctx, b.ID, UpdateInput{ReadStatus: &read})
		require.NoError(t, err)

		want := *b
		want.ReadStatus = true
		assert.Equal(t, want, updated)

		again, err := repo.Update(ctx, b.ID, UpdateInput{ReadStatus: &read})
		require.NoError(t, err)
		assert.Equal(t, updated, again)

		got, err := repo.Get(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("delete is not idempotent", func(t *testing.T) {
		b := newBook("God Emperor of Dune")
		require.NoError(t, repo.Create(ctx, b))

		require.NoError(t, repo.Delete(ctx, b.ID))
		assert.ErrorIs(t, repo.Delete(ctx, b.ID), ErrNotFound)

		_, err := repo.Get(ctx, b.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.Get(ctx, missingID)
		assert.ErrorIs(t, err, ErrNotFound)

		read := true
		_, err = repo.Update(ctx, missingID, UpdateInput{ReadStatus: &read})
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, missingID), ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := repo.Get(ctx, "not-an-id")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidID))
		assert.False(t, errors.Is(err, ErrNotFound))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(ctx))
	})
}
