//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mader-backend/internal/domains/book/model"
	"mader-backend/internal/infrastructure/database/dbtest"
)

func TestPostgresRepository(t *testing.T) {
	pool := dbtest.NewPool(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	seedAuthor := func(t *testing.T) int64 {
		t.Helper()
		var id int64
		require.NoError(t, pool.QueryRow(ctx, `INSERT INTO authors (name) VALUES ('clarice') RETURNING id`).Scan(&id))
		return id
	}

	t.Run("create and constraints", func(t *testing.T) {
		dbtest.Reset(t, pool)
		authorID := seedAuthor(t)

		created, err := repo.Create(ctx, &model.Book{Year: 1977, Title: "a hora da estrela", AuthorID: authorID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)

		_, err = repo.Create(ctx, &model.Book{Year: 1977, Title: "a hora da estrela", AuthorID: authorID})
		assert.ErrorIs(t, err, model.ErrDuplicateTitle)

		_, err = repo.Create(ctx, &model.Book{Year: 1977, Title: "orphan", AuthorID: 99})
		assert.ErrorIs(t, err, model.ErrUnknownAuthor)
	})

	t.Run("list filters by year and title", func(t *testing.T) {
		dbtest.Reset(t, pool)
		authorID := seedAuthor(t)

		for _, b := range []model.Book{
			{Year: 1977, Title: "a hora da estrela", AuthorID: authorID},
			{Year: 1943, Title: "perto do coracao selvagem", AuthorID: authorID},
			{Year: 1977, Title: "um sopro de vida", AuthorID: authorID},
		} {
			_, err := repo.Create(ctx, &b)
			require.NoError(t, err)
		}

		year := 1977
		books, err := repo.List(ctx, model.BookFilter{Year: &year, Limit: 20})
		require.NoError(t, err)
		assert.Len(t, books, 2)

		books, err = repo.List(ctx, model.BookFilter{Year: &year, Title: "%ESTRELA%", Limit: 20})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "a hora da estrela", books[0].Title)

		books, err = repo.List(ctx, model.BookFilter{Limit: 20, Offset: 20})
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("update and delete", func(t *testing.T) {
		dbtest.Reset(t, pool)
		authorID := seedAuthor(t)

		b, err := repo.Create(ctx, &model.Book{Year: 1977, Title: "a hora da estrela", AuthorID: authorID})
		require.NoError(t, err)

		b.Year = 1978
		updated, err := repo.Update(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, 1978, updated.Year)

		b.AuthorID = 99
		_, err = repo.Update(ctx, b)
		assert.ErrorIs(t, err, model.ErrUnknownAuthor)

		require.NoError(t, repo.Delete(ctx, b.ID))
		assert.ErrorIs(t, repo.Delete(ctx, b.ID), model.ErrBookNotFound)
		_, err = repo.FindByID(ctx, b.ID)
		assert.ErrorIs(t, err, model.ErrBookNotFound)
	})
}
