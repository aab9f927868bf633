package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"mader-backend/internal/domains/author/model"
	"mader-backend/pkg/database"
	"mader-backend/pkg/logger"
)

type postgresRepository struct {
	pool database.Pool
}

// NewPostgresRepository creates a new author repository instance
func NewPostgresRepository(pool database.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, name
        FROM authors
        WHERE 1=1
    `)

	args := []interface{}{}
	argPos := 1

	if filter.Name != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argPos))
		args = append(args, filter.Name)
		argPos++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Author, error) {
	var a model.Author
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM authors WHERE id = $1`, id).Scan(&a.ID, &a.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) (*model.Author, error) {
	var a model.Author
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM authors WHERE name = $1`, name).Scan(&a.ID, &a.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by name: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	var created model.Author
	err := r.pool.QueryRow(ctx,
		`INSERT INTO authors (name) VALUES ($1) RETURNING id, name`,
		a.Name,
	).Scan(&created.ID, &created.Name)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, model.ErrDuplicateName.Wrap(err)
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	var updated model.Author
	err := r.pool.QueryRow(ctx,
		`UPDATE authors SET name = $1 WHERE id = $2 RETURNING id, name`,
		a.Name, a.ID,
	).Scan(&updated.ID, &updated.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		if database.IsUniqueViolation(err) {
			return nil, model.ErrDuplicateName.Wrap(err)
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	books, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		booksTag, err := tx.Exec(ctx, `DELETE FROM books WHERE author_id = $1`, id)
		if err != nil {
			return 0, fmt.Errorf("failed to delete author books: %w", err)
		}

		authorTag, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
		if err != nil {
			return 0, fmt.Errorf("failed to delete author: %w", err)
		}
		if authorTag.RowsAffected() == 0 {
			return 0, model.ErrAuthorNotFound
		}

		return booksTag.RowsAffected(), nil
	})
	if err != nil {
		return err
	}

	logger.Info("author deleted", map[string]interface{}{
		"author_id":     id,
		"books_deleted": books,
	})
	return nil
}
