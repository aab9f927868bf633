package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"mader-backend/internal/domains/book/model"
	"mader-backend/pkg/database"
)

const bookColumns = `id, year, title, author_id`

type postgresRepository struct {
	db database.DBTX
}

// NewPostgresRepository creates a new book repository instance
func NewPostgresRepository(db database.DBTX) RepositoryInterface {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) List(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + bookColumns + ` FROM books WHERE 1=1`)

	args := []interface{}{}
	argPos := 1

	if filter.Year != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND year = $%d", argPos))
		args = append(args, *filter.Year)
		argPos++
	}

	if filter.Title != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND title ILIKE $%d", argPos))
		args = append(args, filter.Title)
		argPos++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	b, err := scanBook(r.db.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) FindByTitle(ctx context.Context, title string) (*model.Book, error) {
	b, err := scanBook(r.db.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE title = $1`, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by title: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
		INSERT INTO books (year, title, author_id)
		VALUES ($1, $2, $3)
		RETURNING ` + bookColumns

	created, err := scanBook(r.db.QueryRow(ctx, query, b.Year, b.Title, b.AuthorID))
	if err != nil {
		if mapped := constraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
		UPDATE books
		SET year = $1, title = $2, author_id = $3
		WHERE id = $4
		RETURNING ` + bookColumns

	updated, err := scanBook(r.db.QueryRow(ctx, query, b.Year, b.Title, b.AuthorID, b.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		if mapped := constraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	if err := row.Scan(&b.ID, &b.Year, &b.Title, &b.AuthorID); err != nil {
		return nil, err
	}
	return &b, nil
}

func constraintError(err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return model.ErrDuplicateTitle.Wrap(err)
	case database.IsForeignKeyViolation(err):
		return model.ErrUnknownAuthor.Wrap(err)
	}
	return nil
}
