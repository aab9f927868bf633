package repository

import (
	"context"

	"mader-backend/internal/domains/book/model"
)

// RepositoryInterface defines data access for books
type RepositoryInterface interface {
	// List returns one page ordered by id
	List(ctx context.Context, filter model.BookFilter) ([]model.Book, error)

	// FindByID returns ErrBookNotFound when absent
	FindByID(ctx context.Context, id int64) (*model.Book, error)

	// FindByTitle matches the stored (normalized) title exactly
	FindByTitle(ctx context.Context, title string) (*model.Book, error)

	// Create returns ErrUnknownAuthor on a dangling author_id
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	Update(ctx context.Context, b *model.Book) (*model.Book, error)

	Delete(ctx context.Context, id int64) error
}
