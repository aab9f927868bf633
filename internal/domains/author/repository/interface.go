package repository

import (
	"context"

	"mader-backend/internal/domains/author/model"
)

// RepositoryInterface defines data access for authors
type RepositoryInterface interface {
	// List returns one page ordered by id, filtered by name substring
	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error)

	// FindByID returns ErrAuthorNotFound when absent
	FindByID(ctx context.Context, id int64) (*model.Author, error)

	// FindByName matches the stored (normalized) name exactly
	FindByName(ctx context.Context, name string) (*model.Author, error)

	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// Update returns ErrAuthorNotFound when a.ID is absent
	Update(ctx context.Context, a *model.Author) (*model.Author, error)

	// Delete removes the author and its books in one transaction
	Delete(ctx context.Context, id int64) error
}
