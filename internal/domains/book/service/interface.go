package service

import (
	"context"

	authormodel "mader-backend/internal/domains/author/model"
	"mader-backend/internal/domains/book/model"
)

// ServiceInterface defines business operations on books
type ServiceInterface interface {
	List(ctx context.Context, query model.BookQuery) (*model.BookListResponse, error)
	GetByID(ctx context.Context, id int64) (*model.BookResponse, error)
	Create(ctx context.Context, req model.BookRequest) (*model.BookResponse, error)
	Update(ctx context.Context, id int64, req model.BookUpdateRequest) (*model.BookResponse, error)
	Delete(ctx context.Context, id int64) error
}

// AuthorLookup checks that a book's author exists.
// The author repository satisfies it.
type AuthorLookup interface {
	FindByID(ctx context.Context, id int64) (*authormodel.Author, error)
}
