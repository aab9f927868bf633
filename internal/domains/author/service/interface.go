package service

import (
	"context"

	"mader-backend/internal/domains/author/model"
)

// ServiceInterface defines business operations on authors
type ServiceInterface interface {
	List(ctx context.Context, name string, page int) (*model.AuthorListResponse, error)
	GetByID(ctx context.Context, id int64) (*model.AuthorResponse, error)
	Create(ctx context.Context, req model.AuthorRequest) (*model.AuthorResponse, error)
	Update(ctx context.Context, id int64, req model.AuthorUpdateRequest) (*model.AuthorResponse, error)
	Delete(ctx context.Context, id int64) error
}
