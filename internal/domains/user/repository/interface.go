package repository

import (
	"context"

	"mader-backend/internal/domains/user/model"
)

// RepositoryInterface is the data access contract for accounts
type RepositoryInterface interface {
	// Create inserts a user and returns it with its generated id.
	// Errors: ErrUsernameExists, ErrEmailExists on unique violations
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns ErrUserNotFound when absent
	FindByID(ctx context.Context, id int64) (*model.User, error)

	// FindByEmail returns ErrUserNotFound when absent
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByUsername returns ErrUserNotFound when absent
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// Update overwrites username, email and password of u.ID
	Update(ctx context.Context, u *model.User) (*model.User, error)

	// Delete removes the user, ErrUserNotFound when absent
	Delete(ctx context.Context, id int64) error
}
