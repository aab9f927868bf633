package service

import (
	"context"

	"mader-backend/internal/domains/user/model"
)

// ServiceInterface defines account and authentication use cases
type ServiceInterface interface {
	// Create registers a new account
	Create(ctx context.Context, req model.CreateUserRequest) (*model.UserResponse, error)

	// Update applies the supplied fields to the caller's own account
	Update(ctx context.Context, caller *model.User, id int64, req model.UpdateUserRequest) (*model.UserResponse, error)

	// Delete removes the caller's own account
	Delete(ctx context.Context, caller *model.User, id int64) error

	// Login exchanges email and password for an access token
	Login(ctx context.Context, req model.TokenRequest) (*model.TokenResponse, error)

	// RefreshToken issues a fresh token for an authenticated user
	RefreshToken(ctx context.Context, u *model.User) (*model.TokenResponse, error)

	// Authenticate resolves a bearer token to its user
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// TokenManager signs and verifies access tokens. *jwt.Manager satisfies it.
type TokenManager interface {
	Issue(subject string) (string, error)
	Validate(token string) (string, error)
}

// AttemptTracker throttles repeated failed logins.
// *cache.LoginAttemptTracker satisfies it.
type AttemptTracker interface {
	Blocked(ctx context.Context, login string) (bool, error)
	RecordFailure(ctx context.Context, login string) error
	Reset(ctx context.Context, login string) error
}
