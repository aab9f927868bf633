package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"mader-backend/internal/domains/user/model"
	"mader-backend/internal/domains/user/repository"
	"mader-backend/internal/shared/apperror"
	"mader-backend/internal/shared/utils"
	"mader-backend/pkg/logger"
)

const tokenType = "Bearer"

type userService struct {
	repo       repository.RepositoryInterface
	tokens     TokenManager
	attempts   AttemptTracker
	bcryptCost int
}

// Option customizes the user service
type Option func(*userService)

// WithAttemptTracker enables login throttling
func WithAttemptTracker(t AttemptTracker) Option {
	return func(s *userService) {
		if t != nil {
			s.attempts = t
		}
	}
}

// WithBcryptCost overrides bcrypt.DefaultCost
func WithBcryptCost(cost int) Option {
	return func(s *userService) {
		s.bcryptCost = cost
	}
}

// NewUserService creates the account service
func NewUserService(repo repository.RepositoryInterface, tokens TokenManager, opts ...Option) ServiceInterface {
	s := &userService{
		repo:       repo,
		tokens:     tokens,
		attempts:   noopTracker{},
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ========================================
// ACCOUNTS
// ========================================

func (s *userService) Create(ctx context.Context, req model.CreateUserRequest) (*model.UserResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := req.Validate(); err != nil {
		return nil, apperror.Invalid(err.Error())
	}

	if err := s.ensureUsernameFree(ctx, req.Username, 0); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, req.Email, 0); err != nil {
		return nil, err
	}

	hash, err := s.hash(req.Senha)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &model.User{
		Email:    req.Email,
		Username: req.Username,
		Password: hash,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("user created", map[string]interface{}{"user_id": created.ID})
	return created.ToResponse(), nil
}

func (s *userService) Update(ctx context.Context, caller *model.User, id int64, req model.UpdateUserRequest) (*model.UserResponse, error) {
	if caller == nil || caller.ID != id {
		return nil, model.ErrNotEnoughPermissions
	}

	req.Username = utils.TrimPtr(req.Username)
	req.Email = utils.TrimPtr(req.Email)

	if err := req.Validate(); err != nil {
		return nil, apperror.Invalid(err.Error())
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := *req.Username
		if username != current.Username {
			if err := s.ensureUsernameFree(ctx, username, id); err != nil {
				return nil, err
			}
			current.Username = username
		}
	}

	if req.Email != nil {
		email := *req.Email
		if email != current.Email {
			if err := s.ensureEmailFree(ctx, email, id); err != nil {
				return nil, err
			}
			current.Email = email
		}
	}

	if req.Senha != nil {
		hash, err := s.hash(*req.Senha)
		if err != nil {
			return nil, err
		}
		current.Password = hash
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

func (s *userService) Delete(ctx context.Context, caller *model.User, id int64) error {
	if caller == nil || caller.ID != id {
		return model.ErrNotEnoughPermissions
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("user deleted", map[string]interface{}{"user_id": id})
	return nil
}

// ========================================
// AUTHENTICATION
// ========================================

func (s *userService) Login(ctx context.Context, req model.TokenRequest) (*model.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Invalid(err.Error())
	}

	login := strings.TrimSpace(req.Username)

	blocked, err := s.attempts.Blocked(ctx, login)
	if err != nil {
		logger.Error("login throttle unavailable", err)
	}
	if blocked {
		return nil, model.ErrTooManyAttempts
	}

	u, err := s.repo.FindByEmail(ctx, login)
	if err != nil {
		if !errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		s.recordFailure(ctx, login)
		return nil, model.ErrIncorrectCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		s.recordFailure(ctx, login)
		return nil, model.ErrIncorrectCredentials
	}

	if err := s.attempts.Reset(ctx, login); err != nil {
		logger.Error("reset login attempts", err)
	}

	return s.issue(u.Email)
}

func (s *userService) RefreshToken(ctx context.Context, u *model.User) (*model.TokenResponse, error) {
	if u == nil {
		return nil, model.ErrCouldNotValidate
	}
	return s.issue(u.Email)
}

func (s *userService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	subject, err := s.tokens.Validate(token)
	if err != nil {
		return nil, model.ErrCouldNotValidate.Wrap(err)
	}

	u, err := s.repo.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrCouldNotValidate.Wrap(err)
		}
		return nil, err
	}
	return u, nil
}

// ========================================
// HELPERS
// ========================================

func (s *userService) issue(subject string) (*model.TokenResponse, error) {
	token, err := s.tokens.Issue(subject)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	return &model.TokenResponse{AccessToken: token, TokenType: tokenType}, nil
}

func (s *userService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *userService) recordFailure(ctx context.Context, login string) {
	if err := s.attempts.RecordFailure(ctx, login); err != nil {
		logger.Error("record failed login", err)
	}
}

// ensureUsernameFree fails with ErrUsernameExists when another account
// (any id but self) already holds username
func (s *userService) ensureUsernameFree(ctx context.Context, username string, self int64) error {
	existing, err := s.repo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check username: %w", err)
	case existing.ID != self:
		return model.ErrUsernameExists
	}
	return nil
}

func (s *userService) ensureEmailFree(ctx context.Context, email string, self int64) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check email: %w", err)
	case existing.ID != self:
		return model.ErrEmailExists
	}
	return nil
}

type noopTracker struct{}

func (noopTracker) Blocked(context.Context, string) (bool, error) { return false, nil }
func (noopTracker) RecordFailure(context.Context, string) error   { return nil }
func (noopTracker) Reset(context.Context, string) error           { return nil }
