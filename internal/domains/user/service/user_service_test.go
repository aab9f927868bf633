package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mader-backend/internal/domains/user/model"
	"mader-backend/internal/shared/apperror"
	"mader-backend/pkg/jwt"
)

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newTestService(repo *MockRepository, tokens *MockTokens, opts ...Option) ServiceInterface {
	opts = append([]Option{WithBcryptCost(bcrypt.MinCost)}, opts...)
	return NewUserService(repo, tokens, opts...)
}

func ptr(s string) *string { return &s }

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockTokens))

	repo.On("FindByUsername", ctx, "alice").Return(nil, model.ErrUserNotFound)
	repo.On("FindByEmail", ctx, "alice@mader.com").Return(nil, model.ErrUserNotFound)
	repo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.Username == "alice" &&
			u.Email == "alice@mader.com" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")) == nil
	})).Return(&model.User{ID: 1, Username: "alice", Email: "alice@mader.com", Password: "hash"}, nil)

	resp, err := svc.Create(ctx, model.CreateUserRequest{Username: " alice ", Email: "alice@mader.com", Senha: "secret"})

	require.NoError(t, err)
	assert.Equal(t, &model.UserResponse{ID: 1, Username: "alice", Email: "alice@mader.com"}, resp)
	repo.AssertExpectations(t)
}

func TestCreate_Conflicts(t *testing.T) {
	ctx := context.Background()
	req := model.CreateUserRequest{Username: "alice", Email: "alice@mader.com", Senha: "secret"}

	t.Run("username taken", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByUsername", ctx, "alice").Return(&model.User{ID: 9}, nil)

		_, err := newTestService(repo, new(MockTokens)).Create(ctx, req)
		assert.ErrorIs(t, err, model.ErrUsernameExists)
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByUsername", ctx, "alice").Return(nil, model.ErrUserNotFound)
		repo.On("FindByEmail", ctx, "alice@mader.com").Return(&model.User{ID: 9}, nil)

		_, err := newTestService(repo, new(MockTokens)).Create(ctx, req)
		assert.ErrorIs(t, err, model.ErrEmailExists)
	})

	t.Run("race caught by constraint", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByUsername", ctx, "alice").Return(nil, model.ErrUserNotFound)
		repo.On("FindByEmail", ctx, "alice@mader.com").Return(nil, model.ErrUserNotFound)
		repo.On("Create", ctx, mock.Anything).Return(nil, model.ErrEmailExists.Wrap(errors.New("23505")))

		_, err := newTestService(repo, new(MockTokens)).Create(ctx, req)
		assert.ErrorIs(t, err, model.ErrEmailExists)
	})
}

func TestCreate_Invalid(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockTokens))

	_, err := svc.Create(context.Background(), model.CreateUserRequest{Username: "alice", Email: "not-an-email", Senha: "secret"})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalid))

	_, err = svc.Create(context.Background(), model.CreateUserRequest{Username: "alice", Email: "a@b.com", Senha: "no"})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalid))

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_ForbiddenBeforeLookup(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockTokens))

	_, err := svc.Update(context.Background(), &model.User{ID: 1}, 2, model.UpdateUserRequest{Username: ptr("bob")})

	assert.ErrorIs(t, err, model.ErrNotEnoughPermissions)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdate_PartialFields(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockTokens))
	caller := &model.User{ID: 1}

	repo.On("FindByID", ctx, int64(1)).
		Return(&model.User{ID: 1, Username: "alice", Email: "alice@mader.com", Password: "old"}, nil)
	repo.On("FindByUsername", ctx, "alicia").Return(nil, model.ErrUserNotFound)
	repo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.Username == "alicia" && u.Email == "alice@mader.com" && u.Password == "old"
	})).Return(&model.User{ID: 1, Username: "alicia", Email: "alice@mader.com"}, nil)

	resp, err := svc.Update(ctx, caller, 1, model.UpdateUserRequest{Username: ptr(" alicia ")})

	require.NoError(t, err)
	assert.Equal(t, "alicia", resp.Username)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestUpdate_Conflict(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockTokens))

	repo.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1, Username: "alice", Email: "alice@mader.com"}, nil)
	repo.On("FindByEmail", ctx, "bob@mader.com").Return(&model.User{ID: 2}, nil)

	_, err := svc.Update(ctx, &model.User{ID: 1}, 1, model.UpdateUserRequest{Email: ptr("bob@mader.com")})
	assert.ErrorIs(t, err, model.ErrEmailExists)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("FindByID", ctx, int64(1)).Return(nil, model.ErrUserNotFound)

	_, err := newTestService(repo, new(MockTokens)).Update(ctx, &model.User{ID: 1}, 1, model.UpdateUserRequest{})
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockTokens))

	err := svc.Delete(ctx, &model.User{ID: 1}, 2)
	assert.ErrorIs(t, err, model.ErrNotEnoughPermissions)

	repo.On("Delete", ctx, int64(1)).Return(nil)
	require.NoError(t, svc.Delete(ctx, &model.User{ID: 1}, 1))
	repo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	tokens := new(MockTokens)
	tracker := new(MockTracker)
	svc := newTestService(repo, tokens, WithAttemptTracker(tracker))

	tracker.On("Blocked", ctx, "alice@mader.com").Return(false, nil)
	tracker.On("Reset", ctx, "alice@mader.com").Return(nil)
	repo.On("FindByEmail", ctx, "alice@mader.com").
		Return(&model.User{ID: 1, Email: "alice@mader.com", Password: hashed(t, "secret")}, nil)
	tokens.On("Issue", "alice@mader.com").Return("signed", nil)

	resp, err := svc.Login(ctx, model.TokenRequest{Username: "alice@mader.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, &model.TokenResponse{AccessToken: "signed", TokenType: "Bearer"}, resp)
	tracker.AssertExpectations(t)
}

func TestLogin_WrongPasswordRecordsFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	tracker := new(MockTracker)
	svc := newTestService(repo, new(MockTokens), WithAttemptTracker(tracker))

	tracker.On("Blocked", ctx, "alice@mader.com").Return(false, nil)
	tracker.On("RecordFailure", ctx, "alice@mader.com").Return(nil)
	repo.On("FindByEmail", ctx, "alice@mader.com").
		Return(&model.User{ID: 1, Email: "alice@mader.com", Password: hashed(t, "secret")}, nil)

	_, err := svc.Login(ctx, model.TokenRequest{Username: "alice@mader.com", Password: "wrong"})

	assert.ErrorIs(t, err, model.ErrIncorrectCredentials)
	tracker.AssertExpectations(t)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("FindByEmail", ctx, "ghost@mader.com").Return(nil, model.ErrUserNotFound)

	_, err := newTestService(repo, new(MockTokens)).Login(ctx, model.TokenRequest{Username: "ghost@mader.com", Password: "x"})
	assert.ErrorIs(t, err, model.ErrIncorrectCredentials)
}

func TestLogin_Blocked(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	tracker := new(MockTracker)
	tracker.On("Blocked", ctx, "alice@mader.com").Return(true, nil)

	_, err := newTestService(repo, new(MockTokens), WithAttemptTracker(tracker)).
		Login(ctx, model.TokenRequest{Username: "alice@mader.com", Password: "secret"})

	assert.ErrorIs(t, err, model.ErrTooManyAttempts)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestLogin_TrackerFailureDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	tokens := new(MockTokens)
	tracker := new(MockTracker)
	svc := newTestService(repo, tokens, WithAttemptTracker(tracker))

	down := errors.New("connection refused")
	tracker.On("Blocked", ctx, "alice@mader.com").Return(false, down)
	tracker.On("Reset", ctx, "alice@mader.com").Return(down)
	repo.On("FindByEmail", ctx, "alice@mader.com").
		Return(&model.User{ID: 1, Email: "alice@mader.com", Password: hashed(t, "secret")}, nil)
	tokens.On("Issue", "alice@mader.com").Return("signed", nil)

	resp, err := svc.Login(ctx, model.TokenRequest{Username: "alice@mader.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "signed", resp.AccessToken)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	tokens := new(MockTokens)
	svc := newTestService(repo, tokens)

	tokens.On("Validate", "good").Return("alice@mader.com", nil)
	tokens.On("Validate", "gone").Return("ghost@mader.com", nil)
	tokens.On("Validate", "bad").Return("", jwt.ErrTokenExpired)
	repo.On("FindByEmail", ctx, "alice@mader.com").Return(&model.User{ID: 1, Email: "alice@mader.com"}, nil)
	repo.On("FindByEmail", ctx, "ghost@mader.com").Return(nil, model.ErrUserNotFound)

	u, err := svc.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = svc.Authenticate(ctx, "bad")
	assert.ErrorIs(t, err, model.ErrCouldNotValidate)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = svc.Authenticate(ctx, "gone")
	assert.ErrorIs(t, err, model.ErrCouldNotValidate)
}

func TestRefreshToken(t *testing.T) {
	tokens := new(MockTokens)
	svc := newTestService(new(MockRepository), tokens)
	tokens.On("Issue", "alice@mader.com").Return("fresh", nil)

	resp, err := svc.RefreshToken(context.Background(), &model.User{Email: "alice@mader.com"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
}

func TestService_WithRealTokens(t *testing.T) {
	ctx := context.Background()
	manager, err := jwt.NewManager(jwt.Config{Secret: "k", Algorithm: "HS256", TTL: time.Minute})
	require.NoError(t, err)

	repo := new(MockRepository)
	svc := NewUserService(repo, manager, WithBcryptCost(bcrypt.MinCost))
	repo.On("FindByEmail", ctx, "alice@mader.com").
		Return(&model.User{ID: 1, Email: "alice@mader.com", Password: hashed(t, "secret")}, nil)

	tok, err := svc.Login(ctx, model.TokenRequest{Username: "alice@mader.com", Password: "secret"})
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@mader.com", u.Email)
}
