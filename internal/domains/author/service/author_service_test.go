package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mader-backend/internal/domains/author/model"
	"mader-backend/internal/shared/apperror"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*model.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *MockRepository) FindByName(ctx context.Context, name string) (*model.Author, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func strPtr(s string) *string { return &s }

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewAuthorService(repo)

	repo.On("List", ctx, model.AuthorFilter{Name: "%clar%", Limit: 20, Offset: 0}).
		Return([]model.Author{{ID: 1, Name: "clarice"}}, nil)
	repo.On("List", ctx, model.AuthorFilter{Limit: 20, Offset: 20}).
		Return([]model.Author{}, nil)

	resp, err := svc.List(ctx, " Clar ", 1)
	require.NoError(t, err)
	assert.Equal(t, []model.AuthorResponse{{ID: 1, Name: "clarice"}}, resp.Romancistas)

	// past the last page is an empty list, not an error
	resp, err = svc.List(ctx, "", 2)
	require.NoError(t, err)
	assert.NotNil(t, resp.Romancistas)
	assert.Empty(t, resp.Romancistas)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewAuthorService(repo)

	repo.On("FindByID", ctx, int64(1)).Return(&model.Author{ID: 1, Name: "clarice"}, nil)
	repo.On("FindByID", ctx, int64(2)).Return(nil, model.ErrAuthorNotFound)

	resp, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "clarice", resp.Name)

	_, err = svc.GetByID(ctx, 2)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestCreate_NormalizesName(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewAuthorService(repo)

	repo.On("FindByName", ctx, "clarice").Return(nil, model.ErrAuthorNotFound)
	repo.On("Create", ctx, &model.Author{Name: "clarice"}).Return(&model.Author{ID: 1, Name: "clarice"}, nil)

	resp, err := svc.Create(ctx, model.AuthorRequest{Nome: "  Clarice "})
	require.NoError(t, err)
	assert.Equal(t, &model.AuthorResponse{ID: 1, Name: "clarice"}, resp)
}

func TestCreate_ConflictEchoesSubmittedName(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewAuthorService(repo)

	repo.On("FindByName", ctx, "clarice").Return(&model.Author{ID: 1, Name: "clarice"}, nil)

	_, err := svc.Create(ctx, model.AuthorRequest{Nome: "Clarice"})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, "Clarice already exist", apperror.PublicMessage(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_RaceOnInsert(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewAuthorService(repo)

	repo.On("FindByName", ctx, "clarice").Return(nil, model.ErrAuthorNotFound)
	repo.On("Create", ctx, mock.Anything).Return(nil, model.ErrDuplicateName)

	_, err := svc.Create(ctx, model.AuthorRequest{Nome: "Clarice"})
	assert.Equal(t, "Clarice already exist", apperror.PublicMessage(err))
}

func TestCreate_Invalid(t *testing.T) {
	_, err := NewAuthorService(new(MockRepository)).Create(context.Background(), model.AuthorRequest{Nome: "   "})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalid))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("renames", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByID", ctx, int64(1)).Return(&model.Author{ID: 1, Name: "clarice"}, nil)
		repo.On("FindByName", ctx, "clarice lispector").Return(nil, model.ErrAuthorNotFound)
		repo.On("Update", ctx, &model.Author{ID: 1, Name: "clarice lispector"}).
			Return(&model.Author{ID: 1, Name: "clarice lispector"}, nil)

		resp, err := NewAuthorService(repo).Update(ctx, 1, model.AuthorUpdateRequest{Nome: strPtr("Clarice Lispector")})
		require.NoError(t, err)
		assert.Equal(t, "clarice lispector", resp.Name)
	})

	t.Run("missing author", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByID", ctx, int64(9)).Return(nil, model.ErrAuthorNotFound)

		_, err := NewAuthorService(repo).Update(ctx, 9, model.AuthorUpdateRequest{Nome: strPtr("x")})
		assert.ErrorIs(t, err, model.ErrAuthorNotExist)
	})

	t.Run("name taken by another author", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByID", ctx, int64(1)).Return(&model.Author{ID: 1, Name: "clarice"}, nil)
		repo.On("FindByName", ctx, "machado").Return(&model.Author{ID: 2, Name: "machado"}, nil)

		_, err := NewAuthorService(repo).Update(ctx, 1, model.AuthorUpdateRequest{Nome: strPtr("Machado")})
		assert.Equal(t, "Machado already exist", apperror.PublicMessage(err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("same name is not a conflict", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByID", ctx, int64(1)).Return(&model.Author{ID: 1, Name: "clarice"}, nil)
		repo.On("Update", ctx, &model.Author{ID: 1, Name: "clarice"}).Return(&model.Author{ID: 1, Name: "clarice"}, nil)

		_, err := NewAuthorService(repo).Update(ctx, 1, model.AuthorUpdateRequest{Nome: strPtr("CLARICE")})
		require.NoError(t, err)
		repo.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewAuthorService(repo)

	repo.On("Delete", ctx, int64(1)).Return(nil)
	repo.On("Delete", ctx, int64(2)).Return(model.ErrAuthorNotFound)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 2), model.ErrAuthorNotExist)
}
