package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	authormodel "mader-backend/internal/domains/author/model"
	"mader-backend/internal/domains/book/model"
	"mader-backend/internal/domains/book/repository"
	"mader-backend/internal/shared/apperror"
	"mader-backend/internal/shared/utils"
)

type bookService struct {
	repo    repository.RepositoryInterface
	authors AuthorLookup
}

// NewBookService creates a new book service instance
func NewBookService(repo repository.RepositoryInterface, authors AuthorLookup) ServiceInterface {
	return &bookService{
		repo:    repo,
		authors: authors,
	}
}

func (s *bookService) List(ctx context.Context, query model.BookQuery) (*model.BookListResponse, error) {
	filter := model.BookFilter{
		Year:   query.Year,
		Limit:  utils.PageSize,
		Offset: utils.PageOffset(query.Page),
	}
	if utils.NormalizeName(query.Title) != "" {
		filter.Title = utils.LikePattern(query.Title)
	}

	books, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &model.BookListResponse{Livros: make([]model.BookResponse, 0, len(books))}
	for i := range books {
		resp.Livros = append(resp.Livros, books[i].ToResponse())
	}
	return resp, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.BookResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := b.ToResponse()
	return &resp, nil
}

func (s *bookService) Create(ctx context.Context, req model.BookRequest) (*model.BookResponse, error) {
	submitted := strings.TrimSpace(req.Titulo)
	req.Titulo = submitted
	if err := req.Validate(); err != nil {
		return nil, apperror.Invalid(err.Error())
	}

	if err := s.ensureAuthorExists(ctx, req.RomancistaID); err != nil {
		return nil, err
	}

	title := utils.NormalizeName(submitted)
	if err := s.ensureTitleFree(ctx, title, submitted, 0); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &model.Book{
		Year:     req.Ano,
		Title:    title,
		AuthorID: req.RomancistaID,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateTitle) {
			return nil, model.ErrTitleTaken(submitted)
		}
		return nil, err
	}

	resp := created.ToResponse()
	return &resp, nil
}

func (s *bookService) Update(ctx context.Context, id int64, req model.BookUpdateRequest) (*model.BookResponse, error) {
	req.Titulo = utils.TrimPtr(req.Titulo)
	if err := req.Validate(); err != nil {
		return nil, apperror.Invalid(err.Error())
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			return nil, model.ErrBookNotExist
		}
		return nil, err
	}

	if req.Ano != nil {
		current.Year = *req.Ano
	}

	if req.RomancistaID != nil && *req.RomancistaID != current.AuthorID {
		if err := s.ensureAuthorExists(ctx, *req.RomancistaID); err != nil {
			return nil, err
		}
		current.AuthorID = *req.RomancistaID
	}

	if req.Titulo != nil {
		title := utils.NormalizeName(*req.Titulo)
		if title != current.Title {
			if err := s.ensureTitleFree(ctx, title, *req.Titulo, id); err != nil {
				return nil, err
			}
			current.Title = title
		}
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrBookNotFound):
			return nil, model.ErrBookNotExist
		case errors.Is(err, model.ErrDuplicateTitle):
			return nil, model.ErrTitleTaken(*req.Titulo)
		}
		return nil, err
	}

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			return model.ErrBookNotExist
		}
		return err
	}
	return nil
}

func (s *bookService) ensureAuthorExists(ctx context.Context, authorID int64) error {
	if _, err := s.authors.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, authormodel.ErrAuthorNotFound) {
			return model.ErrUnknownAuthor
		}
		return fmt.Errorf("check author: %w", err)
	}
	return nil
}

// ensureTitleFree rejects title when a book other than self holds it.
// The conflict message echoes what the client submitted.
func (s *bookService) ensureTitleFree(ctx context.Context, title, submitted string, self int64) error {
	existing, err := s.repo.FindByTitle(ctx, title)
	switch {
	case errors.Is(err, model.ErrBookNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check book title: %w", err)
	case existing.ID != self:
		return model.ErrTitleTaken(submitted)
	}
	return nil
}
