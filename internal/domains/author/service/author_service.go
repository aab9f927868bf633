package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mader-backend/internal/domains/author/model"
	"mader-backend/internal/domains/author/repository"
	"mader-backend/internal/shared/apperror"
	"mader-backend/internal/shared/utils"
)

type authorService struct {
	repo repository.RepositoryInterface
}

// NewAuthorService creates a new author service instance
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context, name string, page int) (*model.AuthorListResponse, error) {
	filter := model.AuthorFilter{
		Limit:  utils.PageSize,
		Offset: utils.PageOffset(page),
	}
	if utils.NormalizeName(name) != "" {
		filter.Name = utils.LikePattern(name)
	}

	authors, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &model.AuthorListResponse{Romancistas: make([]model.AuthorResponse, 0, len(authors))}
	for i := range authors {
		resp.Romancistas = append(resp.Romancistas, authors[i].ToResponse())
	}
	return resp, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.AuthorResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := a.ToResponse()
	return &resp, nil
}

func (s *authorService) Create(ctx context.Context, req model.AuthorRequest) (*model.AuthorResponse, error) {
	submitted := strings.TrimSpace(req.Nome)
	req.Nome = submitted
	if err := req.Validate(); err != nil {
		return nil, apperror.Invalid(err.Error())
	}

	name := utils.NormalizeName(submitted)
	if err := s.ensureNameFree(ctx, name, submitted, 0); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &model.Author{Name: name})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateName) {
			return nil, model.ErrNameTaken(submitted)
		}
		return nil, err
	}

	resp := created.ToResponse()
	return &resp, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req model.AuthorUpdateRequest) (*model.AuthorResponse, error) {
	req.Nome = utils.TrimPtr(req.Nome)
	if err := req.Validate(); err != nil {
		return nil, apperror.Invalid(err.Error())
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			return nil, model.ErrAuthorNotExist
		}
		return nil, err
	}

	if req.Nome != nil {
		name := utils.NormalizeName(*req.Nome)
		if name != current.Name {
			if err := s.ensureNameFree(ctx, name, *req.Nome, id); err != nil {
				return nil, err
			}
			current.Name = name
		}
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAuthorNotFound):
			return nil, model.ErrAuthorNotExist
		case errors.Is(err, model.ErrDuplicateName):
			return nil, model.ErrNameTaken(*req.Nome)
		}
		return nil, err
	}

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			return model.ErrAuthorNotExist
		}
		return err
	}
	return nil
}

// ensureNameFree rejects name when an author other than self holds it.
// The conflict message echoes what the client submitted.
func (s *authorService) ensureNameFree(ctx context.Context, name, submitted string, self int64) error {
	existing, err := s.repo.FindByName(ctx, name)
	switch {
	case errors.Is(err, model.ErrAuthorNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check author name: %w", err)
	case existing.ID != self:
		return model.ErrNameTaken(submitted)
	}
	return nil
}
