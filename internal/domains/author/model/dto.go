package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AuthorRequest - POST /romancista/
type AuthorRequest struct {
	Nome string `json:"nome"`
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome,
			validation.Required.Error("nome is required"),
			validation.Length(1, 255),
		),
	)
}

// AuthorUpdateRequest - PATCH /romancista/:id
type AuthorUpdateRequest struct {
	Nome *string `json:"nome,omitempty"`
}

func (r AuthorUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, validation.NilOrNotEmpty, validation.Length(1, 255)),
	)
}

// AuthorFilter - GET /romancista/?nome=&page=
type AuthorFilter struct {
	Name   string
	Limit  int
	Offset int
}

type AuthorListResponse struct {
	Romancistas []AuthorResponse `json:"romancistas"`
}
