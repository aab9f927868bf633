package model

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// books.year is an INTEGER column
const (
	MinYear = math.MinInt32
	MaxYear = math.MaxInt32
)

// ========================================
// REQUEST DTOs
// ========================================

// BookRequest - POST /livro/
type BookRequest struct {
	Ano          int    `json:"ano"`
	Titulo       string `json:"titulo"`
	RomancistaID int64  `json:"romancista_id"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Ano,
			validation.Required.Error("ano is required"),
			validation.Min(MinYear).Error("ano is out of range"),
			validation.Max(MaxYear).Error("ano is out of range"),
		),
		validation.Field(&r.Titulo,
			validation.Required.Error("titulo is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.RomancistaID,
			validation.Required.Error("romancista_id is required"),
			validation.Min(int64(1)),
		),
	)
}

// BookUpdateRequest - PATCH /livro/:id
type BookUpdateRequest struct {
	Ano          *int    `json:"ano,omitempty"`
	Titulo       *string `json:"titulo,omitempty"`
	RomancistaID *int64  `json:"romancista_id,omitempty"`
}

func (r BookUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Ano,
			validation.NilOrNotEmpty,
			validation.Min(MinYear).Error("ano is out of range"),
			validation.Max(MaxYear).Error("ano is out of range"),
		),
		validation.Field(&r.Titulo, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.RomancistaID, validation.NilOrNotEmpty, validation.Min(int64(1))),
	)
}

// BookQuery - GET /livro/?ano=&titulo=&page=
type BookQuery struct {
	Year  *int
	Title string
	Page  int
}

// BookFilter is the repository form of BookQuery
type BookFilter struct {
	Year   *int
	Title  string // ILIKE pattern, empty for no filter
	Limit  int
	Offset int
}

// ========================================
// RESPONSE DTOs
// ========================================

type BookListResponse struct {
	Livros []BookResponse `json:"livros"`
}
