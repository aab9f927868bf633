package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const MinPasswordLength = 3

// ========================================
// ACCOUNT DTOs
// ========================================

// CreateUserRequest - POST /conta/
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Senha    string `json:"senha"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
			validation.Length(3, 255),
		),
		validation.Field(&r.Senha,
			validation.Required.Error("senha is required"),
			validation.Length(MinPasswordLength, 128).Error("senha must have at least 3 characters"),
		),
	)
}

// UpdateUserRequest - PUT /conta/:id
// Every field is optional, only supplied ones are applied
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Senha    *string `json:"senha,omitempty"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.Senha,
			validation.NilOrNotEmpty,
			validation.Length(MinPasswordLength, 128).Error("senha must have at least 3 characters"),
		),
	)
}

// UserResponse never carries the password
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ========================================
// AUTH DTOs
// ========================================

// TokenRequest - POST /auth/token, sent as form data.
// Username holds the account email.
type TokenRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (r TokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
