package model

import "mader-backend/internal/shared/apperror"

var (
	ErrAuthorNotFound = apperror.NotFound("Author not found")
	ErrAuthorNotExist = apperror.NotFound("Author not exist")

	// ErrDuplicateName is returned by the repository on a unique violation.
	// Services report it with ErrNameTaken so the message carries the name.
	ErrDuplicateName = apperror.Conflict("author name already exist")
)

// ErrNameTaken is the conflict reported to clients for a taken name
func ErrNameTaken(name string) error {
	return apperror.Conflict("%s already exist", name)
}
