package model

import "mader-backend/internal/shared/apperror"

var (
	ErrBookNotFound = apperror.NotFound("Book not found")
	ErrBookNotExist = apperror.NotFound("Book not exist")

	// ErrDuplicateTitle is returned by the repository on a unique violation
	ErrDuplicateTitle = apperror.Conflict("book title already exist")

	// ErrUnknownAuthor is returned when romancista_id references no author
	ErrUnknownAuthor = apperror.NotFound("Author not exist")
)

// ErrTitleTaken is the conflict reported to clients for a taken title
func ErrTitleTaken(title string) error {
	return apperror.Conflict("%s already exist", title)
}
