package model

// Book belongs to exactly one author. Title is stored normalized.
type Book struct {
	ID       int64  `json:"id" db:"id"`
	Year     int    `json:"year" db:"year"`
	Title    string `json:"title" db:"title"`
	AuthorID int64  `json:"author_id" db:"author_id"`
}

type BookResponse struct {
	ID       int64  `json:"id"`
	Year     int    `json:"year"`
	Title    string `json:"title"`
	AuthorID int64  `json:"author_id"`
}

// ToResponse converts Book to BookResponse
func (b *Book) ToResponse() BookResponse {
	return BookResponse{
		ID:       b.ID,
		Year:     b.Year,
		Title:    b.Title,
		AuthorID: b.AuthorID,
	}
}
