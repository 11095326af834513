package models

// BookStatus tracks reading progress.
type BookStatus string

const (
	BookToRead  BookStatus = "to-read"
	BookReading BookStatus = "reading"
	BookRead    BookStatus = "read"
)

// Book is a tracked book, optionally with a cover image.
// Cover bytes never appear in JSON backups.
type Book struct {
	ID            int64      `json:"id,omitempty"`
	Title         string     `json:"title" validate:"required"`
	Author        string     `json:"author" validate:"required"`
	Cover         []byte     `json:"-"`
	Status        BookStatus `json:"status" validate:"required,oneof=to-read reading read"`
	Rating        *int       `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Notes         string     `json:"notes,omitempty"`
	IsPinned      bool       `json:"isPinned,omitempty"`
	IsHighlighted bool       `json:"isHighlighted,omitempty"`
}

// BookPatch is a partial update; nil fields are left unchanged.
type BookPatch struct {
	Title         *string
	Author        *string
	Cover         *[]byte
	Status        *BookStatus
	Rating        **int
	Notes         *string
	IsPinned      *bool
	IsHighlighted *bool
}
