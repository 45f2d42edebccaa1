package book

import (
	"errors"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrInvalidID is returned when an identifier does not fit the store's addressing scheme.
var ErrInvalidID = errors.New("invalid book id")

// Book represents a single entry in the reading log.
type Book struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	AuthorFirstName string `json:"authorFirstName"`
	AuthorLastName  string `json:"authorLastName"`
	Genre           string `json:"genre"`
	PublishedDate   Date   `json:"publishedDate" swaggertype:"string" format:"date" example:"1965-01-01"`
	Pages           int    `json:"pages" example:"412"`
	ReadStatus      bool   `json:"readStatus"`
}

// CreateInput is the payload accepted when adding a book.
// Pointer fields distinguish an omitted value from a zero one.
type CreateInput struct {
	Title           string `json:"title" validate:"required"`
	AuthorFirstName string `json:"authorFirstName" validate:"required"`
	AuthorLastName  string `json:"authorLastName" validate:"required"`
	Genre           string `json:"genre" validate:"required"`
	PublishedDate   *Date  `json:"publishedDate" validate:"required" swaggertype:"string" format:"date"`
	Pages           *int   `json:"pages" validate:"required,gte=0"`
	ReadStatus      *bool  `json:"readStatus,omitempty"`
}

// Book builds the record to persist. The ID is left for the store to assign.
func (in CreateInput) Book() Book {
	b := Book{
		Title:           in.Title,
		AuthorFirstName: in.AuthorFirstName,
		AuthorLastName:  in.AuthorLastName,
		Genre:           in.Genre,
	}
	if in.PublishedDate != nil {
		b.PublishedDate = *in.PublishedDate
	}
	if in.Pages != nil {
		b.Pages = *in.Pages
	}
	if in.ReadStatus != nil {
		b.ReadStatus = *in.ReadStatus
	}
	return b
}

// UpdateInput holds the subset of fields to replace on an existing book.
type UpdateInput struct {
	Title           *string `json:"title,omitempty"`
	AuthorFirstName *string `json:"authorFirstName,omitempty"`
	AuthorLastName  *string `json:"authorLastName,omitempty"`
	Genre           *string `json:"genre,omitempty"`
	PublishedDate   *Date   `json:"publishedDate,omitempty" swaggertype:"string" format:"date"`
	Pages           *int    `json:"pages,omitempty" validate:"omitempty,gte=0"`
	ReadStatus      *bool   `json:"readStatus,omitempty"`
}

// Empty reports whether no field was provided.
func (in UpdateInput) Empty() bool {
	return in.Title == nil && in.AuthorFirstName == nil && in.AuthorLastName == nil &&
		in.Genre == nil && in.PublishedDate == nil && in.Pages == nil && in.ReadStatus == nil
}

// Apply merges the provided fields onto b.
func (in UpdateInput) Apply(b *Book) {
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.AuthorFirstName != nil {
		b.AuthorFirstName = *in.AuthorFirstName
	}
	if in.AuthorLastName != nil {
		b.AuthorLastName = *in.AuthorLastName
	}
	if in.Genre != nil {
		b.Genre = *in.Genre
	}
	if in.PublishedDate != nil {
		b.PublishedDate = *in.PublishedDate
	}
	if in.Pages != nil {
		b.Pages = *in.Pages
	}
	if in.ReadStatus != nil {
		b.ReadStatus = *in.ReadStatus
	}
}
