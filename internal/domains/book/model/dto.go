package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	maxBookNameLength  = 500
	minPublicationYear = 1
)

// CreateBookRequest - POST /books.
type CreateBookRequest struct {
	Name            string `json:"name"`
	PublicationYear int    `json:"publication_year"`
	AuthorID        string `json:"author_id"`
	LanguageID      string `json:"language_id"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, maxBookNameLength),
		),
		validation.Field(&r.PublicationYear,
			validation.Required.Error("publication year is required"),
			validation.Min(minPublicationYear),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author is required"),
			is.UUID.Error("author_id must be a valid UUID"),
		),
		validation.Field(&r.LanguageID,
			validation.Required.Error("language is required"),
			is.UUID.Error("language_id must be a valid UUID"),
		),
	)
}

// ToEntity assumes Validate has already accepted the UUID fields.
func (r *CreateBookRequest) ToEntity() *Book {
	return &Book{
		Name:            r.Name,
		PublicationYear: r.PublicationYear,
		AuthorID:        uuid.MustParse(r.AuthorID),
		LanguageID:      uuid.MustParse(r.LanguageID),
	}
}

// UpdateBookRequest - PUT /books/:id. Full replacement.
type UpdateBookRequest = CreateBookRequest

// PatchBookRequest - PATCH /books/:id.
type PatchBookRequest struct {
	Name            *string `json:"name,omitempty"`
	PublicationYear *int    `json:"publication_year,omitempty"`
	AuthorID        *string `json:"author_id,omitempty"`
	LanguageID      *string `json:"language_id,omitempty"`
}

func (r PatchBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be blank"),
			validation.Length(1, maxBookNameLength),
		),
		validation.Field(&r.PublicationYear, validation.Min(minPublicationYear)),
		validation.Field(&r.AuthorID, is.UUID.Error("author_id must be a valid UUID")),
		validation.Field(&r.LanguageID, is.UUID.Error("language_id must be a valid UUID")),
	)
}

func (r PatchBookRequest) ApplyTo(b *Book) {
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.PublicationYear != nil {
		b.PublicationYear = *r.PublicationYear
	}
	if r.AuthorID != nil {
		b.AuthorID = uuid.MustParse(*r.AuthorID)
	}
	if r.LanguageID != nil {
		b.LanguageID = uuid.MustParse(*r.LanguageID)
	}
}

type BookResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	PublicationYear int       `json:"publication_year"`
	AuthorID        uuid.UUID `json:"author_id"`
	LanguageID      uuid.UUID `json:"language_id"`
}

func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:              b.ID,
		Name:            b.Name,
		PublicationYear: b.PublicationYear,
		AuthorID:        b.AuthorID,
		LanguageID:      b.LanguageID,
	}
}

// BookFilter collects everything the list endpoint narrows by. Visibility
// is applied first; search terms and the equality filters only ever see
// the already-visible set.
type BookFilter struct {
	Visibility  Visibility
	SearchTerms []string
	AuthorID    *uuid.UUID
	LanguageID  *uuid.UUID
	Limit       int
	Offset      int
}
