package model

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	PublicationYear int       `json:"publication_year" db:"publication_year"`
	AuthorID        uuid.UUID `json:"author_id" db:"author_id"`
	LanguageID      uuid.UUID `json:"language_id" db:"language_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
