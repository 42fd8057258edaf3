package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type Language struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

const maxNameLength = 50

// CreateLanguageRequest - POST /languages.
type CreateLanguageRequest struct {
	Name string `json:"name"`
}

func (r CreateLanguageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, maxNameLength),
		),
	)
}

// UpdateLanguageRequest - PUT /languages/:id.
type UpdateLanguageRequest = CreateLanguageRequest

// PatchLanguageRequest - PATCH /languages/:id.
type PatchLanguageRequest struct {
	Name *string `json:"name,omitempty"`
}

func (r PatchLanguageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be blank"),
			validation.Length(1, maxNameLength),
		),
	)
}

type LanguageResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (l *Language) ToResponse() *LanguageResponse {
	return &LanguageResponse{
		ID:   l.ID,
		Name: l.Name,
	}
}

type LanguageFilter struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
