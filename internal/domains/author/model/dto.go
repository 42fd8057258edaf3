package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const maxNameLength = 150

// CreateAuthorRequest - POST /authors. Only the last name is mandatory.
type CreateAuthorRequest struct {
	LastName   string  `json:"last_name"`
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, maxNameLength),
		),
		validation.Field(&r.FirstName, validation.Length(0, maxNameLength)),
		validation.Field(&r.MiddleName, validation.Length(0, maxNameLength)),
	)
}

// UpdateAuthorRequest - PUT /authors/:id. Full replacement, same
// constraints as create.
type UpdateAuthorRequest = CreateAuthorRequest

// PatchAuthorRequest - PATCH /authors/:id. Nil fields are left unchanged.
type PatchAuthorRequest struct {
	LastName   *string `json:"last_name,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	MiddleName *string `json:"middle_name,omitempty"`
}

func (r PatchAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LastName,
			validation.NilOrNotEmpty.Error("last name cannot be blank"),
			validation.Length(1, maxNameLength),
		),
		validation.Field(&r.FirstName, validation.Length(0, maxNameLength)),
		validation.Field(&r.MiddleName, validation.Length(0, maxNameLength)),
	)
}

// ApplyTo copies the provided fields onto an existing author.
func (r PatchAuthorRequest) ApplyTo(a *Author) {
	if r.LastName != nil {
		a.LastName = *r.LastName
	}
	if r.FirstName != nil {
		a.FirstName = *r.FirstName
	}
	if r.MiddleName != nil {
		a.MiddleName = r.MiddleName
	}
}

type AuthorResponse struct {
	ID         uuid.UUID `json:"id"`
	LastName   string    `json:"last_name"`
	FirstName  string    `json:"first_name"`
	MiddleName *string   `json:"middle_name,omitempty"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:         a.ID,
		LastName:   a.LastName,
		FirstName:  a.FirstName,
		MiddleName: a.MiddleName,
	}
}

// AuthorFilter - query parameters for the list endpoint.
type AuthorFilter struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		LastName:   r.LastName,
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
	}
}
