package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Author struct {
	ID         uuid.UUID `json:"id" db:"id"`
	LastName   string    `json:"last_name" db:"last_name"`
	FirstName  string    `json:"first_name" db:"first_name"`
	MiddleName *string   `json:"middle_name" db:"middle_name"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// DisplayName renders the author as "First Middle Last", skipping empty
// parts. Used in notification email subjects.
func (a *Author) DisplayName() string {
	parts := make([]string, 0, 3)

	if a.FirstName != "" {
		parts = append(parts, a.FirstName)
	}
	if a.MiddleName != nil && *a.MiddleName != "" {
		parts = append(parts, *a.MiddleName)
	}
	if a.LastName != "" {
		parts = append(parts, a.LastName)
	}

	return strings.Join(parts, " ")
}
