package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	MiddleName   *string
	LastName     string
	IsStaff      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
