package model

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a subscription: the user is emailed when one of the
// author's books becomes available.
type Follow struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	AuthorID  uuid.UUID
	CreatedAt time.Time
}
