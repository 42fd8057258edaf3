package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// CreateFollowRequest - POST /follows. The follower is always the
// authenticated user; the payload only names the author.
type CreateFollowRequest struct {
	AuthorID string `json:"author_id"`
}

func (r CreateFollowRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID,
			validation.Required.Error("author is required"),
			is.UUID.Error("author_id must be a valid UUID"),
		),
	)
}

// ToEntity assumes Validate has already accepted the author id.
func (r *CreateFollowRequest) ToEntity(userID uuid.UUID) *Follow {
	return &Follow{
		UserID:   userID,
		AuthorID: uuid.MustParse(r.AuthorID),
	}
}

type FollowResponse struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	AuthorID uuid.UUID `json:"author_id"`
}

func (f *Follow) ToResponse() *FollowResponse {
	return &FollowResponse{
		ID:       f.ID,
		UserID:   f.UserID,
		AuthorID: f.AuthorID,
	}
}

type FollowFilter struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}
