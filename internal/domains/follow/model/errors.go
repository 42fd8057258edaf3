package model

import "errors"

var (
	ErrFollowNotFound   = errors.New("follow not found")
	ErrAlreadyFollowing = errors.New("already following this author")
	ErrAuthorNotFound   = errors.New("referenced author does not exist")

	// ErrNotOwner means the follow exists but belongs to someone else.
	ErrNotOwner = errors.New("follow belongs to another user")
)
