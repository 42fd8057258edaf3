package model

import "errors"

var (
	// ErrBookNotFound covers both missing books and books hidden from the
	// requesting actor; callers must not be able to tell the two apart.
	ErrBookNotFound = errors.New("book not found")

	ErrAuthorNotFound   = errors.New("referenced author does not exist")
	ErrLanguageNotFound = errors.New("referenced language does not exist")
)
