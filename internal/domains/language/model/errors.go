package model

import "errors"

var (
	ErrLanguageNotFound = errors.New("language not found")

	// ErrLanguageInUse is returned when a delete is blocked because books
	// still reference the language.
	ErrLanguageInUse = errors.New("language is referenced by existing books")
)
