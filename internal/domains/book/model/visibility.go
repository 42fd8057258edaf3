package model

import (
	"strings"
	"time"
	"unicode"
)

// Visibility narrows the queryable book set for an actor. Staff see
// everything; everyone else sees only books published up to the current
// calendar year, evaluated at request time.
type Visibility struct {
	All     bool
	MaxYear int
}

func VisibilityFor(isStaff bool, now time.Time) Visibility {
	if isStaff {
		return Visibility{All: true}
	}
	return Visibility{MaxYear: now.Year()}
}

// Hides reports whether a publication year falls outside the visible set.
func (v Visibility) Hides(publicationYear int) bool {
	return !v.All && publicationYear > v.MaxYear
}

// ParseSearchTerms splits a free-text query on commas and whitespace.
// Every term must match at least one of book name, author last name, or
// author first name; empty terms are dropped.
func ParseSearchTerms(query string) []string {
	return strings.FieldsFunc(query, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
