// Package policy decides, per request, whether an actor may perform an
// action on a resource kind. Decisions are pure functions of their inputs
// and are re-evaluated on every request; nothing here is cached.
package policy

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized     = errors.New("authentication required")
	ErrForbidden        = errors.New("access denied")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// Actor is the identity behind a request. The zero value is anonymous.
type Actor struct {
	ID            uuid.UUID
	Username      string
	IsStaff       bool
	Authenticated bool
}

type Resource int

const (
	ResourceAuthor Resource = iota
	ResourceBook
	ResourceLanguage
	ResourceFollow
)

type Action int

const (
	ActionList Action = iota
	ActionGet
	ActionCreate
	ActionUpdate
	ActionPartialUpdate
	ActionDelete
)

// IsSafe reports whether the action is read-only.
func (a Action) IsSafe() bool {
	return a == ActionList || a == ActionGet
}

// Authorize evaluates the access rules in order:
//
//  1. anonymous actors are rejected outright;
//  2. reads on authors, books and languages are open to any
//     authenticated actor;
//  3. writes on authors, books and languages require the staff flag;
//  4. follows may be created, listed, read and deleted by any
//     authenticated actor (ownership of the targeted row is checked by
//     the follow service, which has the row), while update and partial
//     update are not supported for anyone.
func Authorize(actor Actor, resource Resource, action Action) error {
	if !actor.Authenticated {
		return ErrUnauthorized
	}

	switch resource {
	case ResourceAuthor, ResourceBook, ResourceLanguage:
		if action.IsSafe() || actor.IsStaff {
			return nil
		}
		return ErrForbidden

	case ResourceFollow:
		if action == ActionUpdate || action == ActionPartialUpdate {
			return ErrMethodNotAllowed
		}
		return nil
	}

	return ErrForbidden
}
