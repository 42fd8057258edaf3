package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeAnonymous(t *testing.T) {
	anon := Actor{}

	resources := []Resource{ResourceAuthor, ResourceBook, ResourceLanguage, ResourceFollow}
	actions := []Action{ActionList, ActionGet, ActionCreate, ActionUpdate, ActionPartialUpdate, ActionDelete}

	for _, res := range resources {
		for _, act := range actions {
			assert.ErrorIs(t, Authorize(anon, res, act), ErrUnauthorized)
		}
	}
}

func TestAuthorizeCatalogResources(t *testing.T) {
	user := Actor{ID: uuid.New(), Authenticated: true}
	staff := Actor{ID: uuid.New(), Authenticated: true, IsStaff: true}

	tests := []struct {
		name   string
		actor  Actor
		action Action
		want   error
	}{
		{"user can list", user, ActionList, nil},
		{"user can get", user, ActionGet, nil},
		{"user cannot create", user, ActionCreate, ErrForbidden},
		{"user cannot update", user, ActionUpdate, ErrForbidden},
		{"user cannot patch", user, ActionPartialUpdate, ErrForbidden},
		{"user cannot delete", user, ActionDelete, ErrForbidden},
		{"staff can list", staff, ActionList, nil},
		{"staff can create", staff, ActionCreate, nil},
		{"staff can update", staff, ActionUpdate, nil},
		{"staff can delete", staff, ActionDelete, nil},
	}

	for _, res := range []Resource{ResourceAuthor, ResourceBook, ResourceLanguage} {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := Authorize(tt.actor, res, tt.action)
				if tt.want == nil {
					assert.NoError(t, got)
				} else {
					assert.ErrorIs(t, got, tt.want)
				}
			})
		}
	}
}

func TestAuthorizeFollow(t *testing.T) {
	user := Actor{ID: uuid.New(), Authenticated: true}
	staff := Actor{ID: uuid.New(), Authenticated: true, IsStaff: true}

	for _, actor := range []Actor{user, staff} {
		assert.NoError(t, Authorize(actor, ResourceFollow, ActionCreate))
		assert.NoError(t, Authorize(actor, ResourceFollow, ActionList))
		assert.NoError(t, Authorize(actor, ResourceFollow, ActionGet))
		assert.NoError(t, Authorize(actor, ResourceFollow, ActionDelete))

		// Updates are unsupported for everyone, staff included.
		assert.ErrorIs(t, Authorize(actor, ResourceFollow, ActionUpdate), ErrMethodNotAllowed)
		assert.ErrorIs(t, Authorize(actor, ResourceFollow, ActionPartialUpdate), ErrMethodNotAllowed)
	}
}
