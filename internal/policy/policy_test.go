package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

func TestRequireRole(t *testing.T) {
	owner := session.Identity{UserID: "o", Role: "owner"}
	customer := session.Identity{UserID: "c", Role: "user"}

	assert.NoError(t, RequireRole("owner", owner))

	err := RequireRole("owner", customer)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
	assert.Equal(t, "Only owners can perform this action", httperr.MessageOf(err))
}

func TestRequireOwner(t *testing.T) {
	id := session.Identity{UserID: "o-1", Role: "owner"}

	assert.NoError(t, RequireOwner("o-1", id))
	assert.ErrorIs(t, RequireOwner("o-2", id), ErrNotOwner)
	assert.ErrorIs(t, RequireOwner("", session.Identity{}), ErrNotOwner)
}
