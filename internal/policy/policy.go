package policy

import (
	"fmt"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

var ErrNotOwner = httperr.Forbidden("not_owner", "You can only manage your own salons")

// RequireRole fails with a forbidden error unless the caller has the role.
func RequireRole(required string, id session.Identity) error {
	if id.Role != required {
		return httperr.Forbidden("role_forbidden", fmt.Sprintf("Only %ss can perform this action", required))
	}
	return nil
}

// RequireOwner fails unless the caller is the owner of the resource.
func RequireOwner(ownerID string, id session.Identity) error {
	if ownerID == "" || ownerID != id.UserID {
		return ErrNotOwner
	}
	return nil
}
