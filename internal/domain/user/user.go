package user

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

var (
	ErrDuplicateEmail    = httperr.Conflict("duplicate_email", "User already exists")
	ErrNotFound          = httperr.NotFound("user_not_found", "User does not exist")
	ErrInvalidCredential = httperr.Validation("invalid_credentials", "Invalid password")
	ErrRoleMismatch      = httperr.Conflict("role_mismatch", "Access denied: role mismatch")
	ErrInvalidRole       = httperr.Validation("invalid_role", "Role must be user or owner")
)

// Repository returns domain.ErrNotFound for unknown users and
// domain.ErrDuplicate when the email is taken.
type Repository interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

func ValidRole(role string) bool {
	return role == models.RoleUser || role == models.RoleOwner
}
