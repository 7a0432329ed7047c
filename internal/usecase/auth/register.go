package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
}

// Result carries the public user and the token the handler puts in the cookie.
type Result struct {
	User  dto.PublicUserDTO
	Token string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	users    user.Repository
	sessions *session.Manager
}

func NewRegister(users user.Repository, sessions *session.Manager) *Register {
	return &Register{users: users, sessions: sessions}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Result, error) {
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = models.RoleUser
	}
	if !user.ValidRole(role) {
		return nil, user.ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	_, err := uc.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, user.ErrDuplicateEmail
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: hash password: %w", err)
	}

	u := models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         role,
	}

	// The unique index still catches a concurrent registration.
	if err := uc.users.CreateUser(ctx, &u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, user.ErrDuplicateEmail
		}
		return nil, err
	}

	token, err := uc.sessions.Issue(session.IdentityOf(&u))
	if err != nil {
		return nil, fmt.Errorf("auth.Register: issue token: %w", err)
	}

	return &Result{User: dto.PublicUser(&u), Token: token}, nil
}
