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
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

type LoginInput struct {
	Email    string
	Password string
	Role     string
}

type Login struct {
	users    user.Repository
	sessions *session.Manager
}

func NewLogin(users user.Repository, sessions *session.Manager) *Login {
	return &Login{users: users, sessions: sessions}
}

// Execute checks, in order: the email exists, the password matches, the
// stored role equals the requested one.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*Result, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	u, err := uc.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, user.ErrInvalidCredential
	}

	if u.Role != in.Role {
		return nil, user.ErrRoleMismatch
	}

	token, err := uc.sessions.Issue(session.IdentityOf(u))
	if err != nil {
		return nil, fmt.Errorf("auth.Login: issue token: %w", err)
	}

	return &Result{User: dto.PublicUser(u), Token: token}, nil
}
