package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/infra/memory"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

func setup() (*Register, *Login, *session.Manager) {
	store := memory.New()
	sessions := session.NewManager("test-secret", time.Hour)
	return NewRegister(store, sessions), NewLogin(store, sessions), sessions
}

func TestRegister(t *testing.T) {
	register, _, sessions := setup()
	ctx := context.Background()

	res, err := register.Execute(ctx, RegisterInput{
		Name:     "Ana",
		Email:    "  Ana@Example.com ",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", res.User.Email)
	assert.Equal(t, "user", res.User.Role, "role defaults to user")
	assert.NotEmpty(t, res.User.ID)

	id, err := sessions.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id.UserID)
	assert.Equal(t, "Ana", id.Name)
}

func TestRegisterRejects(t *testing.T) {
	register, _, _ := setup()
	ctx := context.Background()

	_, err := register.Execute(ctx, RegisterInput{Name: "A", Email: "a@b.co", Password: "secret1", Role: "owner"})
	require.NoError(t, err)

	_, err = register.Execute(ctx, RegisterInput{Name: "B", Email: "A@B.CO", Password: "secret1"})
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)

	_, err = register.Execute(ctx, RegisterInput{Name: "C", Email: "c@b.co", Password: "secret1", Role: "admin"})
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestLoginOrderOfChecks(t *testing.T) {
	register, login, _ := setup()
	ctx := context.Background()

	_, err := register.Execute(ctx, RegisterInput{Name: "Olga", Email: "olga@x.ca", Password: "secret1", Role: "owner"})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   LoginInput
		want error
	}{
		{"unknown email", LoginInput{Email: "nobody@x.ca", Password: "secret1", Role: "owner"}, user.ErrNotFound},
		{"wrong password and role", LoginInput{Email: "olga@x.ca", Password: "nope", Role: "user"}, user.ErrInvalidCredential},
		{"role mismatch", LoginInput{Email: "olga@x.ca", Password: "secret1", Role: "user"}, user.ErrRoleMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := login.Execute(ctx, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	res, err := login.Execute(ctx, LoginInput{Email: "OLGA@x.ca", Password: "secret1", Role: "owner"})
	require.NoError(t, err)
	assert.Equal(t, "owner", res.User.Role)
	assert.NotEmpty(t, res.Token)
}
