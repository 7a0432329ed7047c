package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	m := NewManager("secret", time.Hour).WithClock(fixedClock(now))

	want := Identity{UserID: "u-1", Name: "Ana", Email: "ana@x.ca", Role: "owner"}
	token, err := m.Issue(want)
	require.NoError(t, err)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.IsOwner())
}

func TestVerifyErrors(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	m := NewManager("secret", time.Hour).WithClock(fixedClock(now))

	token, err := m.Issue(Identity{UserID: "u-1", Role: "user"})
	require.NoError(t, err)

	t.Run("missing", func(t *testing.T) {
		_, err := m.Verify("")
		assert.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewManager("secret", time.Hour).WithClock(fixedClock(now.Add(61 * time.Minute)))
		_, err := later.Verify(token)
		assert.ErrorIs(t, err, ErrExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager("other", time.Hour).WithClock(fixedClock(now))
		_, err := other.Verify(token)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalid)
	})
}
