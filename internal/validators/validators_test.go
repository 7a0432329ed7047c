package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("owner@salon.ca"))
	assert.True(t, IsEmail("  a@b.co "))
	assert.False(t, IsEmail("owner@salon"))
	assert.False(t, IsEmail("owner salon@x.ca"))
	assert.False(t, IsEmail(""))
}

func TestIsClock(t *testing.T) {
	for _, ok := range []string{"00:00", "09:30", "23:59"} {
		assert.True(t, IsClock(ok), ok)
	}
	for _, bad := range []string{"9:30", "24:00", "12:60", "noon", ""} {
		assert.False(t, IsClock(bad), bad)
	}
}

func TestNormalizeDate(t *testing.T) {
	d, err := NormalizeDate("2026-11-03")
	require.NoError(t, err)
	assert.Equal(t, "2026-11-03", d)

	d, err = NormalizeDate("2026-11-03T15:04:05-05:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-11-03", d)

	_, err = NormalizeDate("03/11/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAt(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	got, err := At("2026-11-03", "14:30", loc)
	require.NoError(t, err)
	assert.True(t, time.Date(2026, 11, 3, 14, 30, 0, 0, loc).Equal(got))
}
