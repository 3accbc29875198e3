package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"2026-03-10", " 10-03-2026 ", "2026-03-10T00:00:00Z", "2026-03-10T00:00:00"} {
		got, err := ParseDate(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), raw)
	}

	got, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ParseDate("10/03/2026")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestDateOnlyAndTimestamp(t *testing.T) {
	dubai := time.FixedZone("GST", 4*3600)
	instant := time.Date(2026, 3, 10, 23, 59, 58, 900, dubai)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), dateOnly(instant))
	assert.Equal(t, time.Date(2026, 3, 10, 19, 59, 58, 0, time.UTC), timestamp(instant))
}
