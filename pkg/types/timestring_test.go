package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("08:30")
	require.NoError(t, err)
	assert.Equal(t, "08:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("8.30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		start   string
		minutes int
		want    string
	}{
		{"08:00", 90, "09:30"},
		{"10:00", 0, "10:00"},
		{"23:30", 45, "00:15"},
		{"00:30", -60, "23:30"},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			ts := TimeString(tt.start)
			got, err := ts.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	_, err := TimeString("garbage").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME columns arrive as "HH:MM:SS"
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, "14:30", ts.String())

	require.NoError(t, ts.Scan([]byte("09:15:00")))
	assert.Equal(t, "09:15", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 3, 1, 7, 45, 0, 0, time.UTC)))
	assert.Equal(t, "07:45", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.True(t, TimeString("09:00").IsAfter("08:59"))
	assert.False(t, TimeString("08:00").IsBefore("08:00"))
}
