package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{"zero", 0, "00:00:00"},
		{"seconds only", 59, "00:00:59"},
		{"forty five minutes", 2700, "00:45:00"},
		{"mixed", 3*3600 + 7*60 + 5, "03:07:05"},
		{"past a day", 25 * 3600, "25:00:00"},
		{"three digit hours", 100 * 3600, "100:00:00"},
		{"negative clamps", -30, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHMS(tt.seconds))
		})
	}
}

func TestFormatDuration_Truncates(t *testing.T) {
	assert.Equal(t, "00:00:01", FormatDuration(1999*time.Millisecond))
	assert.Equal(t, "00:01:00", FormatDuration(time.Minute+999*time.Millisecond))
}

func TestParseHMS_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"00:00:00", 0},
		{"00:45:00", 2700},
		{"1:02:03", 3723},
		{" 02:00:00 ", 7200},
		{"120:00:00", 120 * 3600},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHMS(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHMS_Malformed(t *testing.T) {
	for _, in := range []string{"", "45", "00:45", "a:b:c", "00:60:00", "00:00:75", "-1:00:00", "1::00", "1:00:00:00"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHMS(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedDuration)
		})
	}
}

func TestParseHMS_RoundTripsFormat(t *testing.T) {
	for _, secs := range []int64{0, 1, 61, 3599, 3600, 86399, 360000} {
		got, err := ParseHMS(FormatHMS(secs))
		require.NoError(t, err)
		assert.Equal(t, secs, got)
	}
}

func TestClampElapsed(t *testing.T) {
	assert.Equal(t, int64(0), ClampElapsed(-1))
	assert.Equal(t, int64(0), ClampElapsed(0))
	assert.Equal(t, int64(42), ClampElapsed(42))
}
