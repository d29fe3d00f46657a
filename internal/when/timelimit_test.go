package when

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeLimit(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	now := time.Date(2026, time.March, 11, 9, 30, 0, 0, loc)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "months",
			input:    "3m",
			expected: time.Date(2026, time.June, 11, 9, 30, 0, 0, loc),
		},
		{
			name:     "weeks",
			input:    "2w",
			expected: time.Date(2026, time.March, 25, 9, 30, 0, 0, loc),
		},
		{
			name:     "days",
			input:    "90d",
			expected: now.AddDate(0, 0, 90),
		},
		{
			name:     "years",
			input:    "1y",
			expected: time.Date(2027, time.March, 11, 9, 30, 0, 0, loc),
		},
		{
			name:     "missing unit defaults to months",
			input:    "5",
			expected: time.Date(2026, time.August, 11, 9, 30, 0, 0, loc),
		},
		{
			name:     "uppercase unit",
			input:    "2W",
			expected: time.Date(2026, time.March, 25, 9, 30, 0, 0, loc),
		},
		{
			name:     "surrounding whitespace",
			input:    " 3m ",
			expected: time.Date(2026, time.June, 11, 9, 30, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeLimit(tt.input, now)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestParseTimeLimitMonthRollover(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	// Jan 31 + 1 month normalizes into March per AddDate semantics.
	now := time.Date(2026, time.January, 31, 12, 0, 0, 0, loc)

	got, err := ParseTimeLimit("1m", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 3, 12, 0, 0, 0, loc), got)
}

func TestParseTimeLimitInvalid(t *testing.T) {
	now := time.Date(2026, time.March, 11, 9, 30, 0, 0, time.UTC)

	for _, input := range []string{"xyz", "", "3q", "m3", "-2w"} {
		t.Run("input "+input, func(t *testing.T) {
			_, err := ParseTimeLimit(input, now)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "Invalid time limit")
			assert.Contains(t, err.Error(), input)
		})
	}
}
