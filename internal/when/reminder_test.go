package when

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReminder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Reminder
	}{
		{
			name:     "minutes default popup",
			input:    "30m",
			expected: Reminder{Method: MethodPopup, Minutes: 30},
		},
		{
			name:     "hours with email",
			input:    "1h:email",
			expected: Reminder{Method: MethodEmail, Minutes: 60},
		},
		{
			name:     "days",
			input:    "2d",
			expected: Reminder{Method: MethodPopup, Minutes: 2880},
		},
		{
			name:     "missing unit is minutes",
			input:    "15",
			expected: Reminder{Method: MethodPopup, Minutes: 15},
		},
		{
			name:     "unknown method resolves to popup",
			input:    "10m:sms",
			expected: Reminder{Method: MethodPopup, Minutes: 10},
		},
		{
			name:     "uppercase",
			input:    "1H:EMAIL",
			expected: Reminder{Method: MethodEmail, Minutes: 60},
		},
		{
			name:     "space before unit",
			input:    "45 m",
			expected: Reminder{Method: MethodPopup, Minutes: 45},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReminder(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseReminderInvalid(t *testing.T) {
	for _, input := range []string{"soon", "h1", "", "1.5h", "10m:email:extra"} {
		t.Run("input "+input, func(t *testing.T) {
			_, err := ParseReminder(input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "Invalid reminder")
			assert.Contains(t, err.Error(), input)
		})
	}
}

func TestParseReminders(t *testing.T) {
	t.Run("comma separated with whitespace", func(t *testing.T) {
		got, err := ParseReminders("15m, 1h:email ,2d")
		require.NoError(t, err)
		assert.Equal(t, []Reminder{
			{Method: MethodPopup, Minutes: 15},
			{Method: MethodEmail, Minutes: 60},
			{Method: MethodPopup, Minutes: 2880},
		}, got)
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		got, err := ParseReminders("10m,10m")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("zero suppresses reminders", func(t *testing.T) {
		got, err := ParseReminders("0")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("none suppresses reminders", func(t *testing.T) {
		got, err := ParseReminders("NONE")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("one bad part fails the whole spec", func(t *testing.T) {
		_, err := ParseReminders("15m,soon")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"soon"`)
	})
}
