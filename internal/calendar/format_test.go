package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendar "google.golang.org/api/calendar/v3"

	"github.com/BobFrankston/gcal/internal/when"
)

func TestFormatWhenTimed(t *testing.T) {
	event := &calendar.Event{
		Start: &calendar.EventDateTime{DateTime: "2026-03-12T10:00:00-08:00", TimeZone: "PST"},
		End:   &calendar.EventDateTime{DateTime: "2026-03-12T11:00:00-08:00", TimeZone: "PST"},
	}
	assert.Equal(t, "Thu Mar 12 2026 10:00 - 11:00", FormatWhen(event))
}

func TestFormatWhenTimedAcrossDays(t *testing.T) {
	event := &calendar.Event{
		Start: &calendar.EventDateTime{DateTime: "2026-03-12T23:00:00-08:00"},
		End:   &calendar.EventDateTime{DateTime: "2026-03-13T01:00:00-08:00"},
	}
	assert.Equal(t, "Thu Mar 12 2026 23:00 - Fri Mar 13 2026 01:00", FormatWhen(event))
}

func TestFormatWhenAllDay(t *testing.T) {
	event := &calendar.Event{
		Start: &calendar.EventDateTime{Date: "2026-03-15"},
		End:   &calendar.EventDateTime{Date: "2026-03-16"},
	}
	assert.Equal(t, "Sun Mar 15 2026 (all day)", FormatWhen(event))
}

func TestFormatWhenAllDayRange(t *testing.T) {
	event := &calendar.Event{
		Start: &calendar.EventDateTime{Date: "2026-03-15"},
		End:   &calendar.EventDateTime{Date: "2026-03-18"},
	}
	assert.Equal(t, "Sun Mar 15 2026 - Tue Mar 17 2026 (all day)", FormatWhen(event))
}

// The displayed start of an event added as "tomorrow 10am" for "1h"
// must sit exactly one hour before the displayed end.
func TestAddRoundTripDisplay(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	now := time.Date(2026, time.March, 11, 9, 30, 0, 0, loc)

	start, err := when.ParseDateTime("tomorrow 10am", now)
	require.NoError(t, err)

	s, e := EventTimes(start, when.ParseDuration("1h"))
	event := &calendar.Event{Summary: "Title", Start: s, End: e}

	assert.Equal(t, "Thu Mar 12 2026 10:00 - 11:00", FormatWhen(event))
}

func TestWriteTable(t *testing.T) {
	events := []*calendar.Event{
		{
			Id:       "abc123",
			Summary:  "Standup",
			Location: "https://www.example.com/meet/room-1/",
			Start:    &calendar.EventDateTime{DateTime: "2026-03-12T10:00:00-08:00"},
			End:      &calendar.EventDateTime{DateTime: "2026-03-12T10:15:00-08:00"},
		},
	}

	var buf strings.Builder
	require.NoError(t, WriteTable(&buf, events))

	out := buf.String()
	assert.Contains(t, out, "WHEN")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "example.com/meet/room-1")
	assert.NotContains(t, out, "https://")
}

func TestBeautifyURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips scheme and www",
			input:    "https://www.example.com/room",
			expected: "example.com/room",
		},
		{
			name:     "strips trailing slash",
			input:    "http://example.com/",
			expected: "example.com",
		},
		{
			name:     "plain text unchanged",
			input:    "Conference Room 4",
			expected: "Conference Room 4",
		},
		{
			name:     "empty unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "long URLs are truncated",
			input:    "https://example.com/" + strings.Repeat("x", 80),
			expected: ("example.com/" + strings.Repeat("x", 80))[:57] + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BeautifyURL(tt.input))
		})
	}
}
