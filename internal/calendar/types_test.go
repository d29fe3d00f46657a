package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BobFrankston/gcal/internal/when"
)

func TestEventTimes(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	start := time.Date(2026, time.March, 12, 10, 0, 0, 0, loc)

	s, e := EventTimes(start, 90)

	assert.Equal(t, "2026-03-12T10:00:00-08:00", s.DateTime)
	assert.Equal(t, "2026-03-12T11:30:00-08:00", e.DateTime)
	assert.Equal(t, "PST", s.TimeZone)
	assert.Equal(t, "PST", e.TimeZone)
	assert.Empty(t, s.Date)
	assert.Empty(t, e.Date)
}

// A machine configured via /etc/localtime with TZ unset reports its
// location as "Local", which is not an IANA name and would be rejected
// by the API. The offset in the RFC 3339 value pins the instant, so the
// zone field must be omitted rather than forwarded.
func TestEventTimesLocalZoneOmitted(t *testing.T) {
	loc := time.FixedZone("Local", -8*3600)
	start := time.Date(2026, time.March, 12, 10, 0, 0, 0, loc)

	s, e := EventTimes(start, 60)

	assert.Equal(t, "2026-03-12T10:00:00-08:00", s.DateTime)
	assert.Equal(t, "2026-03-12T11:00:00-08:00", e.DateTime)
	assert.Empty(t, s.TimeZone)
	assert.Empty(t, e.TimeZone)
}

func TestEventTimesUnnamedZoneOmitted(t *testing.T) {
	loc := time.FixedZone("", -8*3600)
	start := time.Date(2026, time.March, 12, 10, 0, 0, 0, loc)

	s, _ := EventTimes(start, 60)
	assert.Empty(t, s.TimeZone)
}

func TestReminders(t *testing.T) {
	t.Run("nil input leaves reminders untouched", func(t *testing.T) {
		assert.Nil(t, Reminders(nil))
	})

	t.Run("empty slice disables reminders", func(t *testing.T) {
		r := Reminders([]when.Reminder{})
		require.NotNil(t, r)
		assert.False(t, r.UseDefault)
		assert.Empty(t, r.Overrides)
		assert.Contains(t, r.ForceSendFields, "UseDefault")
	})

	t.Run("overrides are converted in order", func(t *testing.T) {
		r := Reminders([]when.Reminder{
			{Method: when.MethodPopup, Minutes: 15},
			{Method: when.MethodEmail, Minutes: 60},
		})
		require.NotNil(t, r)
		require.Len(t, r.Overrides, 2)
		assert.Equal(t, "popup", r.Overrides[0].Method)
		assert.Equal(t, int64(15), r.Overrides[0].Minutes)
		assert.Equal(t, "email", r.Overrides[1].Method)
		assert.Equal(t, int64(60), r.Overrides[1].Minutes)
	})
}
