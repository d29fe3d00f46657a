package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"github.com/BobFrankston/gcal/internal/when"
)

// EventTimes builds the start/end pair for a timed event beginning at
// start and lasting minutes. Both sides carry start's zone, so the pair
// is always uniformly timed, never mixed with the all-day form.
func EventTimes(start time.Time, minutes int) (*calendar.EventDateTime, *calendar.EventDateTime) {
	end := start.Add(time.Duration(minutes) * time.Minute)
	zone := zoneName(start.Location())

	return &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: zone,
		}, &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: zone,
		}
}

// zoneName filters location names the API will not accept: time.Local
// reads as "Local" and numeric-offset zones as "", neither of which is
// an IANA name. The RFC 3339 DateTime already carries the offset, so
// the field is simply omitted for those.
func zoneName(loc *time.Location) string {
	switch name := loc.String(); name {
	case "", "Local":
		return ""
	default:
		return name
	}
}

// Reminders converts parsed reminder overrides into the API form. An
// empty, non-nil slice (the parser's "0"/"none" result) disables
// reminders entirely; a nil slice returns nil so the event's reminder
// settings stay untouched.
func Reminders(overrides []when.Reminder) *calendar.EventReminders {
	if overrides == nil {
		return nil
	}

	// UseDefault must be serialized even though it is false, otherwise
	// the API keeps the calendar default.
	reminders := &calendar.EventReminders{
		UseDefault:      false,
		ForceSendFields: []string{"UseDefault"},
	}
	for _, o := range overrides {
		reminders.Overrides = append(reminders.Overrides, &calendar.EventReminder{
			Method:  o.Method,
			Minutes: o.Minutes,
		})
	}
	return reminders
}

// Span resolves an event's start and end instants and reports whether
// the event is all-day.
func Span(event *calendar.Event) (start, end time.Time, allDay bool) {
	start, allDay = eventTime(event.Start)
	end, _ = eventTime(event.End)
	return start, end, allDay
}

// eventTime resolves an EventDateTime into an instant plus an all-day
// flag. All-day values parse at midnight UTC; timed values keep the
// offset encoded in the RFC 3339 string.
func eventTime(edt *calendar.EventDateTime) (time.Time, bool) {
	if edt == nil {
		return time.Time{}, false
	}
	if edt.Date != "" {
		t, _ := time.Parse("2006-01-02", edt.Date)
		return t, true
	}
	t, _ := time.Parse(time.RFC3339, edt.DateTime)
	return t, false
}
