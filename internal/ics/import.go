package ics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	rrule "github.com/teambition/rrule-go"
	calendar "google.golang.org/api/calendar/v3"

	"github.com/BobFrankston/gcal/internal/logging"
)

// Result aggregates the outcome of one import run.
type Result struct {
	Imported int
	Errors   []string
}

// Importer maps ICS event records and hands each mapped event to Create,
// strictly in file order. Location supplies the timezone for timed
// records that don't name one of their own.
type Importer struct {
	Create   func(ctx context.Context, event *calendar.Event) error
	Location *time.Location
	Logger   *slog.Logger
}

// Import parses the ICS payload and processes every event record it
// contains. A record failing to map or to create does not abort the
// batch; its error is recorded against the record's summary and the
// next record is processed. A cancelled context stops the batch and is
// returned as-is, already-created events are not rolled back.
func (im *Importer) Import(ctx context.Context, r io.Reader) (*Result, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar file: %w", err)
	}

	log := im.Logger
	if log == nil {
		log = slog.Default()
	}

	result := &Result{}
	for _, ve := range cal.Events() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		event, err := MapEvent(ve, im.Location)
		if err != nil {
			log.Warn("skipping event record", logging.Operation("import"), logging.Err(err))
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", summaryOf(ve), err))
			continue
		}

		if err := im.Create(ctx, event); err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			log.Warn("failed to create event", logging.Operation("import"), logging.Err(err))
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", event.Summary, err))
			continue
		}

		result.Imported++
		log.Debug("event imported", logging.Operation("import"), slog.String("summary", event.Summary))
	}

	return result, nil
}

// MapEvent converts one ICS event record into its Calendar API
// representation. It is pure: no I/O, no clock access.
func MapEvent(ve *ical.VEvent, loc *time.Location) (*calendar.Event, error) {
	event := &calendar.Event{Summary: "Untitled Event"}

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil && p.Value != "" {
		event.Summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		event.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		event.Location = p.Value
	}

	startProp := ve.GetProperty(ical.ComponentPropertyDtStart)
	if startProp == nil {
		return nil, errors.New("missing start time")
	}
	start, err := mapEventTime(startProp, loc)
	if err != nil {
		return nil, fmt.Errorf("bad start time: %w", err)
	}
	event.Start = start

	if endProp := ve.GetProperty(ical.ComponentPropertyDtEnd); endProp != nil {
		end, err := mapEventTime(endProp, loc)
		if err != nil {
			return nil, fmt.Errorf("bad end time: %w", err)
		}
		event.End = end
	} else {
		// DTEND is optional in ICS; default to one day for all-day
		// records and one hour for timed ones.
		end, err := followingTime(start)
		if err != nil {
			return nil, fmt.Errorf("bad start time: %w", err)
		}
		event.End = end
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyAttendee) {
		attendee, err := mapAttendee(p)
		if err != nil {
			return nil, err
		}
		event.Attendees = append(event.Attendees, attendee)
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil && p.Value != "" {
		if _, err := rrule.StrToRRule(p.Value); err != nil {
			return nil, fmt.Errorf("invalid recurrence rule %q: %w", p.Value, err)
		}
		event.Recurrence = []string{"RRULE:" + p.Value}
	}

	return event, nil
}

// mapEventTime converts a DTSTART/DTEND property into the API form,
// keeping the all-day vs. timed distinction: a date-only value becomes
// a bare calendar date with no timezone, a timed value carries either
// the record's own TZID or the injected local zone.
func mapEventTime(p *ical.IANAProperty, loc *time.Location) (*calendar.EventDateTime, error) {
	value := strings.TrimSpace(p.Value)
	if value == "" {
		return nil, errors.New("empty time value")
	}

	if isAllDay(p) {
		t, err := time.Parse("20060102", value)
		if err != nil {
			return nil, err
		}
		return &calendar.EventDateTime{Date: t.Format("2006-01-02")}, nil
	}

	// UTC form, e.g. 20250101T090000Z
	if strings.HasSuffix(value, "Z") {
		t, err := time.Parse("20060102T150405Z", value)
		if err != nil {
			return nil, err
		}
		return &calendar.EventDateTime{
			DateTime: t.Format(time.RFC3339),
			TimeZone: "UTC",
		}, nil
	}

	zone := loc
	zoneName := loc.String()
	if tzids := p.ICalParameters["TZID"]; len(tzids) > 0 && tzids[0] != "" {
		named, err := time.LoadLocation(tzids[0])
		if err != nil {
			return nil, fmt.Errorf("unknown timezone %q: %w", tzids[0], err)
		}
		zone = named
		zoneName = tzids[0]
	}

	t, err := time.ParseInLocation("20060102T150405", value, zone)
	if err != nil {
		return nil, err
	}

	// time.Local reads as "Local", which is not an IANA name and gets
	// rejected by the API. Recurring events need a named zone, so pin
	// the instant in UTC instead of dropping the field.
	if zoneName == "" || zoneName == "Local" {
		t = t.UTC()
		zoneName = "UTC"
	}

	return &calendar.EventDateTime{
		DateTime: t.Format(time.RFC3339),
		TimeZone: zoneName,
	}, nil
}

func isAllDay(p *ical.IANAProperty) bool {
	if values := p.ICalParameters["VALUE"]; len(values) > 0 && strings.EqualFold(values[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

// mapAttendee converts an ATTENDEE property: the address comes from the
// value with any mailto: scheme stripped, the display name from the
// first CN parameter entry when one is present.
func mapAttendee(p *ical.IANAProperty) (*calendar.EventAttendee, error) {
	email := strings.TrimSpace(p.Value)
	if strings.HasPrefix(strings.ToLower(email), "mailto:") {
		email = email[len("mailto:"):]
	}
	if email == "" {
		return nil, errors.New("attendee has no address")
	}

	attendee := &calendar.EventAttendee{Email: email}
	if cn := p.ICalParameters["CN"]; len(cn) > 0 {
		attendee.DisplayName = cn[0]
	}
	return attendee, nil
}

func followingTime(start *calendar.EventDateTime) (*calendar.EventDateTime, error) {
	if start.Date != "" {
		t, err := time.Parse("2006-01-02", start.Date)
		if err != nil {
			return nil, err
		}
		return &calendar.EventDateTime{Date: t.AddDate(0, 0, 1).Format("2006-01-02")}, nil
	}

	t, err := time.Parse(time.RFC3339, start.DateTime)
	if err != nil {
		return nil, err
	}
	return &calendar.EventDateTime{
		DateTime: t.Add(time.Hour).Format(time.RFC3339),
		TimeZone: start.TimeZone,
	}, nil
}

func summaryOf(ve *ical.VEvent) string {
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil && p.Value != "" {
		return p.Value
	}
	return "unknown"
}
