package calendar

import (
	"context"
	"fmt"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/BobFrankston/gcal/internal/google"
)

// DefaultCalendarID is used when no calendar is named explicitly.
const DefaultCalendarID = "primary"

// Client wraps the Google Calendar service for one account and calendar
type Client struct {
	svc        *calendar.Service
	account    string // The account this client is associated with
	calendarID string
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// CalendarID returns the calendar this client operates on
func (c *Client) CalendarID() string {
	return c.calendarID
}

// HasToken checks if a valid OAuth token exists for the account
func HasToken(account string, readOnly bool) bool {
	return google.HasToken(account, readOnly)
}

// NewClient creates a new Calendar client with OAuth2 authentication for
// the given account. readOnly selects the narrower API scope for
// commands that never mutate events.
func NewClient(ctx context.Context, account, calendarID string, readOnly bool) (*Client, error) {
	httpClient, err := google.HTTPClient(ctx, account, readOnly)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token for account %s: %w (run \"gcal auth\" first)", account, err)
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	return &Client{
		svc:        svc,
		account:    account,
		calendarID: calendarID,
	}, nil
}

// Calendars lists all calendars accessible to the user
func (c *Client) Calendars(ctx context.Context) ([]*calendar.CalendarListEntry, error) {
	var entries []*calendar.CalendarListEntry

	err := c.svc.CalendarList.List().Pages(ctx, func(page *calendar.CalendarList) error {
		entries = append(entries, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	return entries, nil
}

// Events lists up to max upcoming events between timeMin and timeMax,
// expanding recurring events into single occurrences and ordering by
// start time. Pages are followed until max events are collected or the
// range is exhausted.
func (c *Client) Events(ctx context.Context, max int64, timeMin, timeMax time.Time) ([]*calendar.Event, error) {
	var events []*calendar.Event

	pageToken := ""
	for {
		call := c.svc.Events.List(c.calendarID).
			SingleEvents(true).
			OrderBy("startTime").
			TimeMin(timeMin.Format(time.RFC3339)).
			MaxResults(max - int64(len(events))).
			Context(ctx)
		if !timeMax.IsZero() {
			call = call.TimeMax(timeMax.Format(time.RFC3339))
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}

		events = append(events, resp.Items...)
		if resp.NextPageToken == "" || int64(len(events)) >= max {
			break
		}
		pageToken = resp.NextPageToken
	}

	if int64(len(events)) > max {
		events = events[:max]
	}
	return events, nil
}

// Get retrieves a specific event by ID
func (c *Client) Get(ctx context.Context, eventID string) (*calendar.Event, error) {
	event, err := c.svc.Events.Get(c.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// Insert creates a new calendar event
func (c *Client) Insert(ctx context.Context, event *calendar.Event) (*calendar.Event, error) {
	created, err := c.svc.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

// Patch applies a partial update to an existing event
func (c *Client) Patch(ctx context.Context, eventID string, event *calendar.Event) (*calendar.Event, error) {
	updated, err := c.svc.Events.Patch(c.calendarID, eventID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return updated, nil
}

// Delete deletes a calendar event
func (c *Client) Delete(ctx context.Context, eventID string) error {
	if err := c.svc.Events.Delete(c.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
