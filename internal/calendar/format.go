package calendar

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	calendar "google.golang.org/api/calendar/v3"
)

// WriteTable renders events as an aligned table for terminal output.
func WriteTable(w io.Writer, events []*calendar.Event) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tID\tSUMMARY\tWHERE")
	for _, event := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", FormatWhen(event), event.Id, event.Summary, BeautifyURL(event.Location))
	}
	return tw.Flush()
}

// WriteCalendarTable renders the calendar list as an aligned table.
func WriteCalendarTable(w io.Writer, entries []*calendar.CalendarListEntry) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tROLE")
	for _, entry := range entries {
		name := entry.Summary
		if entry.Primary {
			name += " (primary)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.Id, name, entry.AccessRole)
	}
	return tw.Flush()
}

// FormatWhen renders an event's start/end for display. All-day events
// show the date range only; timed events on a single day show one date
// with a start and end clock.
func FormatWhen(event *calendar.Event) string {
	start, startAllDay := eventTime(event.Start)
	end, endAllDay := eventTime(event.End)

	if start.IsZero() {
		return ""
	}

	if startAllDay || endAllDay {
		// The API's all-day end date is exclusive.
		last := end.AddDate(0, 0, -1)
		if end.IsZero() || !last.After(start) {
			return start.Format("Mon Jan 2 2006") + " (all day)"
		}
		return fmt.Sprintf("%s - %s (all day)", start.Format("Mon Jan 2 2006"), last.Format("Mon Jan 2 2006"))
	}

	if end.IsZero() {
		return start.Format("Mon Jan 2 2006 15:04")
	}
	if start.Year() == end.Year() && start.YearDay() == end.YearDay() {
		return fmt.Sprintf("%s - %s", start.Format("Mon Jan 2 2006 15:04"), end.Format("15:04"))
	}
	return fmt.Sprintf("%s - %s", start.Format("Mon Jan 2 2006 15:04"), end.Format("Mon Jan 2 2006 15:04"))
}

// BeautifyURL strips display noise from a URL: the scheme, a leading
// www., a trailing slash, and anything beyond 60 characters. Text that
// isn't an http(s) URL passes through unchanged.
func BeautifyURL(s string) string {
	u := s
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(strings.ToLower(u), scheme) {
			u = u[len(scheme):]
			break
		}
	}
	if u == s {
		return s
	}

	u = strings.TrimPrefix(u, "www.")
	u = strings.TrimSuffix(u, "/")
	if len(u) > 60 {
		u = u[:57] + "..."
	}
	return u
}
