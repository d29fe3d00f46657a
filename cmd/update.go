package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	calendar_v3 "google.golang.org/api/calendar/v3"

	"github.com/BobFrankston/gcal/internal/calendar"
	"github.com/BobFrankston/gcal/internal/when"
)

func newUpdateCmd() *cobra.Command {
	var startText, durText, remindersText, title, location string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an existing event",
		Long: `Patch fields of an existing event. Only the given flags change; moving an
event with --start keeps its current duration unless --duration is also
given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := &calendar_v3.Event{}
			changed := false

			if cmd.Flags().Changed("title") {
				patch.Summary = title
				changed = true
			}
			if cmd.Flags().Changed("location") {
				patch.Location = location
				changed = true
			}
			if remindersText != "" {
				specs, err := when.ParseReminders(remindersText)
				if err != nil {
					return err
				}
				patch.Reminders = calendar.Reminders(specs)
				changed = true
			}

			client, err := newWriteClient(cmd)
			if err != nil {
				return err
			}

			if startText != "" || durText != "" {
				existing, err := client.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				s, e, err := patchedTimes(existing, startText, durText, time.Now())
				if err != nil {
					return err
				}
				patch.Start, patch.End = s, e
				changed = true
			}

			if !changed {
				return fmt.Errorf("nothing to update: pass at least one of --start, --duration, --title, --location, --reminders")
			}

			updated, err := client.Patch(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}

			fmt.Printf("Updated %q %s\n", updated.Summary, calendar.FormatWhen(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&startText, "start", "", `New start, a natural date/time expression ("tomorrow 2pm")`)
	cmd.Flags().StringVar(&durText, "duration", "", `New duration ("1h30m", "45m", bare minutes)`)
	cmd.Flags().StringVar(&remindersText, "reminders", "", `New reminders, #m/#h/#d with optional :email; "0" or "none" disables them`)
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&location, "location", "", "New location")
	return cmd
}

// patchedTimes computes the start/end pair for an update: the new start
// from startText when given, otherwise the existing start; the duration
// from durText when given, otherwise the existing end-start span.
// All-day events have no clock to hang a duration on, so changing their
// times requires an explicit --start.
func patchedTimes(existing *calendar_v3.Event, startText, durText string, now time.Time) (*calendar_v3.EventDateTime, *calendar_v3.EventDateTime, error) {
	oldStart, oldEnd, allDay := calendar.Span(existing)
	if allDay && startText == "" {
		return nil, nil, fmt.Errorf("event is all-day; pass --start to make it a timed event before changing its duration")
	}

	start := oldStart
	if startText != "" {
		parsed, err := when.ParseDateTime(startText, now)
		if err != nil {
			return nil, nil, err
		}
		start = parsed
	}

	minutes := int(oldEnd.Sub(oldStart) / time.Minute)
	if durText != "" {
		minutes = when.ParseDuration(durText)
	}
	if minutes <= 0 {
		minutes = when.DefaultDurationMinutes
	}

	s, e := calendar.EventTimes(start, minutes)
	return s, e, nil
}
