package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	calendar_v3 "google.golang.org/api/calendar/v3"

	"github.com/BobFrankston/gcal/internal/calendar"
	"github.com/BobFrankston/gcal/internal/when"
)

func newAddCmd() *cobra.Command {
	var location, description, reminders, attendees string

	cmd := &cobra.Command{
		Use:   "add <title> <when> [duration]",
		Short: "Create an event",
		Long: `Create an event titled <title> starting at <when>, a natural date/time
expression such as "tomorrow 2pm", "next friday 3pm" or "jan 15 10:30".
The optional duration ("1h30m", "45m", bare minutes) defaults to one hour.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := when.ParseDateTime(args[1], time.Now())
			if err != nil {
				return err
			}

			minutes := when.DefaultDurationMinutes
			if len(args) == 3 {
				minutes = when.ParseDuration(args[2])
			}

			s, e := calendar.EventTimes(start, minutes)
			event := &calendar_v3.Event{
				Summary:     args[0],
				Location:    location,
				Description: description,
				Start:       s,
				End:         e,
			}

			if reminders != "" {
				specs, err := when.ParseReminders(reminders)
				if err != nil {
					return err
				}
				event.Reminders = calendar.Reminders(specs)
			}

			for _, email := range strings.Split(attendees, ",") {
				if email = strings.TrimSpace(email); email != "" {
					event.Attendees = append(event.Attendees, &calendar_v3.EventAttendee{Email: email})
				}
			}

			client, err := newWriteClient(cmd)
			if err != nil {
				return err
			}

			created, err := client.Insert(cmd.Context(), event)
			if err != nil {
				return err
			}

			fmt.Printf("Created %q %s (id %s)\n", created.Summary, calendar.FormatWhen(created), created.Id)
			return nil
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "Event location")
	cmd.Flags().StringVar(&description, "description", "", "Event description")
	cmd.Flags().StringVar(&reminders, "reminders", "", `Comma-separated reminders, #m/#h/#d with optional :email ("30m,1h:email"); "0" or "none" disables reminders`)
	cmd.Flags().StringVar(&attendees, "attendees", "", "Comma-separated attendee email addresses")
	return cmd
}
