package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/BobFrankston/gcal/internal/calendar"
)

func newCalendarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendars",
		Short: "List the calendars visible to the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newReadClient(cmd)
			if err != nil {
				return err
			}

			entries, err := client.Calendars(cmd.Context())
			if err != nil {
				return err
			}

			return calendar.WriteCalendarTable(os.Stdout, entries)
		},
	}
}
