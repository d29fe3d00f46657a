package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/BobFrankston/gcal/internal/calendar"
	"github.com/BobFrankston/gcal/internal/when"
)

func newListCmd() *cobra.Command {
	var limit string

	cmd := &cobra.Command{
		Use:   "list [n]",
		Short: "List upcoming events",
		Long: `List the next n upcoming events (default 10), looking no further ahead
than the --limit horizon. Recurring events are expanded into their single
occurrences.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			max := int64(10)
			if len(args) == 1 {
				n, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil || n < 1 {
					return fmt.Errorf("invalid event count %q", args[0])
				}
				max = n
			}

			now := time.Now()
			horizon, err := when.ParseTimeLimit(limit, now)
			if err != nil {
				return err
			}

			client, err := newReadClient(cmd)
			if err != nil {
				return err
			}

			events, err := client.Events(cmd.Context(), max, now, horizon)
			if err != nil {
				return err
			}

			if len(events) == 0 {
				fmt.Println("No upcoming events.")
				return nil
			}
			return calendar.WriteTable(os.Stdout, events)
		},
	}

	cmd.Flags().StringVar(&limit, "limit", "1m", "How far ahead to look: #d, #w, #m, or #y")
	return cmd
}
