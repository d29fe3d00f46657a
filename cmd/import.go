package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	calendar_v3 "google.golang.org/api/calendar/v3"

	"github.com/BobFrankston/gcal/internal/ics"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import events from an ICS file",
		Long: `Import every event found in an ICS file. A record that fails to map or to
create is reported and skipped; the rest of the file is still imported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			client, err := newWriteClient(cmd)
			if err != nil {
				return err
			}

			importer := &ics.Importer{
				Create: func(ctx context.Context, event *calendar_v3.Event) error {
					_, err := client.Insert(ctx, event)
					return err
				},
				Location: time.Local,
				Logger:   slog.Default(),
			}

			result, err := importer.Import(cmd.Context(), f)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d event(s)\n", result.Imported)
			for _, msg := range result.Errors {
				fmt.Fprintf(os.Stderr, "error: %s\n", msg)
			}
			return nil
		},
	}
}
