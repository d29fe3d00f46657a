package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BobFrankston/gcal/internal/calendar"
	"github.com/BobFrankston/gcal/internal/config"
	"github.com/BobFrankston/gcal/internal/logging"
)

var (
	accountFlag  string
	calendarFlag string
	verboseFlag  bool
	quietFlag    bool
)

// rootCmd represents the base command for the gcal application
var rootCmd = &cobra.Command{
	Use:   "gcal",
	Short: "Manage Google Calendar events from the command line",
	Long: `gcal is a command-line Google Calendar client.

It authenticates with OAuth2, lists, creates, updates and deletes events,
and imports events from ICS files. Dates and times are accepted in natural
forms such as "tomorrow 2pm", "next friday 3pm" or "jan 15 2026".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verboseFlag, quietFlag)
		return resolveAccount(cmd)
	},
}

// resolveAccount fills accountFlag from the config file when --account
// was not given, and remembers an explicitly chosen account for the
// next invocation.
func resolveAccount(cmd *cobra.Command) error {
	if cmd.Flags().Changed("account") {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Account != accountFlag {
			cfg.Account = accountFlag
			if err := cfg.Save(); err != nil {
				slog.Warn("could not remember account", logging.Account(accountFlag), logging.Err(err))
			}
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Account != "" {
		accountFlag = cfg.Account
	}
	return nil
}

// newReadClient builds a Calendar client with the narrower read-only
// scope, for commands that never mutate events.
func newReadClient(cmd *cobra.Command) (*calendar.Client, error) {
	return calendar.NewClient(cmd.Context(), accountFlag, calendarFlag, true)
}

func newWriteClient(cmd *cobra.Command) (*calendar.Client, error) {
	return calendar.NewClient(cmd.Context(), accountFlag, calendarFlag, false)
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gcal version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "aborted")
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&accountFlag, "account", "default", "Google account name to use (remembered across runs)")
	rootCmd.PersistentFlags().StringVar(&calendarFlag, "calendar", calendar.DefaultCalendarID, "Calendar ID to operate on")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Only log errors")

	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newCalendarsCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newVersionCmd())
}
