package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BobFrankston/gcal/internal/google"
)

func newAuthCmd() *cobra.Command {
	var force, readOnly bool

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize gcal to access your Google Calendar",
		Long: `Run the OAuth authorization flow for the selected account. The resulting
token is cached under the user cache directory; use --force to discard a
cached token and authorize again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if force {
				if err := google.ClearToken(accountFlag); err != nil {
					return fmt.Errorf("failed to clear cached token: %w", err)
				}
			} else if google.HasToken(accountFlag, readOnly) {
				fmt.Printf("Account %q is already authorized. Use --force to authorize again.\n", accountFlag)
				return nil
			}

			url, err := google.AuthURL(readOnly)
			if err != nil {
				return err
			}

			fmt.Printf("Visit the URL below, authorize access, then paste the code here:\n\n%s\n\nCode: ", url)

			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			code := strings.TrimSpace(line)
			if code == "" {
				return fmt.Errorf("no authorization code entered")
			}

			if err := google.SaveToken(cmd.Context(), accountFlag, code, readOnly); err != nil {
				return err
			}

			fmt.Printf("Token saved for account %q.\n", accountFlag)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Discard the cached token and run the authorization flow again")
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "Request read-only calendar access")
	return cmd
}
