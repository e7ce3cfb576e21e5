package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jadando/gdrive-sheets/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth [auth-code]",
		Short: "Authorize Google Drive and Google Sheets access",
		Long: `Authorize Google Drive and Google Sheets access via OAuth.

Run without arguments to print the authorization URL, visit it in a
browser, then run again with the authorization code to save the token:

  gdrive-sheets auth
  gdrive-sheets auth <auth-code>

If no code is given as an argument, the command also reads one from
stdin after printing the URL. Tokens are stored per account, so multiple
Google accounts can be authorized with --account.

Requires GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET to be set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			authCode := ""
			if len(args) == 1 {
				authCode = strings.TrimSpace(args[0])
			}
			return runAuth(cmd, account, authCode)
		},
	}

	cmd.Flags().StringVar(&account, "account", google.DefaultAccount, "Account name used to store the token")

	return cmd
}

func runAuth(cmd *cobra.Command, account, authCode string) error {
	if authCode != "" {
		return saveAuthCode(cmd, account, authCode)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Visit this URL to authorize access for account %q:\n\n  %s\n\n", account, google.GetAuthURLForAccount(account))
	fmt.Fprint(cmd.OutOrStdout(), "Enter the authorization code: ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}
	authCode = strings.TrimSpace(line)
	if authCode == "" {
		return fmt.Errorf("no authorization code provided")
	}

	return saveAuthCode(cmd, account, authCode)
}

func saveAuthCode(cmd *cobra.Command, account, authCode string) error {
	if err := google.SaveTokenForAccount(cmd.Context(), account, authCode); err != nil {
		return fmt.Errorf("failed to save token for account %s: %w", account, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Token saved for account %q. Drive and Sheets tools are ready to use.\n", account)
	return nil
}
