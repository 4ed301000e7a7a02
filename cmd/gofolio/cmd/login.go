package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// loginCmd establishes an admin session and prints the bearer token so it
// can be exported for subsequent commands.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the portfolio backend",
	Long: `Authenticate with the admin email and password. On success the
session token is printed; export it as GOFOLIO_TOKEN (or pass --token)
for subsequent commands.

Examples:
  # Interactive password prompt
  gofolio login --email admin@example.com

  # Export the session for later commands
  export GOFOLIO_TOKEN=$(gofolio login --email admin@example.com --quiet)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		quiet, _ := cmd.Flags().GetBool("quiet")

		if email == "" {
			fmt.Fprint(os.Stderr, "Email: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			email = strings.TrimSpace(line)
		}
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimSpace(line)
		}

		svc, err := newService(ctx)
		if err != nil {
			return err
		}

		if err := svc.Login(ctx, email, password); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		tok := svc.Token()
		if quiet {
			fmt.Println(tok.AccessToken)
			return nil
		}
		fmt.Printf("Logged in as %s\n", email)
		fmt.Printf("Token: %s\n", tok.AccessToken)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "admin email")
	loginCmd.Flags().String("password", "", "admin password (prompted when omitted)")
	loginCmd.Flags().Bool("quiet", false, "print only the token")
	rootCmd.AddCommand(loginCmd)
}
