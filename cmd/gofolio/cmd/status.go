package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statusCmd probes the backend with the current credential and shows the
// effective configuration.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and configuration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := newService(ctx)
		if err != nil {
			return err
		}

		state := svc.State()
		fmt.Printf("Backend:  %s\n", state.BaseURL)
		fmt.Printf("Timeout:  %s\n", state.RequestTimeout)
		fmt.Printf("Agent:    %s\n", state.UserAgent)

		tok := svc.Token()
		if tok.IsZero() {
			fmt.Println("Session:  none (run gofolio login)")
			return nil
		}

		if _, err := svc.Me(ctx); err != nil {
			fmt.Printf("Session:  invalid (%v)\n", err)
			return nil
		}
		fmt.Println("Session:  valid")

		if len(state.TransfersStatus) > 0 {
			fmt.Println("\nTransfers:")
			for dest, n := range state.TransfersStatus {
				fmt.Printf("  %-40s %-12s %5.1f%%\n", dest, n.Status, n.Percentage)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
