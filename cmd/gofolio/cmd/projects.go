package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nethrys/gofolio/dto"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage portfolio projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := newService(ctx)
		if err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")

		projects, meta, err := svc.ListProjects(ctx, page, limit)
		if err != nil {
			return err
		}

		for _, p := range projects {
			marker := " "
			if p.Featured {
				marker = "*"
			}
			fmt.Printf("%s %-24s  %-40s  %v\n", marker, p.ID, p.Title, p.Tech)
		}
		if meta != nil {
			fmt.Printf("\npage %d/%d (%d total)\n", meta.Page, meta.TotalPages, meta.Total)
		}
		return nil
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create [json-file]",
	Short: "Create a project from a JSON file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := newService(ctx)
		if err != nil {
			return err
		}

		var raw []byte
		if len(args) == 1 {
			raw, err = os.ReadFile(args[0])
		} else {
			raw, err = readAllStdin()
		}
		if err != nil {
			return err
		}

		var project dto.Project
		if err := json.Unmarshal(raw, &project); err != nil {
			return fmt.Errorf("parse project JSON: %w", err)
		}

		created, err := svc.CreateProject(ctx, project)
		if err != nil {
			return err
		}
		fmt.Printf("created project %s (%s)\n", created.Title, created.ID)
		return nil
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := newService(ctx)
		if err != nil {
			return err
		}
		if err := svc.DeleteProject(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted project %s\n", args[0])
		return nil
	},
}

func readAllStdin() ([]byte, error) {
	return io.ReadAll(os.Stdin)
}

func init() {
	projectsListCmd.Flags().Int("page", 0, "page number")
	projectsListCmd.Flags().Int("limit", 0, "page size")

	projectsCmd.AddCommand(projectsListCmd, projectsCreateCmd, projectsDeleteCmd)
	rootCmd.AddCommand(projectsCmd)
}
