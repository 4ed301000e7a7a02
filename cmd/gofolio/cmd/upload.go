package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload media files",
	Long: `Upload one or more files through the backend's upload endpoint.
Progress notifications are logged while the transfer runs.

Examples:
  gofolio upload --folder projects screenshot.png
  gofolio upload --folder certificates cert1.png cert2.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := newService(ctx)
		if err != nil {
			return err
		}

		folder, _ := cmd.Flags().GetString("folder")
		direct, _ := cmd.Flags().GetBool("direct")
		contentType, _ := cmd.Flags().GetString("content-type")

		if direct {
			for _, file := range args {
				asset, err := svc.UploadFileDirect(ctx, file, folder, contentType)
				if err != nil {
					return err
				}
				fmt.Printf("%s -> %s\n", file, asset.URL)
			}
			return nil
		}

		if len(args) == 1 {
			asset, err := svc.UploadFile(ctx, args[0], folder)
			if err != nil {
				return err
			}
			fmt.Printf("%s -> %s (id %s)\n", args[0], asset.URL, asset.PublicID)
			return nil
		}

		assets, err := svc.UploadFiles(ctx, args, folder)
		if err != nil {
			return err
		}
		for _, asset := range assets {
			fmt.Printf("%s (id %s)\n", asset.URL, asset.PublicID)
		}
		return nil
	},
}

var uploadDeleteCmd = &cobra.Command{
	Use:   "delete <public-id>",
	Short: "Delete an uploaded asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := newService(ctx)
		if err != nil {
			return err
		}
		if err := svc.DeleteFile(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

func init() {
	uploadCmd.Flags().String("folder", "", "destination folder on the backend")
	uploadCmd.Flags().Bool("direct", false, "write straight to the media bucket")
	uploadCmd.Flags().String("content-type", "", "content type for direct uploads")

	uploadCmd.AddCommand(uploadDeleteCmd)
	rootCmd.AddCommand(uploadCmd)
}
