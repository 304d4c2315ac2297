package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"asset-browser/pkg/services"
)

// newCopyAssetsCmd creates a new command for copying assets to a publish directory
func newCopyAssetsCmd() *cobra.Command {
	var publishDir string

	cmd := &cobra.Command{
		Use:   "copy-assets",
		Short: "Copy asset directories, manifest, and thumbnails to a publish directory",
		Long: `Copy the configured asset directories, manifest.json, and the thumbnail tree
into a publish directory suitable for static hosting.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}

			fmt.Printf("Publishing assets to %s...\n", publishDir)
			if err := services.PublishAssets(cfg.AssetRoot, cfg.AssetDirs, publishDir); err != nil {
				log.Fatalf("Failed to copy assets: %v", err)
			}
			fmt.Println("Done")
		},
	}

	cmd.Flags().StringVarP(&publishDir, "publish-dir", "d", "public", "Directory to copy assets into")

	return cmd
}
