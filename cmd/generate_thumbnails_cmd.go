package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"asset-browser/pkg/manifest"
	"asset-browser/pkg/services"
)

// Command options
var (
	outputDir       string
	forceRegenerate bool
	thumbnailSize   int
	jpegQuality     int
)

// newGenerateThumbnailsCmd creates a new command for generating image thumbnails
func newGenerateThumbnailsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-thumbnails",
		Short: "Generate thumbnails for images without existing thumbnails",
		Long: `Generate optimized JPEG thumbnails for every image asset in the manifest,
written to a parallel directory tree with the extension normalized to .jpg.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}

			m, err := manifest.Scan(cfg.AssetRoot, cfg.AssetDirs)
			if err != nil {
				log.Fatalf("Failed to scan assets: %v", err)
			}

			target := outputDir
			if target == "" {
				target = filepath.Join(cfg.AssetRoot, "thumbnails")
			}

			fmt.Println("Generating thumbnails...")
			generated, total, err := services.GenerateThumbnails(m, cfg.AssetRoot, target, services.ThumbnailOptions{
				Size:    thumbnailSize,
				Quality: jpegQuality,
				Force:   forceRegenerate,
			})
			if err != nil {
				log.Fatalf("Failed to generate thumbnails: %v", err)
			}

			fmt.Printf("\nSummary:\n")
			fmt.Printf("  Total images: %d\n", total)
			fmt.Printf("  Thumbnails generated: %d\n", generated)
			fmt.Printf("  Up to date: %d\n", total-generated)
		},
	}

	// Add command-specific flags
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory to store thumbnails (defaults to <asset-root>/thumbnails)")
	cmd.Flags().BoolVarP(&forceRegenerate, "force", "f", false, "Force regeneration of all thumbnails, even if they exist")
	cmd.Flags().IntVar(&thumbnailSize, "size", services.DefaultThumbnailSize, "Maximum thumbnail width/height in pixels")
	cmd.Flags().IntVar(&jpegQuality, "quality", services.DefaultThumbnailQuality, "JPEG quality (1-100)")

	return cmd
}
