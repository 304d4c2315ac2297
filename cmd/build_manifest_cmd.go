package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"asset-browser/pkg/manifest"
)

// newBuildManifestCmd creates a new command for rebuilding the asset manifest
func newBuildManifestCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build-manifest",
		Short: "Scan the asset directories and write manifest.json",
		Long: `Scan the configured asset directories under the asset root and write a fresh
manifest.json describing the folder tree and root-level media files.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}

			fmt.Printf("Scanning asset directories in %s...\n", cfg.AssetRoot)
			m, err := manifest.Scan(cfg.AssetRoot, cfg.AssetDirs)
			if err != nil {
				log.Fatalf("Failed to scan assets: %v", err)
			}

			target := output
			if target == "" {
				target = filepath.Join(cfg.AssetRoot, "manifest.json")
			}

			data, err := json.MarshalIndent(m, "", "  ")
			if err != nil {
				log.Fatalf("Failed to encode manifest: %v", err)
			}
			if err := os.WriteFile(target, data, 0644); err != nil {
				log.Fatalf("Failed to write manifest: %v", err)
			}

			total := 0
			for _, nodes := range m {
				total += len(nodes)
			}
			fmt.Printf("Wrote %s (%d top-level sections, %d entries)\n", target, len(m), total)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Manifest output path (defaults to <asset-root>/manifest.json)")

	return cmd
}
