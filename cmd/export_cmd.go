package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"asset-browser/pkg/services"
)

// newExportCmd creates a new command for exporting the flat asset list
func newExportCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the flattened asset list as JSON",
		Long:  `Export the flattened asset list, with categories, as JSON to stdout or a file.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			services.InitService(cfg)

			assets, err := services.GetAssets()
			if err != nil {
				log.Fatalf("Failed to load assets: %v", err)
			}

			data, err := json.MarshalIndent(assets, "", "  ")
			if err != nil {
				log.Fatalf("Failed to encode assets: %v", err)
			}

			if outputFile == "" {
				fmt.Println(string(data))
				return
			}
			if err := os.WriteFile(outputFile, data, 0644); err != nil {
				log.Fatalf("Failed to write export: %v", err)
			}
			fmt.Printf("Exported %d assets to %s\n", len(assets), outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the export to a file instead of stdout")

	return cmd
}
