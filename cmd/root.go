package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"asset-browser/pkg/config"
)

// Configuration flags
var (
	assetRoot   string
	manifestURL string
	portNumber  string
	appPrefix   string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "asset-browser",
		Short: "Asset Browser is a tool for browsing and packaging static asset collections",
		Long: `Asset Browser is a command line application for browsing a directory of static
assets described by a manifest. It can browse the collection interactively, serve it
over HTTP, rebuild the manifest, generate thumbnails, and copy assets for publishing.`,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&assetRoot, "asset-root", "r", "", "Set the ASSET_ROOT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&manifestURL, "manifest", "m", "", "Set the MANIFEST_URL (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&appPrefix, "prefix", "", "Set the APP_PREFIX (overrides environment variable)")

	// Add commands to root
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newBuildManifestCmd())
	rootCmd.AddCommand(newGenerateThumbnailsCmd())
	rootCmd.AddCommand(newCopyAssetsCmd())
	rootCmd.AddCommand(newExportCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	if assetRoot != "" {
		os.Setenv("ASSET_ROOT", assetRoot)
	}

	if manifestURL != "" {
		os.Setenv("MANIFEST_URL", manifestURL)
	}

	if portNumber != "" {
		os.Setenv("PORT", portNumber)
	}

	if appPrefix != "" {
		os.Setenv("APP_PREFIX", appPrefix)
	}

	// Load configuration from environment variables (potentially set above)
	return config.Load()
}
