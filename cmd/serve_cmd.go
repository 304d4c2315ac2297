package cmd

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"asset-browser/pkg/config"
	"asset-browser/pkg/handlers"
	"asset-browser/pkg/services"
)

// newServeCmd creates a new command for serving the asset collection
func newServeCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the asset collection via HTTP.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			services.InitService(cfg)

			if watch {
				watcher, err := services.WatchAssetRoot(cfg.AssetRoot, time.Second)
				if err != nil {
					log.Printf("Asset watching disabled: %v", err)
				} else {
					defer watcher.Close()
				}
			}

			serveWebsite(cfg)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", true, "Reload the asset list when the asset root changes")

	return cmd
}

// serveWebsite runs the web server to serve the asset collection
func serveWebsite(cfg *config.Config) {
	fileServer := http.FileServer(http.Dir(cfg.AssetRoot))
	http.Handle("/", fileServer)
	http.HandleFunc("/index", handlers.IndexHandler)
	http.HandleFunc("/manifest.json", handlers.ManifestHandler)
	http.HandleFunc("/feed", handlers.FeedHandler)
	http.HandleFunc("/zip", handlers.ZipHandler(cfg.AssetRoot, cfg.AppPrefix))
	http.HandleFunc("/thumbnails/", handlers.ThumbnailHandler(cfg.AssetRoot))

	// Start server
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), nil); err != nil {
		log.Printf("Server error: %v", err)
		os.Exit(1)
	}
}
