package main

import (
	"log"
	"net/http"
	"os"

	"asset-browser/pkg/config"
	"asset-browser/pkg/handlers"
	"asset-browser/pkg/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize services
	services.InitService(cfg)

	// Set up HTTP handlers
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
