package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	AssetRoot   string   // directory containing the asset folders
	ManifestURL string   // manifest location: file path or http(s) URL
	Port        string   // serve port
	AppPrefix   string   // prefix for generated archive names
	AssetDirs   []string // top-level directories to include in the manifest
	ExcludeDirs []string // top-level directories excluded from the flat asset list
}

// ErrAssetRootNotSet is returned when the ASSET_ROOT environment variable is not set
var ErrAssetRootNotSet = errors.New("ASSET_ROOT environment variable not set")

// Defaults mirroring the published site layout.
var (
	defaultAssetDirs   = []string{"Music", "Videos", "Stickers", "Brand Kit", "Art"}
	defaultExcludeDirs = []string{"Brand Kit"}
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	assetRoot := os.Getenv("ASSET_ROOT")
	if assetRoot == "" {
		return nil, ErrAssetRootNotSet
	}

	manifestURL := os.Getenv("MANIFEST_URL")
	if manifestURL == "" {
		manifestURL = assetRoot + "/manifest.json"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	prefix := os.Getenv("APP_PREFIX")
	if prefix == "" {
		prefix = "asset-browser"
	}

	return &Config{
		AssetRoot:   assetRoot,
		ManifestURL: manifestURL,
		Port:        port,
		AppPrefix:   prefix,
		AssetDirs:   splitList(os.Getenv("ASSET_DIRS"), defaultAssetDirs),
		ExcludeDirs: splitList(os.Getenv("EXCLUDE_DIRS"), defaultExcludeDirs),
	}, nil
}

// splitList parses a comma-separated environment value, falling back to
// defaults when the variable is unset.
func splitList(value string, fallback []string) []string {
	if value == "" {
		return append([]string(nil), fallback...)
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Browser URL: http://localhost:%s/\n", c.Port)
	fmt.Printf("Manifest URL: http://localhost:%s/manifest.json\n", c.Port)
}
