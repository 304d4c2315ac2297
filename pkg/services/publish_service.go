package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
)

// PublishAssets copies the asset directories, the manifest document,
// and the thumbnail tree into the publish directory. Missing sources
// are logged and skipped so a partially populated asset root still
// produces a usable site.
func PublishAssets(assetRoot string, assetDirs []string, publishDir string) error {
	if err := os.MkdirAll(publishDir, 0755); err != nil {
		return fmt.Errorf("creating publish directory: %w", err)
	}

	for _, dir := range assetDirs {
		src := filepath.Join(assetRoot, dir)
		if _, err := os.Stat(src); err != nil {
			log.Printf("Directory %s not found, skipping", dir)
			continue
		}
		fmt.Printf("Copying %s...\n", dir)
		if err := copy.Copy(src, filepath.Join(publishDir, dir)); err != nil {
			return fmt.Errorf("copying %s: %w", dir, err)
		}
	}

	manifestSrc := filepath.Join(assetRoot, "manifest.json")
	if _, err := os.Stat(manifestSrc); err == nil {
		if err := copy.Copy(manifestSrc, filepath.Join(publishDir, "manifest.json")); err != nil {
			return fmt.Errorf("copying manifest: %w", err)
		}
	} else {
		log.Println("manifest.json not found, skipping")
	}

	thumbsSrc := filepath.Join(assetRoot, "thumbnails")
	if _, err := os.Stat(thumbsSrc); err == nil {
		fmt.Println("Copying thumbnails...")
		if err := copy.Copy(thumbsSrc, filepath.Join(publishDir, "thumbnails")); err != nil {
			return fmt.Errorf("copying thumbnails: %w", err)
		}
	} else {
		log.Println("Thumbnails directory not found, skipping")
	}

	// Disable Jekyll processing when the publish directory is served
	// from GitHub Pages.
	if err := os.WriteFile(filepath.Join(publishDir, ".nojekyll"), nil, 0644); err != nil {
		log.Printf("Error creating .nojekyll file: %v", err)
	}

	return nil
}
