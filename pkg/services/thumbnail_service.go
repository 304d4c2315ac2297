package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"asset-browser/pkg/manifest"
	"asset-browser/pkg/models"
)

// Thumbnail generation defaults matching the published site.
const (
	DefaultThumbnailSize    = 400
	DefaultThumbnailQuality = 80
)

// ThumbnailOptions control thumbnail generation.
type ThumbnailOptions struct {
	Size    int  // max width/height in pixels
	Quality int  // JPEG quality 1-100
	Force   bool // regenerate even when the thumbnail is newer than the source
}

// GenerateThumbnails walks every image asset in the manifest and writes
// an optimized JPEG thumbnail to a parallel tree under outputDir, with
// the extension normalized to .jpg. Existing thumbnails newer than
// their source are skipped unless forced. Returns generated and total
// image counts; a single failed image is logged and does not stop the
// run.
func GenerateThumbnails(m models.Manifest, assetRoot, outputDir string, opts ThumbnailOptions) (int, int, error) {
	if opts.Size <= 0 {
		opts.Size = DefaultThumbnailSize
	}
	if opts.Quality <= 0 {
		opts.Quality = DefaultThumbnailQuality
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, 0, fmt.Errorf("creating thumbnail directory: %w", err)
	}

	assets := manifest.FlattenAssets(m, nil)
	generated, total := 0, 0

	for _, asset := range assets {
		if asset.Kind() != models.KindImage {
			continue
		}
		total++

		source := filepath.Join(assetRoot, manifest.NormalizePath(asset.Path))
		target := thumbnailTarget(outputDir, asset.Path)

		if !opts.Force && upToDate(source, target) {
			continue
		}
		if err := writeThumbnail(source, target, opts); err != nil {
			log.Printf("Failed to generate thumbnail for %s: %v", asset.Path, err)
			continue
		}
		generated++
		if generated%10 == 0 {
			fmt.Printf("  Processed %d images...\n", generated)
		}
	}

	return generated, total, nil
}

// thumbnailTarget maps an asset path to its thumbnail location: same
// relative path, extension replaced with .jpg.
func thumbnailTarget(outputDir, assetPath string) string {
	relative := manifest.NormalizePath(assetPath)
	relative = strings.TrimSuffix(relative, filepath.Ext(relative)) + ".jpg"
	return filepath.Join(outputDir, filepath.FromSlash(relative))
}

// upToDate reports whether the thumbnail exists and is newer than its
// source image.
func upToDate(source, target string) bool {
	srcInfo, err := os.Stat(source)
	if err != nil {
		return false
	}
	thumbInfo, err := os.Stat(target)
	if err != nil {
		return false
	}
	return thumbInfo.ModTime().After(srcInfo.ModTime())
}

func writeThumbnail(source, target string, opts ThumbnailOptions) error {
	img, err := imaging.Open(source, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}

	thumb := imaging.Fit(img, opts.Size, opts.Size, imaging.Lanczos)

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	return imaging.Save(thumb, target, imaging.JPEGQuality(opts.Quality))
}
