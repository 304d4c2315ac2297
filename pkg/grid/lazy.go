package grid

import (
	"path/filepath"
	"strings"

	"asset-browser/pkg/manifest"
)

// LazyTracker records which items have already been loaded so that an
// item scrolling back into view does not trigger a second fetch. One
// tracker is shared across the whole grid; per-item watchers would pin
// a resource per image, which does not hold up at hundreds of items.
type LazyTracker struct {
	loaded map[string]struct{}
}

// NewLazyTracker returns an empty tracker.
func NewLazyTracker() *LazyTracker {
	return &LazyTracker{loaded: make(map[string]struct{})}
}

// Observe marks the item loaded and reports whether this was the first
// sighting. Only a first sighting should start a fetch.
func (t *LazyTracker) Observe(path string) bool {
	key := manifest.NormalizePath(path)
	if _, seen := t.loaded[key]; seen {
		return false
	}
	t.loaded[key] = struct{}{}
	return true
}

// Reset forgets all observations, for when the grid is rebuilt against
// a new visible set.
func (t *LazyTracker) Reset() {
	t.loaded = make(map[string]struct{})
}

// ThumbnailPath maps an image asset path to its expected thumbnail: the
// same path under the thumbnails/ root with the extension normalized to
// .jpg. Absence of the thumbnail is not an error; callers fall back to
// the source asset via FallbackURL.
func ThumbnailPath(assetPath string) string {
	normalized := manifest.NormalizePath(assetPath)
	ext := filepath.Ext(normalized)
	return "thumbnails/" + strings.TrimSuffix(normalized, ext) + ".jpg"
}

// FallbackURL returns the URL to use when a thumbnail fails to load:
// the full-resolution source asset.
func FallbackURL(assetPath string) string {
	return "/" + manifest.NormalizePath(assetPath)
}
