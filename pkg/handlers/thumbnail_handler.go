package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"asset-browser/pkg/manifest"
)

// ThumbnailHandler serves files from the thumbnail tree, falling back
// to the full-resolution source asset when no thumbnail exists. A
// missing thumbnail is expected, not an error.
func ThumbnailHandler(assetRoot string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		relative := manifest.NormalizePath(strings.TrimPrefix(r.URL.Path, "/thumbnails"))
		if relative == "" || strings.Contains(relative, "..") {
			http.NotFound(w, r)
			return
		}

		thumb := filepath.Join(assetRoot, "thumbnails", filepath.FromSlash(relative))
		if _, err := os.Stat(thumb); err == nil {
			http.ServeFile(w, r, thumb)
			return
		}

		// Thumbnails are always .jpg; the source keeps its original
		// extension, so try the known image extensions in turn.
		base := strings.TrimSuffix(relative, filepath.Ext(relative))
		for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".webp"} {
			source := filepath.Join(assetRoot, filepath.FromSlash(base+ext))
			if _, err := os.Stat(source); err == nil {
				http.ServeFile(w, r, source)
				return
			}
		}

		http.NotFound(w, r)
	}
}
