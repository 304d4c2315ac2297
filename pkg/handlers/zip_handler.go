package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path"
	"time"

	"asset-browser/pkg/cart"
	"asset-browser/pkg/models"
)

// ZipHandler streams a zip archive of the requested asset paths. Paths
// arrive as repeated "path" query parameters; each entry lands in the
// archive under its bare file name. A path that cannot be read is
// skipped, matching the cart's partial-success semantics.
func ZipHandler(assetRoot, appPrefix string) http.HandlerFunc {
	fetcher := cart.FSFetcher{Root: assetRoot}

	return func(w http.ResponseWriter, r *http.Request) {
		paths := r.URL.Query()["path"]
		if len(paths) == 0 {
			http.Error(w, "No paths requested", http.StatusBadRequest)
			return
		}

		items := make([]models.CartItem, 0, len(paths))
		for _, p := range paths {
			items = append(items, models.CartItem{Path: p, Name: path.Base(p)})
		}

		name := cart.ArchiveName(appPrefix, time.Now())
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

		written, err := cart.BuildZip(r.Context(), w, items, fetcher)
		if err != nil {
			// Headers are gone by now; all that is left is logging.
			log.Printf("Error creating zip: %v", err)
			return
		}
		log.Printf("Created %s with %d of %d files", name, written, len(items))
	}
}
