package cart

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"asset-browser/pkg/manifest"
	"asset-browser/pkg/models"
)

// Fetcher retrieves the bytes of one asset by path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (io.ReadCloser, error)
}

// FSFetcher resolves asset paths under a local root directory.
type FSFetcher struct {
	Root string
}

// Fetch opens the file for the given asset path. Paths are resolved
// in normalized form so they cannot escape the root.
func (f FSFetcher) Fetch(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(f.Root, manifest.NormalizePath(path)))
}

// ArchiveName returns the date-stamped default archive filename.
func ArchiveName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-assets-%s.zip", prefix, now.Format("2006-01-02"))
}

// BuildZip fetches every cart item and writes it into the archive under
// its bare file name (no directory structure). A failed fetch is logged
// and skipped; the caller gets an archive of everything that could be
// fetched. The returned count is the number of files actually written.
func BuildZip(ctx context.Context, w io.Writer, items []models.CartItem, fetcher Fetcher) (int, error) {
	zw := zip.NewWriter(w)
	written := 0

	for _, item := range items {
		if err := addEntry(ctx, zw, item, fetcher); err != nil {
			log.Printf("Error adding %s to zip: %v", item.Name, err)
			continue
		}
		written++
	}

	if err := zw.Close(); err != nil {
		return written, fmt.Errorf("finalizing archive: %w", err)
	}
	return written, nil
}

func addEntry(ctx context.Context, zw *zip.Writer, item models.CartItem, fetcher Fetcher) error {
	body, err := fetcher.Fetch(ctx, item.Path)
	if err != nil {
		return err
	}
	defer body.Close()

	// Buffer the whole asset before creating the entry: a read failure
	// halfway through must not leave a truncated file in the archive.
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	entry, err := zw.Create(item.Name)
	if err != nil {
		return err
	}
	_, err = entry.Write(data)
	return err
}
