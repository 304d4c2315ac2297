package services

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"asset-browser/pkg/manifest"
)

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 128, 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateThumbnails(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "Art", "piece.png")
	writePNG(t, source, 800, 600)
	writeFile(t, root, "Music/song.mp3", "audio") // non-image, ignored

	// Backdate the source so the freshness check is not at the mercy of
	// filesystem timestamp granularity.
	past := time.Now().Add(-time.Minute)
	if err := os.Chtimes(source, past, past); err != nil {
		t.Fatal(err)
	}

	m, err := manifest.Scan(root, []string{"Art", "Music"})
	if err != nil {
		t.Fatal(err)
	}

	outputDir := filepath.Join(root, "thumbnails")
	generated, total, err := GenerateThumbnails(m, root, outputDir, ThumbnailOptions{})
	if err != nil {
		t.Fatalf("GenerateThumbnails: %v", err)
	}
	if total != 1 {
		t.Errorf("total images = %d, want 1", total)
	}
	if generated != 1 {
		t.Errorf("generated = %d, want 1", generated)
	}

	// The thumbnail lands in a parallel tree with a .jpg extension.
	thumb := filepath.Join(outputDir, "Art", "piece.jpg")
	if _, err := os.Stat(thumb); err != nil {
		t.Fatalf("thumbnail missing: %v", err)
	}

	// A second run skips the up-to-date thumbnail.
	generated, _, err = GenerateThumbnails(m, root, outputDir, ThumbnailOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if generated != 0 {
		t.Errorf("second run regenerated %d thumbnails", generated)
	}

	// Force regenerates regardless.
	generated, _, err = GenerateThumbnails(m, root, outputDir, ThumbnailOptions{Force: true})
	if err != nil {
		t.Fatal(err)
	}
	if generated != 1 {
		t.Errorf("forced run generated %d thumbnails, want 1", generated)
	}
}

func TestGenerateThumbnailsUnreadableImage(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Art/broken.png", "not an image")

	m, err := manifest.Scan(root, []string{"Art"})
	if err != nil {
		t.Fatal(err)
	}

	generated, total, err := GenerateThumbnails(m, root, filepath.Join(root, "thumbnails"), ThumbnailOptions{})
	if err != nil {
		t.Fatalf("a broken image should not fail the run: %v", err)
	}
	if total != 1 || generated != 0 {
		t.Errorf("generated %d of %d, want 0 of 1", generated, total)
	}
}
