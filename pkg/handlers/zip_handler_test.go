package handlers

import (
	"archive/zip"
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeAsset(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestZipHandler(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "Music/a.mp3", "audio")
	writeAsset(t, root, "Art/b.png", "image")

	handler := ZipHandler(root, "mysite")
	req := httptest.NewRequest(http.MethodGet, "/zip?path=/Music/a.mp3&path=/Art/b.png", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/zip" {
		t.Errorf("Content-Type = %q", ct)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "mysite-assets-") || !strings.Contains(disposition, ".zip") {
		t.Errorf("Content-Disposition = %q", disposition)
	}

	body, _ := io.ReadAll(rec.Body)
	reader, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("response is not a zip: %v", err)
	}
	if len(reader.File) != 2 {
		t.Errorf("archive has %d entries, want 2", len(reader.File))
	}
	if reader.File[0].Name != "a.mp3" {
		t.Errorf("first entry = %q, want bare file name", reader.File[0].Name)
	}
}

func TestZipHandlerSkipsMissing(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "Music/a.mp3", "audio")

	handler := ZipHandler(root, "mysite")
	req := httptest.NewRequest(http.MethodGet, "/zip?path=/Music/a.mp3&path=/Music/gone.mp3", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	body, _ := io.ReadAll(rec.Body)
	reader, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("response is not a zip: %v", err)
	}
	if len(reader.File) != 1 {
		t.Errorf("archive has %d entries, want the 1 readable file", len(reader.File))
	}
}

func TestZipHandlerNoPaths(t *testing.T) {
	handler := ZipHandler(t.TempDir(), "mysite")
	req := httptest.NewRequest(http.MethodGet, "/zip", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
