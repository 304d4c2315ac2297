package cart

import (
	"os"
	"path/filepath"
	"testing"

	"asset-browser/pkg/models"
)

func TestFileStoreRoundtrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "cart", "zip-cart.json"))

	items := []models.CartItem{
		{Path: "/Music/a.mp3", Name: "a.mp3"},
		{Path: "/Art/b.png", Name: "b.png"},
	}
	if err := store.Save(items); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Path != "/Music/a.mp3" || loaded[1].Name != "b.png" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "zip-cart.json"))

	items, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if items != nil {
		t.Errorf("missing file loaded as %+v, want empty", items)
	}
}

func TestFileStoreCorruptSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zip-cart.json")
	if err := os.WriteFile(path, []byte("{corrupt"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("corrupt slot loaded without error")
	}
}

func TestFileStoreLastWriterWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zip-cart.json")
	a := NewFileStore(path)
	b := NewFileStore(path)

	a.Save([]models.CartItem{{Path: "/Music/a.mp3", Name: "a.mp3"}})
	b.Save([]models.CartItem{{Path: "/Art/b.png", Name: "b.png"}})

	items, err := a.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Name != "b.png" {
		t.Errorf("loaded = %+v, want the later write", items)
	}
}
