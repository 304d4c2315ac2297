package cart

import (
	"encoding/json"
	"os"
	"path/filepath"

	"asset-browser/pkg/models"
)

// FileStore keeps the cart in a single JSON slot on disk, read once at
// startup and overwritten on every mutation. Last writer wins when two
// sessions share the file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStorePath places the cart slot under the user cache directory,
// falling back to the system temp dir.
func DefaultStorePath(prefix string) string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, prefix, "zip-cart.json")
}

// Load reads the cart slot. A missing file is an empty cart.
func (s *FileStore) Load() ([]models.CartItem, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Save overwrites the cart slot.
func (s *FileStore) Save(items []models.CartItem) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// MemStore is an in-memory store for tests and for sessions that opt
// out of persistence.
type MemStore struct {
	items []models.CartItem
}

func (s *MemStore) Load() ([]models.CartItem, error) {
	return append([]models.CartItem(nil), s.items...), nil
}

func (s *MemStore) Save(items []models.CartItem) error {
	s.items = append([]models.CartItem(nil), items...)
	return nil
}
