package services

import (
	"log"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"asset-browser/pkg/config"
	"asset-browser/pkg/manifest"
	"asset-browser/pkg/models"
	"asset-browser/pkg/player"
)

// Cache keys for the library service.
const (
	manifestKey = "manifest"
	assetsKey   = "assets"
	playlistKey = "playlist"
)

// Service loads the manifest, flattens the asset list, and caches both.
type Service struct {
	config *config.Config
	cache  *cache.Cache
	mu     sync.RWMutex
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	once           sync.Once
)

// InitService initializes the service with the given configuration
func InitService(cfg *config.Config) {
	once.Do(func() {
		defaultService = &Service{
			config: cfg,
			cache:  cache.New(5*time.Minute, 10*time.Minute),
		}
	})
}

// Default returns the initialized service instance.
func Default() *Service {
	return defaultService
}

// GetManifest returns the manifest document.
func GetManifest() (models.Manifest, error) {
	return defaultService.Manifest()
}

// GetAssets returns the flattened asset list.
func GetAssets() ([]models.Asset, error) {
	return defaultService.Assets()
}

// GetPlaylist returns the global audio playlist.
func GetPlaylist() ([]models.PlaylistEntry, error) {
	return defaultService.Playlist()
}

// Invalidate drops all cached state so the next read reloads from disk.
func Invalidate() {
	defaultService.Invalidate()
}

// Manifest returns the manifest, loading it on a cache miss. When the
// manifest document is missing, the library falls back to scanning the
// asset root directly so serve mode works before a build has run.
func (s *Service) Manifest() (models.Manifest, error) {
	s.mu.RLock()
	if cached, found := s.cache.Get(manifestKey); found {
		s.mu.RUnlock()
		return cached.(models.Manifest), nil
	}
	s.mu.RUnlock()

	m, err := manifest.Load(s.config.ManifestURL)
	if err != nil {
		log.Printf("Manifest load failed (%v), scanning %s", err, s.config.AssetRoot)
		m, err = manifest.Scan(s.config.AssetRoot, s.config.AssetDirs)
		if err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.cache.Set(manifestKey, m, cache.DefaultExpiration)
	s.mu.Unlock()
	return m, nil
}

// Assets returns the flattened asset list, computing it once per cache
// window.
func (s *Service) Assets() ([]models.Asset, error) {
	s.mu.RLock()
	if cached, found := s.cache.Get(assetsKey); found {
		s.mu.RUnlock()
		return cached.([]models.Asset), nil
	}
	s.mu.RUnlock()

	m, err := s.Manifest()
	if err != nil {
		return nil, err
	}
	assets := manifest.FlattenAssets(m, s.config.ExcludeDirs)

	s.mu.Lock()
	s.cache.Set(assetsKey, assets, cache.DefaultExpiration)
	s.mu.Unlock()
	return assets, nil
}

// Playlist returns the global audio playlist in traversal order.
func (s *Service) Playlist() ([]models.PlaylistEntry, error) {
	s.mu.RLock()
	if cached, found := s.cache.Get(playlistKey); found {
		s.mu.RUnlock()
		return cached.([]models.PlaylistEntry), nil
	}
	s.mu.RUnlock()

	assets, err := s.Assets()
	if err != nil {
		return nil, err
	}
	playlist := player.BuildPlaylist(assets, s.config.AssetRoot)

	s.mu.Lock()
	s.cache.Set(playlistKey, playlist, cache.DefaultExpiration)
	s.mu.Unlock()
	return playlist, nil
}

// Invalidate drops all cached state.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cache.Flush()
	s.mu.Unlock()
}
