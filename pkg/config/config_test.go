package config

import (
	"errors"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ASSET_ROOT", "/srv/assets")
	t.Setenv("MANIFEST_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_PREFIX", "")
	t.Setenv("ASSET_DIRS", "")
	t.Setenv("EXCLUDE_DIRS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ManifestURL != "/srv/assets/manifest.json" {
		t.Errorf("ManifestURL = %q", cfg.ManifestURL)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.AppPrefix != "asset-browser" {
		t.Errorf("AppPrefix = %q", cfg.AppPrefix)
	}
	if len(cfg.AssetDirs) != 5 {
		t.Errorf("AssetDirs = %v", cfg.AssetDirs)
	}
	if len(cfg.ExcludeDirs) != 1 || cfg.ExcludeDirs[0] != "Brand Kit" {
		t.Errorf("ExcludeDirs = %v", cfg.ExcludeDirs)
	}
}

func TestLoadMissingAssetRoot(t *testing.T) {
	t.Setenv("ASSET_ROOT", "")

	_, err := Load()
	if !errors.Is(err, ErrAssetRootNotSet) {
		t.Errorf("got %v, want ErrAssetRootNotSet", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ASSET_ROOT", "/srv/assets")
	t.Setenv("MANIFEST_URL", "https://example.com/manifest.json")
	t.Setenv("PORT", "9000")
	t.Setenv("APP_PREFIX", "mysite")
	t.Setenv("ASSET_DIRS", "Sounds, Clips")
	t.Setenv("EXCLUDE_DIRS", "Clips")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ManifestURL != "https://example.com/manifest.json" {
		t.Errorf("ManifestURL = %q", cfg.ManifestURL)
	}
	if cfg.ServerAddress() != ":9000" {
		t.Errorf("ServerAddress = %q", cfg.ServerAddress())
	}
	if len(cfg.AssetDirs) != 2 || cfg.AssetDirs[0] != "Sounds" || cfg.AssetDirs[1] != "Clips" {
		t.Errorf("AssetDirs = %v", cfg.AssetDirs)
	}
	if len(cfg.ExcludeDirs) != 1 || cfg.ExcludeDirs[0] != "Clips" {
		t.Errorf("ExcludeDirs = %v", cfg.ExcludeDirs)
	}
}
