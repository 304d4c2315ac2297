package player

import (
	"os"
	"path/filepath"

	"github.com/dhowden/tag"

	"asset-browser/pkg/manifest"
	"asset-browser/pkg/models"
)

// BuildPlaylist collects every audio asset into playlist entries, in
// traversal order. The playlist is global; folder filtering never
// narrows it. When assetRoot is non-empty and the file carries readable
// tags, the embedded title becomes the display name; otherwise the file
// name without its extension is used.
func BuildPlaylist(assets []models.Asset, assetRoot string) []models.PlaylistEntry {
	var playlist []models.PlaylistEntry
	for _, asset := range assets {
		if !asset.IsAudio() {
			continue
		}
		playlist = append(playlist, models.PlaylistEntry{
			Name:        asset.Name,
			URL:         "/" + manifest.NormalizePath(asset.Path),
			DisplayName: displayName(asset, assetRoot),
		})
	}
	return playlist
}

func displayName(asset models.Asset, assetRoot string) string {
	fallback := asset.DisplayName()
	if assetRoot == "" {
		return fallback
	}

	f, err := os.Open(filepath.Join(assetRoot, manifest.NormalizePath(asset.Path)))
	if err != nil {
		return fallback
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil || meta.Title() == "" {
		return fallback
	}
	return meta.Title()
}
