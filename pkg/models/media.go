package models

import (
	"path/filepath"
	"strings"
)

// MediaKind classifies an asset by its file extension.
type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
	KindAudio MediaKind = "audio"
	KindOther MediaKind = "other"
)

var kindByExtension = map[string]MediaKind{
	".jpg":  KindImage,
	".jpeg": KindImage,
	".png":  KindImage,
	".gif":  KindImage,
	".webp": KindImage,
	".mp4":  KindVideo,
	".webm": KindVideo,
	".mov":  KindVideo,
	".mp3":  KindAudio,
	".wav":  KindAudio,
	".ogg":  KindAudio,
	".m4a":  KindAudio,
}

// KindOf returns the media kind for a file name, KindOther when the
// extension is not a recognized media type.
func KindOf(name string) MediaKind {
	ext := strings.ToLower(filepath.Ext(name))
	if kind, ok := kindByExtension[ext]; ok {
		return kind
	}
	return KindOther
}

// IsMedia reports whether the file name has a recognized media extension.
func IsMedia(name string) bool {
	return KindOf(name) != KindOther
}

// Kind returns the media kind of the asset.
func (a Asset) Kind() MediaKind {
	return KindOf(a.Name)
}

// IsAudio reports whether the asset is an audio file.
func (a Asset) IsAudio() bool {
	return a.Kind() == KindAudio
}

// DisplayName returns the asset name without its extension.
func (a Asset) DisplayName() string {
	return strings.TrimSuffix(a.Name, filepath.Ext(a.Name))
}
