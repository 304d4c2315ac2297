package models

import "testing"

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		want MediaKind
	}{
		{"photo.jpg", KindImage},
		{"photo.JPEG", KindImage},
		{"sticker.webp", KindImage},
		{"clip.mp4", KindVideo},
		{"clip.mov", KindVideo},
		{"song.mp3", KindAudio},
		{"song.M4A", KindAudio},
		{"notes.txt", KindOther},
		{"no-extension", KindOther},
	}

	for _, tt := range tests {
		if got := KindOf(tt.name); got != tt.want {
			t.Errorf("KindOf(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAssetDisplayName(t *testing.T) {
	asset := Asset{Name: "Summer Mix.mp3"}
	if got := asset.DisplayName(); got != "Summer Mix" {
		t.Errorf("DisplayName = %q", got)
	}
}

func TestSortedKeys(t *testing.T) {
	m := Manifest{
		"Videos": nil,
		".":      nil,
		"Art":    nil,
		"Music":  nil,
	}

	keys := m.SortedKeys()
	want := []string{"Art", "Music", "Videos", "."}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, keys[i], want[i])
		}
	}
}
