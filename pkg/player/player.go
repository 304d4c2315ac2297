// Package player implements the persistent music player: a global
// playlist of every audio asset, transport operations with wraparound,
// and decoupled volume/mute axes. The player owns the one audio
// playback resource; nothing else starts playback.
package player

import (
	"log"

	"asset-browser/pkg/manifest"
	"asset-browser/pkg/models"
)

// Sink is the audio output the player drives. Implementations play one
// URL at a time; starting a new one replaces the current.
type Sink interface {
	Play(url string) error
	Pause() error
	Resume() error
	Stop() error
	SetVolume(volume float64) error
}

// Player holds the playback state machine. It survives every view
// transition; the UI re-reads it after each render instead of owning
// any of it.
type Player struct {
	playlist []models.PlaylistEntry
	current  int
	playing  bool
	volume   float64
	muted    bool
	sink     Sink
}

// New creates a player over the given playlist and sink. A nil sink is
// replaced with a no-op output so the state machine stays usable.
func New(playlist []models.PlaylistEntry, sink Sink) *Player {
	if sink == nil {
		sink = NoopSink{}
	}
	return &Player{
		playlist: playlist,
		volume:   1.0,
		sink:     sink,
	}
}

// Playlist returns the ordered playlist.
func (p *Player) Playlist() []models.PlaylistEntry { return p.playlist }

// CurrentIndex returns the index of the loaded track.
func (p *Player) CurrentIndex() int { return p.current }

// IsPlaying reports whether playback is active.
func (p *Player) IsPlaying() bool { return p.playing }

// Volume returns the current volume in [0, 1].
func (p *Player) Volume() float64 { return p.volume }

// IsMuted reports whether output is muted.
func (p *Player) IsMuted() bool { return p.muted }

// Current returns the loaded track, false when the playlist is empty.
func (p *Player) Current() (models.PlaylistEntry, bool) {
	if len(p.playlist) == 0 {
		return models.PlaylistEntry{}, false
	}
	return p.playlist[p.current], true
}

// IsActiveTrack reports whether the given asset path is the loaded
// track. Comparison is by normalized path, not identity: the grid may
// have re-rendered since the player was last touched.
func (p *Player) IsActiveTrack(path string) bool {
	current, ok := p.Current()
	if !ok {
		return false
	}
	return manifest.SamePath(current.URL, path)
}

// LoadTrack points the player at the track at index. An out-of-range
// index is a no-op; the UI must never be wedged by a stale index.
func (p *Player) LoadTrack(index int) {
	if index < 0 || index >= len(p.playlist) {
		return
	}
	p.current = index
	if p.playing {
		p.startCurrent()
	}
}

// PlayTrack loads the track at index and starts playback.
func (p *Player) PlayTrack(index int) {
	if index < 0 || index >= len(p.playlist) {
		return
	}
	p.current = index
	p.playing = true
	p.startCurrent()
}

// PlayPath starts the playlist entry matching the given asset path, if
// one exists.
func (p *Player) PlayPath(path string) bool {
	for i, entry := range p.playlist {
		if manifest.SamePath(entry.URL, path) {
			p.PlayTrack(i)
			return true
		}
	}
	return false
}

// TogglePlay flips between playing and paused.
func (p *Player) TogglePlay() {
	if len(p.playlist) == 0 {
		return
	}
	if p.playing {
		p.playing = false
		if err := p.sink.Pause(); err != nil {
			log.Printf("Pause failed: %v", err)
		}
		return
	}
	p.playing = true
	if err := p.sink.Resume(); err != nil {
		log.Printf("Resume failed: %v", err)
	}
}

// Next advances to the following track, wrapping to the first after the
// last.
func (p *Player) Next() {
	if len(p.playlist) == 0 {
		return
	}
	p.current = (p.current + 1) % len(p.playlist)
	if p.playing {
		p.startCurrent()
	}
}

// Prev steps back to the previous track, wrapping to the last from the
// first.
func (p *Player) Prev() {
	if len(p.playlist) == 0 {
		return
	}
	p.current = (p.current - 1 + len(p.playlist)) % len(p.playlist)
	if p.playing {
		p.startCurrent()
	}
}

// TrackEnded advances to the next track and keeps playing; the playlist
// loops at the end.
func (p *Player) TrackEnded() {
	if len(p.playlist) == 0 {
		return
	}
	p.current = (p.current + 1) % len(p.playlist)
	p.playing = true
	p.startCurrent()
}

// SetVolume sets the output volume. Zero implies muted; restoring any
// positive volume while muted unmutes.
func (p *Player) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.volume = volume

	if volume == 0 {
		p.muted = true
	} else if p.muted {
		p.muted = false
	}
	p.applyVolume()
}

// ToggleMute mutes the output, preserving the pre-mute volume, or
// restores it.
func (p *Player) ToggleMute() {
	p.muted = !p.muted
	p.applyVolume()
}

func (p *Player) applyVolume() {
	effective := p.volume
	if p.muted {
		effective = 0
	}
	if err := p.sink.SetVolume(effective); err != nil {
		log.Printf("Volume change failed: %v", err)
	}
}

func (p *Player) startCurrent() {
	entry := p.playlist[p.current]
	if err := p.sink.Play(entry.URL); err != nil {
		log.Printf("Playback failed for %s: %v", entry.Name, err)
	}
}
