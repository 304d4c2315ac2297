package player

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"sync"

	"asset-browser/pkg/manifest"
)

// NoopSink discards all output. Used when no player binary is available
// and in tests; the state machine behaves identically either way.
type NoopSink struct{}

func (NoopSink) Play(string) error       { return nil }
func (NoopSink) Pause() error            { return nil }
func (NoopSink) Resume() error           { return nil }
func (NoopSink) Stop() error             { return nil }
func (NoopSink) SetVolume(float64) error { return nil }

// ExecSink plays audio by shelling out to an external player binary
// such as mpv or ffplay. Each Play replaces the previous process.
// Pause/resume are driven by stop/cont signals, so the sink is only
// suitable for local use; that is exactly the browse command's setting.
type ExecSink struct {
	binary    string
	assetRoot string

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewExecSink returns a sink driving the named binary, resolving asset
// URLs against assetRoot. It fails when the binary is not on PATH.
func NewExecSink(binary, assetRoot string) (*ExecSink, error) {
	if _, err := exec.LookPath(binary); err != nil {
		return nil, fmt.Errorf("player binary %q not found: %w", binary, err)
	}
	return &ExecSink{binary: binary, assetRoot: assetRoot}, nil
}

// Play starts the binary on the resolved file, stopping any previous
// playback first.
func (s *ExecSink) Play(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	path := filepath.Join(s.assetRoot, manifest.NormalizePath(url))
	cmd := exec.Command(s.binary, "--no-video", "--really-quiet", path)
	if err := cmd.Start(); err != nil {
		return err
	}
	s.cmd = cmd

	go func() {
		// Reap the process; playback end is reported to the player by
		// the UI's tick, not from here.
		_ = cmd.Wait()
	}()
	return nil
}

// Pause suspends the player process.
func (s *ExecSink) Pause() error { return s.signal("stop") }

// Resume continues a suspended player process.
func (s *ExecSink) Resume() error { return s.signal("cont") }

// Stop terminates the player process.
func (s *ExecSink) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	return nil
}

// SetVolume is not supported over plain process control; the state
// machine still tracks it for the UI.
func (s *ExecSink) SetVolume(float64) error { return nil }

func (s *ExecSink) stopLocked() {
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	s.cmd = nil
}

func (s *ExecSink) signal(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == nil || s.cmd.Process == nil {
		return nil
	}
	var sig = sigCont
	if name == "stop" {
		sig = sigStop
	}
	if sig == nil {
		return nil
	}
	return s.cmd.Process.Signal(sig)
}
