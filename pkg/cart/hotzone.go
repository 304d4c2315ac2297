package cart

import "time"

// HotZone models the screen-edge drop target that auto-opens the cart
// panel. Opening is delayed past a short hover threshold so a cursor
// passing through the zone does not flicker the panel.
type HotZone struct {
	delay   time.Duration
	entered time.Time
	inside  bool
}

// DefaultHotZoneDelay is the hover threshold before the panel opens.
const DefaultHotZoneDelay = 300 * time.Millisecond

// NewHotZone returns a hot zone with the given open delay, falling back
// to DefaultHotZoneDelay for zero or negative values.
func NewHotZone(delay time.Duration) *HotZone {
	if delay <= 0 {
		delay = DefaultHotZoneDelay
	}
	return &HotZone{delay: delay}
}

// Enter records that a drag moved into the zone at the given time.
// Re-entering while already inside keeps the original timestamp.
func (z *HotZone) Enter(now time.Time) {
	if z.inside {
		return
	}
	z.inside = true
	z.entered = now
}

// Leave records that the drag moved out, cancelling any pending open.
func (z *HotZone) Leave() {
	z.inside = false
}

// ShouldOpen reports whether the hover has lasted past the delay.
func (z *HotZone) ShouldOpen(now time.Time) bool {
	return z.inside && now.Sub(z.entered) >= z.delay
}
