package cart

import (
	"testing"
	"time"
)

func TestHotZoneOpensAfterDelay(t *testing.T) {
	zone := NewHotZone(300 * time.Millisecond)
	start := time.Now()

	zone.Enter(start)
	if zone.ShouldOpen(start.Add(100 * time.Millisecond)) {
		t.Error("zone opened before the delay elapsed")
	}
	if !zone.ShouldOpen(start.Add(300 * time.Millisecond)) {
		t.Error("zone did not open after the delay")
	}
}

func TestHotZoneLeaveCancels(t *testing.T) {
	zone := NewHotZone(300 * time.Millisecond)
	start := time.Now()

	zone.Enter(start)
	zone.Leave()
	if zone.ShouldOpen(start.Add(time.Second)) {
		t.Error("zone opened after the drag left")
	}
}

func TestHotZoneReEnterKeepsTimestamp(t *testing.T) {
	zone := NewHotZone(300 * time.Millisecond)
	start := time.Now()

	zone.Enter(start)
	zone.Enter(start.Add(200 * time.Millisecond))
	if !zone.ShouldOpen(start.Add(300 * time.Millisecond)) {
		t.Error("re-entering while inside restarted the delay")
	}
}

func TestHotZoneLeaveAndReEnterRestarts(t *testing.T) {
	zone := NewHotZone(300 * time.Millisecond)
	start := time.Now()

	zone.Enter(start)
	zone.Leave()
	zone.Enter(start.Add(200 * time.Millisecond))
	if zone.ShouldOpen(start.Add(300 * time.Millisecond)) {
		t.Error("delay did not restart after leaving the zone")
	}
}

func TestNewHotZoneDefaultDelay(t *testing.T) {
	zone := NewHotZone(0)
	if zone.delay != DefaultHotZoneDelay {
		t.Errorf("delay = %v, want %v", zone.delay, DefaultHotZoneDelay)
	}
}
