package rainclock

import (
	"math/rand"
	"testing"
)

// fakeDisplay records every drawing call, in order, like a logic analyzer
// on the display bus.
type drawOp struct {
	kind       string // "char", "fill", "rect"
	x, y, w, h int
	ch         rune
	fg         Color
	scale      int
}

type fakeDisplay struct {
	width, height int
	ops           []drawOp
}

func (d *fakeDisplay) Size() (int, int) { return d.width, d.height }

func (d *fakeDisplay) DrawChar(x, y int, ch rune, fg, bg Color, scale int) {
	d.ops = append(d.ops, drawOp{kind: "char", x: x, y: y, ch: ch, fg: fg, scale: scale})
}

func (d *fakeDisplay) FillRect(x, y, w, h int, c Color) {
	d.ops = append(d.ops, drawOp{kind: "fill", x: x, y: y, w: w, h: h, fg: c})
}

func (d *fakeDisplay) DrawRect(x, y, w, h int, c Color) {
	d.ops = append(d.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h, fg: c})
}

func (d *fakeDisplay) reset() { d.ops = nil }

// fakeTouch reports a single settable touch point.
type fakeTouch struct {
	x, y int
	down bool
}

func (t *fakeTouch) ReadTouch() (int, int, bool) { return t.x, t.y, t.down }

// press sets the touch point in display coordinates, applying the inverse
// of the engine's axis remap.
func (t *fakeTouch) press(e *Engine, screenX, screenY int) {
	t.x = e.cfg.RawTouchMaxX - screenX
	t.y = e.cfg.RawTouchMaxY - screenY
	t.down = true
}

func (t *fakeTouch) release() { t.down = false }

// fakeTime is a settable wall clock.
type fakeTime struct {
	hour, minute int
	setCalls     int
}

func (t *fakeTime) Hour() int   { return t.hour }
func (t *fakeTime) Minute() int { return t.minute }

func (t *fakeTime) SetTime(hour, minute int) {
	t.hour, t.minute = hour, minute
	t.setCalls++
}

func (t *fakeTime) SetDate(day, month, year int) {}

func newTestRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

func newTestEngine(t *testing.T) (*Engine, *fakeDisplay, *fakeTouch, *fakeTime) {
	t.Helper()
	d := &fakeDisplay{width: 320, height: 240}
	tc := &fakeTouch{}
	rtc := &fakeTime{hour: 10, minute: 30}
	e, err := New(DefaultConfig(320, 240), d, tc, rtc, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, d, tc, rtc
}

func countKind(ops []drawOp, kind string) int {
	n := 0
	for _, op := range ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func TestNewValidation(t *testing.T) {
	d := &fakeDisplay{width: 320, height: 240}
	rtc := &fakeTime{}
	rng := rand.New(rand.NewSource(1))

	bad := DefaultConfig(320, 240)
	bad.CharSet = nil
	if _, err := New(bad, d, nil, rtc, rng); err == nil {
		t.Error("expected error for empty charset")
	}

	if _, err := New(DefaultConfig(320, 240), nil, nil, rtc, rng); err == nil {
		t.Error("expected error for nil display")
	}

	if _, err := New(DefaultConfig(320, 240), d, nil, nil, rng); err == nil {
		t.Error("expected error for nil time source with clock overlay enabled")
	}

	rainOnly := DefaultConfig(320, 240)
	rainOnly.ClockOverlay = false
	rainOnly.Settings = false
	rainOnly.ColorCycling = false
	if _, err := New(rainOnly, d, nil, nil, rng); err != nil {
		t.Errorf("rain-only engine should not need a time source: %v", err)
	}

	tiny := &fakeDisplay{width: 4, height: 4}
	if _, err := New(DefaultConfig(4, 4), tiny, nil, rtc, rng); err == nil {
		t.Error("expected error for display smaller than one cell")
	}
}

func TestStartShowsClock(t *testing.T) {
	e, d, _, _ := newTestEngine(t)
	e.Start(1000)
	e.Tick(1000)

	if !e.overlay.active || e.overlay.content != contentClock {
		t.Fatalf("clock overlay not active after start: %+v", e.overlay)
	}
	if e.clockStr != "10:30" {
		t.Errorf("clock text = %q, want %q", e.clockStr, "10:30")
	}
	if countKind(d.ops, "char") == 0 {
		t.Error("no glyphs drawn for the clock overlay")
	}
}

func TestOverlayRepaintsOnlyWhileDirty(t *testing.T) {
	e, d, _, _ := newTestEngine(t)
	e.Start(1000)
	e.Tick(1000)

	clockChars := func() int {
		n := 0
		for _, op := range d.ops {
			if op.kind == "char" && op.scale == e.cfg.ClockScale {
				n++
			}
		}
		return n
	}

	if clockChars() == 0 {
		t.Fatal("clock not painted on first tick")
	}
	d.reset()

	// Not dirty anymore: the next tick must not repaint the clock text.
	e.Tick(1001)
	if clockChars() != 0 {
		t.Error("clock repainted without being marked dirty")
	}
}

func TestOverlayPaintsAfterRain(t *testing.T) {
	e, d, _, _ := newTestEngine(t)
	e.Start(0)
	e.Tick(0)
	d.reset()

	// Force a repaint and make every column due in the same tick.
	e.overlay.dirty = true
	e.Tick(1000)

	firstClock := -1
	for i, op := range d.ops {
		if op.kind == "char" && op.scale == e.cfg.ClockScale {
			firstClock = i
			break
		}
	}
	if firstClock < 0 {
		t.Fatal("overlay did not repaint")
	}
	for _, op := range d.ops[firstClock:] {
		if op.kind == "char" && op.scale == e.cfg.RainScale {
			t.Fatal("rain glyph drawn after overlay content")
		}
	}
}

func TestSchemeChangeMarksOverlayDirty(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	e.Start(1000)
	e.Tick(1000)
	if e.overlay.dirty {
		t.Fatal("overlay still dirty after tick")
	}

	e.CycleScheme()
	if !e.overlay.dirty {
		t.Error("scheme change did not mark active overlay dirty")
	}
}

func TestSchemeCyclingIsCyclic(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	start := e.schemeIdx
	for i := 0; i < len(Schemes); i++ {
		e.CycleScheme()
	}
	if e.schemeIdx != start {
		t.Errorf("cycling %d times moved scheme %d -> %d", len(Schemes), start, e.schemeIdx)
	}
}

func TestClockOverlayExpires(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	e.Start(1000)
	e.Tick(1000)

	e.Tick(1000 + e.cfg.ClockDurationMs) // still inside the window
	if !e.overlay.active {
		t.Fatal("overlay expired before its deadline")
	}
	e.Tick(1000 + e.cfg.ClockDurationMs + 1)
	if e.overlay.active {
		t.Error("overlay still active past its deadline")
	}
}

func TestMinuteChangeReactivatesClock(t *testing.T) {
	e, _, _, rtc := newTestEngine(t)
	e.Start(1000)
	e.Tick(1000)

	// Let the overlay lapse, then roll the minute over.
	e.Tick(1000 + e.cfg.ClockDurationMs + 1)
	if e.overlay.active {
		t.Fatal("overlay should have expired")
	}
	rtc.minute = 31
	e.Tick(1000 + e.cfg.ClockDurationMs + 2)
	if !e.overlay.active || e.overlay.content != contentClock {
		t.Fatal("minute change did not re-activate the clock overlay")
	}
	if e.clockStr != "10:31" {
		t.Errorf("clock text = %q, want %q", e.clockStr, "10:31")
	}
}

func TestTickBeforeStartIsNoop(t *testing.T) {
	e, d, _, _ := newTestEngine(t)
	d.reset()
	e.Tick(5000)
	if len(d.ops) != 0 {
		t.Errorf("tick before Start drew %d ops", len(d.ops))
	}
}
