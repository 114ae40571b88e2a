// Package rainclock implements a "digital rain" animation engine with an
// overlaid digital clock and touch-driven settings, for small color
// displays. The engine owns all animation state and is driven by a single
// cooperative Tick; the drawing surface, touch sensor, and time source are
// supplied by the host behind small interfaces.
package rainclock

import (
	"errors"
	"fmt"
	"math/rand"
)

// Engine aggregates the whole animation state: the column simulator, the
// glyph grid, the shared overlay, the touch router, and the active color
// scheme. It is single-writer by construction; exactly one execution
// context may call Tick.
type Engine struct {
	cfg     Config
	display Display
	touch   Toucher
	rtc     TimeSource

	cols, rows   int // glyph grid dimensions
	cellW, cellH int // rain cell size in pixels

	sim    *columnSim
	glyphs glyphSource
	grid   [][]rune // (column, row) -> last drawn glyph

	overlay     overlay
	clockBounds rect
	settings    settingsLayout

	mode      mode
	schemeIdx int

	// Clock overlay state.
	lastMinute int
	clockStr   string

	// Settings panel edit fields.
	editHour   int
	editMinute int

	// Touch hit regions and debounce timestamps.
	settingsCorner rect
	colorCorner    rect
	toggleLast     uint32
	colorLast      uint32
	buttonLast     [numControls]uint32

	started bool
}

// New builds an engine over the given collaborators. touch may be nil for
// a display-only host; rtc may be nil only when both the clock overlay and
// the settings feature are disabled.
func New(cfg Config, display Display, touch Toucher, rtc TimeSource, rng *rand.Rand) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if display == nil {
		return nil, errors.New("display is required")
	}
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	if rtc == nil && (cfg.ClockOverlay || cfg.Settings) {
		return nil, errors.New("time source is required when the clock overlay or settings are enabled")
	}

	w, h := display.Size()
	cellW := baseCellW * cfg.RainScale
	cellH := baseCellH * cfg.RainScale
	cols, rows := w/cellW, h/cellH
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("display %dx%d too small for rain scale %d", w, h, cfg.RainScale)
	}

	grid := make([][]rune, cols)
	for i := range grid {
		grid[i] = make([]rune, rows)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	e := &Engine{
		cfg:            cfg,
		display:        display,
		touch:          touch,
		rtc:            rtc,
		cols:           cols,
		rows:           rows,
		cellW:          cellW,
		cellH:          cellH,
		sim:            newColumnSim(cols, rows, cfg.MinTail, cfg.MaxTail, cfg.MinIntervalMs, cfg.MaxIntervalMs, cfg.JitterMs, rng),
		glyphs:         glyphSource{set: cfg.CharSet, rng: rng},
		grid:           grid,
		clockBounds:    clockRect(w, h, cfg.ClockScale),
		settings:       newSettingsLayout(w, h),
		lastMinute:     -1,
		settingsCorner: rect{0, 0, cfg.CornerSize, cfg.CornerSize},
		colorCorner:    rect{w - cfg.CornerSize, 0, cfg.CornerSize, cfg.CornerSize},
	}
	return e, nil
}

// Start clears the screen, aligns the column timers to now, and shows the
// clock for the first time. Call once before ticking.
func (e *Engine) Start(now uint32) {
	e.reinitRain(now)
	e.started = true
	if e.cfg.ClockOverlay {
		e.showClock(now)
	}
}

// Tick performs one bounded unit of work: one touch sample, one pass over
// the columns, one overlay check. It never blocks; the host invokes it
// repeatedly. Within a tick, touch routing runs before rain advancement
// and the overlay repaints last, so overlay content always lands on top of
// anything the rain drew.
func (e *Engine) Tick(now uint32) {
	if !e.started {
		return
	}

	e.pollTouch(now)

	if e.mode != modeSettings {
		if e.cfg.ClockOverlay {
			e.minuteTick(now)
		}
		for i := 0; i < e.cols; i++ {
			prev, head, tail, moved := e.sim.advance(i, now)
			if moved {
				e.paintColumn(i, prev, head, tail)
			}
		}
	}

	e.overlayTick(now)
}

// overlayTick expires and repaints the shared overlay. A timed-out
// settings panel behaves like a settings-toggle exit: edits are committed
// and the rain field rebuilt.
func (e *Engine) overlayTick(now uint32) {
	if !e.overlay.active {
		return
	}
	if e.overlay.expired(now) {
		if e.mode == modeSettings {
			e.exitSettings(now)
			return
		}
		e.overlay.deactivate()
		return
	}
	if e.overlay.dirty {
		switch e.overlay.content {
		case contentClock:
			e.drawClock()
		case contentSettings:
			e.drawSettings()
		}
		e.overlay.dirty = false
	}
}

// reinitRain clears the glyph grid and the screen and respawns every
// column with timers aligned to now.
func (e *Engine) reinitRain(now uint32) {
	w, h := e.display.Size()
	e.display.FillRect(0, 0, w, h, Background)
	for i := range e.grid {
		for j := range e.grid[i] {
			e.grid[i][j] = ' '
		}
	}
	e.sim.reset(now)
}
