package rainclock

// mode is the router's top-level state: rain with an optional clock
// overlay, or the time-adjustment panel.
type mode uint8

const (
	modeIdle mode = iota
	modeSettings
)

// pollTouch samples the sensor at most once per tick; the latest point
// wins, nothing is queued. A raw (0,0) reading is a known driver artifact
// and is discarded. Valid samples are remapped into display space by axis
// inversion before routing.
func (e *Engine) pollTouch(now uint32) {
	if e.touch == nil {
		return
	}
	rawX, rawY, ok := e.touch.ReadTouch()
	if !ok {
		return
	}
	if rawX == 0 && rawY == 0 {
		return
	}
	e.routeTouch(e.cfg.RawTouchMaxX-rawX, e.cfg.RawTouchMaxY-rawY, now)
}

// routeTouch classifies a display-space touch point, in priority order:
// settings toggle corner, then (in settings mode) the panel controls, then
// the color toggle corner, and finally "show clock" for anything else.
func (e *Engine) routeTouch(x, y int, now uint32) {
	switch {
	case e.cfg.Settings && e.settingsCorner.contains(x, y):
		if now-e.toggleLast < e.cfg.ToggleDebounceMs {
			return
		}
		e.toggleLast = now
		if e.mode == modeSettings {
			e.exitSettings(now)
		} else {
			e.enterSettings(now)
		}
	case e.mode == modeSettings:
		e.routeSettingsTouch(x, y, now)
	case e.cfg.ColorCycling && e.colorCorner.contains(x, y):
		if now-e.colorLast < e.cfg.ToggleDebounceMs {
			return
		}
		e.colorLast = now
		e.CycleScheme()
	default:
		e.showClock(now)
	}
}

// CycleScheme advances to the next color scheme, wrapping at the end of
// the table. An active overlay is marked dirty so its text repaints in the
// new accent color.
func (e *Engine) CycleScheme() {
	e.schemeIdx = (e.schemeIdx + 1) % len(Schemes)
	if e.overlay.active {
		e.overlay.dirty = true
	}
}

// SetScheme selects a color scheme by index into Schemes; out-of-range
// indices are ignored.
func (e *Engine) SetScheme(index int) {
	if index < 0 || index >= len(Schemes) {
		return
	}
	e.schemeIdx = index
	if e.overlay.active {
		e.overlay.dirty = true
	}
}

// Scheme returns the active color scheme.
func (e *Engine) Scheme() Scheme {
	return Schemes[e.schemeIdx]
}
