package rainclock

import "fmt"

// clockText formats an hour/minute pair for the clock overlay in 12-hour
// form: hour 0 displays as 12, minutes are always zero-padded.
func clockText(hour, minute int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d", h, minute)
}

// clockRect computes the overlay rectangle for the clock text, centered on
// screen and sized for the widest rendering ("HH:MM") so the region never
// moves between four- and five-character times. Pure function of static
// configuration; the engine caches the result.
func clockRect(screenW, screenH, scale int) rect {
	const maxChars = 5
	pad := 2 * scale
	w := maxChars*baseCellW*scale + 2*pad
	h := baseCellH*scale + 2*pad
	return rect{
		x: (screenW - w) / 2,
		y: (screenH - h) / 2,
		w: w,
		h: h,
	}
}

// showClock refreshes the clock text from the time source and activates
// the overlay; a clock-minute tick and a qualifying touch both land here.
func (e *Engine) showClock(now uint32) {
	if !e.cfg.ClockOverlay {
		return
	}
	e.lastMinute = e.rtc.Minute()
	e.clockStr = clockText(e.rtc.Hour(), e.lastMinute)
	if e.overlay.arm(contentClock, e.clockBounds, e.cellW, now, e.cfg.ClockDurationMs) {
		r := e.overlay.bounds
		e.display.FillRect(r.x, r.y, r.w, r.h, Background)
	}
}

// minuteTick re-activates the clock overlay whenever the wall-clock minute
// changes. Checked every tick, independent of touch; suppressed while the
// settings panel is up.
func (e *Engine) minuteTick(now uint32) {
	if m := e.rtc.Minute(); m != e.lastMinute {
		e.showClock(now)
	}
}

// drawClock repaints the overlay's clock content: background fill, then the
// time text centered in the cached rectangle in the scheme's accent color.
func (e *Engine) drawClock() {
	r := e.overlay.bounds
	e.display.FillRect(r.x, r.y, r.w, r.h, Background)

	scale := e.cfg.ClockScale
	textW := len(e.clockStr) * baseCellW * scale
	x := r.x + (r.w-textW)/2
	y := r.y + (r.h-baseCellH*scale)/2
	for _, ch := range e.clockStr {
		e.display.DrawChar(x, y, ch, e.Scheme().Bright, Background, scale)
		x += baseCellW * scale
	}
}
