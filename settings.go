package rainclock

import "fmt"

// Font scales used inside the settings panel.
const (
	settingsTitleScale   = 2
	settingsReadoutScale = 3
	settingsButtonScale  = 2
)

const settingsTitle = "SET TIME"

// Control indices into the settings hit regions and their debounce slots.
const (
	ctrlHourUp = iota
	ctrlHourDown
	ctrlMinuteUp
	ctrlMinuteDown
	numControls
)

// settingsLayout is the settings panel geometry: the full-screen panel, the
// time readout, and the four increment/decrement controls. Computed once
// from the screen dimensions and cached.
type settingsLayout struct {
	panel   rect
	readout rect
	buttons [numControls]rect
}

func newSettingsLayout(screenW, screenH int) settingsLayout {
	const (
		btnW, btnH = 36, 28
		btnGap     = 8
	)
	readoutW := 5 * baseCellW * settingsReadoutScale
	readoutH := baseCellH * settingsReadoutScale
	rx := (screenW - readoutW) / 2
	ry := (screenH - readoutH) / 2

	// The hour pair occupies the first two character cells of the readout,
	// the minute pair the last two; each button centers over its pair.
	hourCx := rx + baseCellW*settingsReadoutScale
	minuteCx := rx + 4*baseCellW*settingsReadoutScale

	var l settingsLayout
	l.panel = rect{0, 0, screenW, screenH}
	l.readout = rect{rx, ry, readoutW, readoutH}
	l.buttons[ctrlHourUp] = rect{hourCx - btnW/2, ry - btnGap - btnH, btnW, btnH}
	l.buttons[ctrlHourDown] = rect{hourCx - btnW/2, ry + readoutH + btnGap, btnW, btnH}
	l.buttons[ctrlMinuteUp] = rect{minuteCx - btnW/2, ry - btnGap - btnH, btnW, btnH}
	l.buttons[ctrlMinuteDown] = rect{minuteCx - btnW/2, ry + readoutH + btnGap, btnW, btnH}
	return l
}

// enterSettings captures the current time into the editable fields and
// puts the panel up. The panel covers the whole screen, so rain and the
// clock overlay stay suppressed until it closes.
func (e *Engine) enterSettings(now uint32) {
	e.editHour = e.rtc.Hour()
	e.editMinute = e.rtc.Minute()
	e.mode = modeSettings
	if e.overlay.arm(contentSettings, e.settings.panel, e.cellW, now, e.cfg.PanelDurationMs) {
		r := e.overlay.bounds
		e.display.FillRect(r.x, r.y, r.w, r.h, Background)
	}
}

// exitSettings commits the edited time back to the time source, rebuilds
// the rain field, and brings the clock overlay back up.
func (e *Engine) exitSettings(now uint32) {
	e.rtc.SetTime(e.editHour, e.editMinute)
	e.mode = modeIdle
	e.overlay.deactivate()
	e.reinitRain(now)
	e.showClock(now)
}

// routeSettingsTouch dispatches a touch inside the settings panel to the
// four controls. Each control is independently debounced; a successful hit
// redraws only the time readout.
func (e *Engine) routeSettingsTouch(x, y int, now uint32) {
	for i := 0; i < numControls; i++ {
		if !e.settings.buttons[i].contains(x, y) {
			continue
		}
		if now-e.buttonLast[i] < e.cfg.ButtonDebounceMs {
			return
		}
		e.buttonLast[i] = now
		switch i {
		case ctrlHourUp:
			e.editHour = (e.editHour + 1) % 24
		case ctrlHourDown:
			e.editHour = (e.editHour + 23) % 24
		case ctrlMinuteUp:
			e.editMinute = (e.editMinute + 1) % 60
		case ctrlMinuteDown:
			e.editMinute = (e.editMinute + 59) % 60
		}
		e.drawReadout()
		return
	}
}

// drawSettings repaints the full panel: border, title, controls, readout.
func (e *Engine) drawSettings() {
	p := e.settings.panel
	e.display.FillRect(p.x, p.y, p.w, p.h, Background)
	e.display.DrawRect(p.x, p.y, p.w, p.h, e.Scheme().Bright)

	e.drawTextCentered(settingsTitle, p.x+p.w/2, p.y+2*baseCellH, settingsTitleScale, e.Scheme().Bright)
	for i := 0; i < numControls; i++ {
		b := e.settings.buttons[i]
		e.display.DrawRect(b.x, b.y, b.w, b.h, e.Scheme().Bright)
		label := "+"
		if i == ctrlHourDown || i == ctrlMinuteDown {
			label = "-"
		}
		e.drawTextCentered(label, b.x+b.w/2, b.y+(b.h-baseCellH*settingsButtonScale)/2, settingsButtonScale, e.Scheme().Head)
	}
	e.drawReadout()
}

// drawReadout repaints the editable time in 24-hour form.
func (e *Engine) drawReadout() {
	r := e.settings.readout
	e.display.FillRect(r.x, r.y, r.w, r.h, Background)
	text := fmt.Sprintf("%02d:%02d", e.editHour, e.editMinute)
	x := r.x
	for _, ch := range text {
		e.display.DrawChar(x, r.y, ch, e.Scheme().Head, Background, settingsReadoutScale)
		x += baseCellW * settingsReadoutScale
	}
}

// drawTextCentered draws text horizontally centered on cx at the given top
// edge y.
func (e *Engine) drawTextCentered(text string, cx, y, scale int, fg Color) {
	x := cx - len(text)*baseCellW*scale/2
	for _, ch := range text {
		e.display.DrawChar(x, y, ch, fg, Background, scale)
		x += baseCellW * scale
	}
}
