package rainclock

// Display is the drawing surface the engine paints on: a fixed pixel canvas
// of known size. A character cell occupies 6x8 pixels times the scale
// passed with each draw.
type Display interface {
	// Size returns the canvas dimensions in pixels.
	Size() (w, h int)
	// DrawChar draws a single glyph with its top-left corner at the given
	// pixel coordinate, foreground over background.
	DrawChar(x, y int, ch rune, fg, bg Color, scale int)
	// FillRect fills a pixel rectangle with a solid color.
	FillRect(x, y, w, h int, c Color)
	// DrawRect draws a one-pixel rectangle outline.
	DrawRect(x, y, w, h int, c Color)
}

// Toucher is a polling touch sensor. Coordinates are in the sensor's native
// space; the engine remaps them to display space via axis inversion.
type Toucher interface {
	// ReadTouch reports the current touch point, if any.
	ReadTouch() (x, y int, ok bool)
}

// TimeSource is a settable wall clock, typically an RTC. The engine reads
// hour and minute and writes them back when the settings panel commits;
// SetDate completes the surface for hosts that expose date adjustment.
type TimeSource interface {
	Hour() int // 24-hour form
	Minute() int
	SetTime(hour, minute int)
	SetDate(day, month, year int)
}
