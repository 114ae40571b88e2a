package rainclock

// rect is a pixel rectangle.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(px, py int) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

func (r rect) intersects(x, y, w, h int) bool {
	return x < r.x+r.w && x+w > r.x && y < r.y+r.h && y+h > r.y
}

// overlayContent identifies what the shared overlay region is showing.
type overlayContent uint8

const (
	contentNone overlayContent = iota
	contentClock
	contentSettings
)

// overlay is the single foreground region shared by the clock display and
// the settings panel. While active it suppresses rain drawing underneath
// its rectangle; content repaints only while dirty is set.
type overlay struct {
	active   bool
	dirty    bool
	content  overlayContent
	start    uint32 // activation timestamp
	duration uint32 // lifetime in milliseconds
	bounds   rect
	colMin   int // inclusive glyph-column range the rectangle spans
	colMax   int
}

// arm activates the overlay (or re-arms an active one, superseding its
// deadline) and marks it dirty. It reports whether the overlay was
// previously inactive, in which case the caller clears the rectangle to
// background before content is drawn.
func (o *overlay) arm(content overlayContent, r rect, cellW int, now, duration uint32) (wasInactive bool) {
	wasInactive = !o.active
	o.active = true
	o.dirty = true
	o.content = content
	o.start = now
	o.duration = duration
	o.bounds = r
	o.colMin = r.x / cellW
	o.colMax = (r.x + r.w - 1) / cellW
	return wasInactive
}

// expired reports whether an active overlay has outlived its deadline.
// Modular elapsed-time math keeps this correct across clock wraparound.
func (o *overlay) expired(now uint32) bool {
	return o.active && now-o.start > o.duration
}

func (o *overlay) deactivate() {
	o.active = false
	o.dirty = false
	o.content = contentNone
}

// occludes reports whether the given pixel rectangle intersects the active
// overlay. Rain draws and erases check this before touching the surface.
func (o *overlay) occludes(x, y, w, h int) bool {
	return o.active && o.bounds.intersects(x, y, w, h)
}
