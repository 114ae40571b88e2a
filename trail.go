package rainclock

// paintColumn renders one advanced column: it erases the cell falling off
// the trail's far end, draws the new head glyph, and repaints the cells
// crossing the two fade boundaries. Rows outside the visible range are
// silently skipped.
func (e *Engine) paintColumn(col, prevHead, newHead, tail int) {
	e.eraseCell(col, newHead-tail)

	if newHead >= 0 && newHead < e.rows {
		ch := e.glyphs.next()
		e.grid[col][newHead] = ch
		e.drawCell(col, newHead, ch, e.Scheme().Head)
	}
	if prevHead >= 0 && prevHead < e.rows {
		e.drawCell(col, prevHead, e.grid[col][prevHead], e.Scheme().Bright)
	}

	// The bright zone is roughly the first fifth of the trail and the dark
	// zone the last fifth; the cells crossing those boundaries this tick
	// are the only ones that need a new color.
	brightDist := tail / 5
	if brightDist > tail-1 {
		brightDist = tail - 1
	}
	if brightDist < 1 {
		brightDist = 1
	}
	darkStart := tail * 4 / 5
	if darkStart > tail-1 {
		darkStart = tail - 1
	}
	if darkStart < brightDist+2 {
		darkStart = brightDist + 2
	}

	if dim := newHead - (brightDist + 1); brightDist+1 < darkStart && dim >= 0 && dim < e.rows {
		e.drawCell(col, dim, e.grid[col][dim], e.Scheme().Dim)
	}
	if dark := newHead - darkStart; dark >= 0 && dark < e.rows {
		e.drawCell(col, dark, e.grid[col][dark], e.Scheme().Dark)
	}
}

// drawCell draws a glyph at a grid cell unless the cell lies under the
// active overlay. This self-censoring is the whole compositing mechanism:
// no damage regions, no back buffer.
func (e *Engine) drawCell(col, row int, ch rune, fg Color) {
	x, y := col*e.cellW, row*e.cellH
	if e.overlay.occludes(x, y, e.cellW, e.cellH) {
		return
	}
	e.display.DrawChar(x, y, ch, fg, Background, e.cfg.RainScale)
}

// eraseCell fills a grid cell with the background color, subject to the
// same overlay keep-out as drawCell.
func (e *Engine) eraseCell(col, row int) {
	if row < 0 || row >= e.rows {
		return
	}
	x, y := col*e.cellW, row*e.cellH
	if e.overlay.occludes(x, y, e.cellW, e.cellH) {
		return
	}
	e.display.FillRect(x, y, e.cellW, e.cellH, Background)
}
