package rainclock

import "math/rand"

// column is the fall state of a single screen column. head may be negative
// while the stream is still entering from above the top edge.
type column struct {
	head       int    // leading row
	interval   uint32 // milliseconds between advances
	lastUpdate uint32 // monotonic timestamp of the last advance
	tail       int    // rows of trail behind the head
}

// columnSim owns the per-column fall state and advances it on a cooperative
// schedule. All timestamp math is modular on uint32 milliseconds, so clock
// wraparound does not disturb the due check.
type columnSim struct {
	cols        []column
	rows        int
	minTail     int
	maxTail     int
	minInterval int
	maxInterval int
	jitter      int
	rng         *rand.Rand
}

func newColumnSim(n, rows, minTail, maxTail, minInterval, maxInterval, jitter int, rng *rand.Rand) *columnSim {
	s := &columnSim{
		cols:        make([]column, n),
		rows:        rows,
		minTail:     minTail,
		maxTail:     maxTail,
		minInterval: minInterval,
		maxInterval: maxInterval,
		jitter:      jitter,
		rng:         rng,
	}
	s.reset(0)
	return s
}

// reset re-randomizes every column as if freshly respawned and aligns their
// timers to now.
func (s *columnSim) reset(now uint32) {
	for i := range s.cols {
		s.respawn(&s.cols[i])
		s.cols[i].lastUpdate = now
	}
}

// respawn reinitializes a column's fall parameters: a fresh tail length,
// an interval interpolated from it (longer tails move slower), and a head
// above the visible area so the stream re-enters at a random offset. The
// same routine seeds every column at startup.
func (s *columnSim) respawn(c *column) {
	span := s.maxTail - s.minTail
	c.tail = s.minTail
	if span > 0 {
		c.tail += s.rng.Intn(span + 1)
	}
	div := span
	if div < 1 {
		div = 1
	}
	iv := s.minInterval + (c.tail-s.minTail)*(s.maxInterval-s.minInterval)/div
	if s.jitter > 0 {
		iv += s.rng.Intn(2*s.jitter+1) - s.jitter
	}
	if iv < intervalFloorMs {
		iv = intervalFloorMs
	}
	c.interval = uint32(iv)
	c.head = -s.rows + s.rng.Intn(s.rows)
}

// advance moves one column forward if its interval has elapsed. It returns
// the previous and new head rows and the trail length for the renderer;
// moved is false when the column was not yet due.
func (s *columnSim) advance(i int, now uint32) (prevHead, newHead, tail int, moved bool) {
	c := &s.cols[i]
	if now-c.lastUpdate < c.interval {
		return 0, 0, 0, false
	}

	// Advance the timer by exactly one interval rather than snapping to
	// now, so scheduling error does not accumulate. If it still lags by
	// more than one interval the column stalled; snap to bound catch-up.
	c.lastUpdate += c.interval
	if now-c.lastUpdate > c.interval {
		c.lastUpdate = now
	}

	prevHead = c.head
	c.head++
	if c.head >= s.rows+c.tail {
		// The entire stream, head through tail, has left the screen.
		s.respawn(c)
	}
	return prevHead, c.head, c.tail, true
}
