package rainclock

import (
	"errors"
	"fmt"
)

// Default configuration values for the animation and its controls.
const (
	defaultMinTail          = 8
	defaultMaxTail          = 24
	defaultMinIntervalMs    = 40
	defaultMaxIntervalMs    = 160
	defaultJitterMs         = 15
	defaultClockDurationMs  = 5000
	defaultPanelDurationMs  = 30000
	defaultCornerSize       = 40
	defaultToggleDebounceMs = 400
	defaultButtonDebounceMs = 250
	defaultCharSet          = "ascii"
)

// intervalFloorMs is the hard lower bound for a column's advance interval,
// applied after jitter.
const intervalFloorMs = 20

// Base character cell size in pixels at font scale 1.
const (
	baseCellW = 6
	baseCellH = 8
)

// Charsets stores the predefined character sets a glyph source can draw
// from.
var Charsets = map[string][]rune{
	"ascii":   []rune("!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"),
	"matrix":  []rune("ﾊﾐﾋｰｳｼﾅﾓﾆｻﾜﾂｵﾘｱﾎﾃﾏｹﾒｴｶｷﾑﾕﾗｾﾈｽﾀﾇ"),
	"binary":  []rune("01"),
	"hex":     []rune("0123456789ABCDEF"),
	"symbols": []rune("!@#$%^&*()_+-=[]{}|;:,./<>?"),
	"greek":   []rune("αβγδεζηθικλμνξοπρστυφχψω"),
}

// Config holds the engine configuration. The feature flags consolidate the
// program variants that historically differed only in which controls they
// shipped: a rain-only build disables all three.
type Config struct {
	CharSet []rune // Characters used for stream glyphs

	MinTail int // Shortest trail, in rows
	MaxTail int // Longest trail, in rows

	MinIntervalMs int // Advance interval of the fastest (shortest) stream
	MaxIntervalMs int // Advance interval of the slowest (longest) stream
	JitterMs      int // Uniform jitter applied to a respawned interval

	RainScale  int // Font scale for rain glyphs
	ClockScale int // Font scale for the clock overlay text

	ClockDurationMs uint32 // How long the clock overlay stays up
	PanelDurationMs uint32 // How long the settings panel stays up untouched

	CornerSize       int    // Side length of the corner toggle hit regions, px
	ToggleDebounceMs uint32 // Debounce window for the corner toggles
	ButtonDebounceMs uint32 // Debounce window for each settings control

	// Raw touch coordinate maxima, used for the axis-inversion remap that
	// corrects the sensor's mounting orientation.
	RawTouchMaxX int
	RawTouchMaxY int

	ClockOverlay bool // Clock text overlay (touch + minute tick)
	Settings     bool // Time-adjustment panel
	ColorCycling bool // Color scheme toggle corner
}

// DefaultConfig returns a Config populated with the default values and all
// features enabled. RawTouchMaxX/Y default to the display size and should
// be overridden when the sensor's native range differs.
func DefaultConfig(displayW, displayH int) Config {
	return Config{
		CharSet:          Charsets[defaultCharSet],
		MinTail:          defaultMinTail,
		MaxTail:          defaultMaxTail,
		MinIntervalMs:    defaultMinIntervalMs,
		MaxIntervalMs:    defaultMaxIntervalMs,
		JitterMs:         defaultJitterMs,
		RainScale:        1,
		ClockScale:       4,
		ClockDurationMs:  defaultClockDurationMs,
		PanelDurationMs:  defaultPanelDurationMs,
		CornerSize:       defaultCornerSize,
		ToggleDebounceMs: defaultToggleDebounceMs,
		ButtonDebounceMs: defaultButtonDebounceMs,
		RawTouchMaxX:     displayW,
		RawTouchMaxY:     displayH,
		ClockOverlay:     true,
		Settings:         true,
		ColorCycling:     true,
	}
}

// validate checks the configuration for validity.
func (c *Config) validate() error {
	if len(c.CharSet) == 0 {
		return errors.New("character set cannot be empty")
	}
	if c.MinTail <= 0 || c.MaxTail < c.MinTail {
		return fmt.Errorf("invalid tail length range: [%d, %d]", c.MinTail, c.MaxTail)
	}
	if c.MinIntervalMs < intervalFloorMs || c.MaxIntervalMs < c.MinIntervalMs {
		return fmt.Errorf("invalid interval range: [%d, %d]", c.MinIntervalMs, c.MaxIntervalMs)
	}
	if c.JitterMs < 0 {
		return fmt.Errorf("jitter cannot be negative: got %d", c.JitterMs)
	}
	if c.RainScale < 1 || c.ClockScale < 1 {
		return fmt.Errorf("font scales must be at least 1: rain %d, clock %d", c.RainScale, c.ClockScale)
	}
	if c.ClockDurationMs == 0 || c.PanelDurationMs == 0 {
		return errors.New("overlay durations must be positive")
	}
	if c.CornerSize <= 0 {
		return fmt.Errorf("corner size must be positive: got %d", c.CornerSize)
	}
	if c.RawTouchMaxX <= 0 || c.RawTouchMaxY <= 0 {
		return fmt.Errorf("raw touch maxima must be positive: got %dx%d", c.RawTouchMaxX, c.RawTouchMaxY)
	}
	return nil
}
