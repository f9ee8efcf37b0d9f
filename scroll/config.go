package scroll

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultMaximumSpeed is the autoscroll speed, in units per frame, reached
	// when the pointer sits on an edge.
	DefaultMaximumSpeed = 15
	// DefaultThreshold is the distance from an edge at which autoscroll starts.
	DefaultThreshold = 50
	// DefaultTrackSize is the thickness of a track.
	DefaultTrackSize = 1
	// DefaultWheelStep is the distance one wheel notch scrolls on hosts that
	// report notches instead of deltas.
	DefaultWheelStep = 3

	// RecentlyScrolledTimeout is the quiet period after which a track shown
	// because of scrolling is hidden again.
	RecentlyScrolledTimeout = time.Second
)

// ShowMode controls when a track is visible.
type ShowMode uint8

const (
	// ShowScrolling shows the track while its thumb is dragged and for a
	// short while after any offset change.
	ShowScrolling ShowMode = iota
	// ShowHover shows the track while the pointer is over the surface or its
	// thumb is dragged.
	ShowHover
	// ShowAlways always shows the track.
	ShowAlways
)

var showModeNames = map[ShowMode]string{
	ShowScrolling: "scrolling",
	ShowHover:     "hover",
	ShowAlways:    "always",
}

// String returns the configuration name of the mode.
func (m ShowMode) String() string {
	if name, ok := showModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ShowMode(%d)", uint8(m))
}

// Next cycles through the modes in declaration order.
func (m ShowMode) Next() ShowMode {
	return (m + 1) % ShowMode(len(showModeNames))
}

// MarshalText implements encoding.TextMarshaler.
func (m ShowMode) MarshalText() ([]byte, error) {
	name, ok := showModeNames[m]
	if !ok {
		return nil, fmt.Errorf("scroll: unknown show mode %d", uint8(m))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ShowMode) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for mode, name := range showModeNames {
		if name == s {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("scroll: unknown show mode %q", text)
}

// TrackClickBehavior configures what a pointer-down on a track, outside its
// thumb, does.
type TrackClickBehavior uint8

const (
	TrackClickNone TrackClickBehavior = iota
	TrackClickPage
	TrackClickJump
)

var trackClickNames = map[TrackClickBehavior]string{
	TrackClickNone: "none",
	TrackClickPage: "page",
	TrackClickJump: "jump",
}

// String returns the configuration name of the behavior.
func (b TrackClickBehavior) String() string {
	if name, ok := trackClickNames[b]; ok {
		return name
	}
	return fmt.Sprintf("TrackClickBehavior(%d)", uint8(b))
}

// MarshalText implements encoding.TextMarshaler.
func (b TrackClickBehavior) MarshalText() ([]byte, error) {
	name, ok := trackClickNames[b]
	if !ok {
		return nil, fmt.Errorf("scroll: unknown track click behavior %d", uint8(b))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *TrackClickBehavior) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for behavior, name := range trackClickNames {
		if name == s {
			*b = behavior
			return nil
		}
	}
	return fmt.Errorf("scroll: unknown track click behavior %q", text)
}

// AxisConfig configures one axis.
type AxisConfig struct {
	ShowMode ShowMode `toml:"show_mode"`
	// Size is the thickness of the track.
	Size float64 `toml:"size"`
	// Enabled set to false removes the axis entirely: it is never drawn and
	// its offset stays at zero.
	Enabled bool `toml:"enabled"`
}

// Config holds the engine configuration.
type Config struct {
	Vertical   AxisConfig `toml:"vertical"`
	Horizontal AxisConfig `toml:"horizontal"`

	// DraggingScrollMaximumSpeed is the autoscroll speed per frame at an edge.
	DraggingScrollMaximumSpeed float64 `toml:"dragging_scroll_maximum_speed"`
	// DraggingScrollThreshold is the distance from an edge within which
	// autoscroll is active.
	DraggingScrollThreshold float64 `toml:"dragging_scroll_threshold"`

	TrackClick TrackClickBehavior `toml:"track_click"`
	WheelStep  float64            `toml:"wheel_step"`
}

// DefaultConfig returns the default configuration: both axes enabled in
// scrolling mode.
func DefaultConfig() Config {
	axis := AxisConfig{
		ShowMode: ShowScrolling,
		Size:     DefaultTrackSize,
		Enabled:  true,
	}
	return Config{
		Vertical:                   axis,
		Horizontal:                 axis,
		DraggingScrollMaximumSpeed: DefaultMaximumSpeed,
		DraggingScrollThreshold:    DefaultThreshold,
		TrackClick:                 TrackClickNone,
		WheelStep:                  DefaultWheelStep,
	}
}

// Axis returns the configuration of the given axis.
func (c Config) Axis(a Axis) AxisConfig {
	if a == Horizontal {
		return c.Horizontal
	}
	return c.Vertical
}

// WithAxis returns a copy of c with the given axis configuration replaced.
func (c Config) WithAxis(a Axis, axis AxisConfig) Config {
	if a == Horizontal {
		c.Horizontal = axis
	} else {
		c.Vertical = axis
	}
	return c
}

// Normalize replaces non-positive sizes, speeds, thresholds and steps with
// their defaults.
func (c Config) Normalize() Config {
	if c.Vertical.Size <= 0 {
		c.Vertical.Size = DefaultTrackSize
	}
	if c.Horizontal.Size <= 0 {
		c.Horizontal.Size = DefaultTrackSize
	}
	if c.DraggingScrollMaximumSpeed <= 0 {
		c.DraggingScrollMaximumSpeed = DefaultMaximumSpeed
	}
	if c.DraggingScrollThreshold <= 0 {
		c.DraggingScrollThreshold = DefaultThreshold
	}
	if c.WheelStep <= 0 {
		c.WheelStep = DefaultWheelStep
	}
	return c
}
