package coaster

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/xqrs/coaster/scroll"
)

// TerminalConfig returns the engine configuration tuned for a character
// grid, where one unit is a cell rather than a pixel.
func TerminalConfig() scroll.Config {
	cfg := scroll.DefaultConfig()
	cfg.DraggingScrollThreshold = 3
	cfg.DraggingScrollMaximumSpeed = 1
	cfg.WheelStep = 3
	return cfg
}

// Scroller is a ScrollView driven by a scroll engine, with overlay scroll
// bars along its right and bottom edges. Mouse wheel, thumb drags, track
// clicks and dragging past the edges all scroll it.
type Scroller struct {
	*ScrollView

	engine *scroll.Engine
	bars   [2]*ScrollBar

	// pressed is set between a left button press inside the scroller and its
	// release.
	pressed bool
}

// NewScroller returns a scroller whose frames and timers run on scheduler,
// which is usually the Application displaying it.
func NewScroller(scheduler scroll.Scheduler, config scroll.Config) *Scroller {
	s := &Scroller{
		ScrollView: NewScrollView(),
		bars:       [2]*ScrollBar{scroll.Vertical: NewScrollBar(scroll.Vertical), scroll.Horizontal: NewScrollBar(scroll.Horizontal)},
	}
	s.engine = scroll.New(s.ScrollView, scheduler, cellConfig(config))
	s.engine.SetChangedFunc(s.MarkDirty)
	s.engine.Attach()
	return s
}

// Engine returns the scroll engine.
func (s *Scroller) Engine() *scroll.Engine {
	return s.engine
}

// Surface returns the view the engine scrolls.
func (s *Scroller) Surface() *ScrollView {
	return s.ScrollView
}

// ScrollBar returns the scroll bar of the given axis.
func (s *Scroller) ScrollBar(a scroll.Axis) *ScrollBar {
	return s.bars[a]
}

// SetConfig replaces the engine configuration. Track sizes are rounded to
// whole cells.
func (s *Scroller) SetConfig(config scroll.Config) *Scroller {
	s.engine.SetConfig(cellConfig(config))
	return s
}

// cellConfig rounds the track sizes of config to the whole number of cells a
// scroll bar is drawn with, so the engine hit-tests the drawn area.
func cellConfig(config scroll.Config) scroll.Config {
	config.Vertical.Size = max(math.Round(config.Vertical.Size), 1)
	config.Horizontal.Size = max(math.Round(config.Horizontal.Size), 1)
	return config
}

// Close detaches the engine and cancels its pending frames and timers.
func (s *Scroller) Close() {
	s.engine.Detach()
}

// Draw draws the content and the visible scroll bars on top of it.
func (s *Scroller) Draw(screen tcell.Screen) {
	if !s.engine.Attached() {
		s.ScrollView.Draw(screen)
		return
	}

	// Layout pushes the offset into the view, so it has to come first.
	layout := s.engine.Layout()
	s.ScrollView.Draw(screen)
	x, y, width, height := s.GetInnerRect()
	for a, bar := range s.bars {
		axis := scroll.Axis(a)
		state := layout.Axis(axis)
		if !state.Visible {
			continue
		}
		size := int(s.engine.Config().Axis(axis).Size)
		if axis == scroll.Vertical {
			bar.SetRect(x+max(width-size, 0), y, min(size, width), height)
		} else {
			bar.SetRect(x, y+max(height-size, 0), width, min(size, height))
		}
		bar.SetThumb(state.Thumb)
		bar.SetActive(s.engine.Dragging(axis))
		bar.Draw(screen)
	}
}

// MouseHandler feeds the engine. Coordinates are passed as cell centers.
func (s *Scroller) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if !s.engine.Attached() {
		return nil, nil
	}

	x, y := event.Position()
	px, py := float64(x)+0.5, float64(y)+0.5
	inside := s.InRect(x, y)

	var cmd Command
	var capture Primitive
	switch action {
	case MouseMove:
		s.engine.SetHovering(inside)
		if s.pressed {
			s.engine.PointerMove(px, py)
			capture = s
		}
	case MouseLeftDown:
		if !inside {
			return nil, nil
		}
		s.pressed = true
		s.engine.PointerDown(px, py)
		capture = s
		cmd = SetFocusCommand{Target: s}
	case MouseLeftUp:
		if !s.pressed {
			return nil, nil
		}
		s.pressed = false
		s.engine.PointerUp()
	case MouseScrollUp, MouseScrollDown, MouseScrollLeft, MouseScrollRight:
		if !inside {
			return nil, nil
		}
		dx, dy := wheelDelta(action, event.Modifiers(), s.engine.Config().WheelStep)
		if s.engine.Wheel(dx, dy) {
			return nil, ConsumeEventCommand{}
		}
		return nil, nil
	default:
		if s.pressed {
			capture = s
		}
	}

	if s.IsDirty() {
		cmd = AppendCommand(cmd, RedrawCommand{})
	}
	return capture, cmd
}

// wheelDelta converts one wheel notch into a delta in cells. Shift turns
// vertical wheel motion into horizontal motion.
func wheelDelta(action MouseAction, mods tcell.ModMask, step float64) (dx, dy float64) {
	switch action {
	case MouseScrollUp:
		dy = -step
	case MouseScrollDown:
		dy = step
	case MouseScrollLeft:
		dx = -step
	case MouseScrollRight:
		dx = step
	}
	if mods&tcell.ModShift != 0 && dx == 0 {
		dx, dy = dy, 0
	}
	return dx, dy
}

var _ Primitive = &Scroller{}
