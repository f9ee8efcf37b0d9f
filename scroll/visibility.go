package scroll

import "time"

// visibilityInputs are the values a track's visibility is derived from.
type visibilityInputs struct {
	mode             ShowMode
	enabled          bool
	scrollable       bool
	hovering         bool
	recentlyScrolled bool
	dragging         bool
}

// trackVisible derives whether a track is shown. Tracks with nothing to scroll
// are always hidden.
func trackVisible(in visibilityInputs) bool {
	if !in.enabled || !in.scrollable {
		return false
	}
	switch in.mode {
	case ShowAlways:
		return true
	case ShowHover:
		return in.hovering || in.dragging
	default:
		return in.dragging || in.recentlyScrolled
	}
}

// Visibility holds the two stored inputs of the visibility state machine: the
// hover flag and the debounced "recently scrolled" flag.
type Visibility struct {
	scheduler Scheduler
	timeout   time.Duration
	changed   func()

	hovering         bool
	recentlyScrolled bool
	cancelDecay      func()
}

// NewVisibility returns the state machine. changed is called when the
// recently scrolled flag decays.
func NewVisibility(scheduler Scheduler, changed func()) *Visibility {
	return &Visibility{
		scheduler: scheduler,
		timeout:   RecentlyScrolledTimeout,
		changed:   changed,
	}
}

// MarkScrolled sets the recently scrolled flag and restarts the quiet period.
func (v *Visibility) MarkScrolled() {
	v.recentlyScrolled = true
	if v.cancelDecay != nil {
		v.cancelDecay()
	}
	v.cancelDecay = v.scheduler.AfterFunc(v.timeout, v.decay)
}

func (v *Visibility) decay() {
	v.cancelDecay = nil
	if !v.recentlyScrolled {
		return
	}
	v.recentlyScrolled = false
	if v.changed != nil {
		v.changed()
	}
}

// SetHovering records whether the pointer is over the surface and returns
// true if the flag changed.
func (v *Visibility) SetHovering(hovering bool) bool {
	if v.hovering == hovering {
		return false
	}
	v.hovering = hovering
	return true
}

// Hovering returns the hover flag.
func (v *Visibility) Hovering() bool {
	return v.hovering
}

// RecentlyScrolled returns the debounced scroll flag.
func (v *Visibility) RecentlyScrolled() bool {
	return v.recentlyScrolled
}

// Stop cancels the quiet period timer and clears the stored flags.
func (v *Visibility) Stop() {
	if v.cancelDecay != nil {
		v.cancelDecay()
		v.cancelDecay = nil
	}
	v.recentlyScrolled = false
	v.hovering = false
}

func (v *Visibility) inputs(mode ShowMode, enabled, scrollable, dragging bool) visibilityInputs {
	return visibilityInputs{
		mode:             mode,
		enabled:          enabled,
		scrollable:       scrollable,
		hovering:         v.hovering,
		recentlyScrolled: v.recentlyScrolled,
		dragging:         dragging,
	}
}
