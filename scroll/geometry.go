package scroll

// Axis identifies one of the two scroll directions.
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

// axes lists both directions in the order they are processed.
var axes = [...]Axis{Vertical, Horizontal}

// String returns the lower-case axis name.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Size is a height/width pair. It describes both the content extent and the
// viewport size of a surface.
type Size struct {
	Height float64
	Width  float64
}

// Along returns the length of s along the given axis.
func (s Size) Along(a Axis) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

func (s Size) normalize() Size {
	return Size{Height: max(s.Height, 0), Width: max(s.Width, 0)}
}

// Offset is a scroll position in content-space units.
type Offset struct {
	Top  float64
	Left float64
}

// Along returns the offset along the given axis.
func (o Offset) Along(a Axis) float64 {
	if a == Horizontal {
		return o.Left
	}
	return o.Top
}

// With returns a copy of o with the given axis set to v.
func (o Offset) With(a Axis, v float64) Offset {
	if a == Horizontal {
		o.Left = v
	} else {
		o.Top = v
	}
	return o
}

// Rect is a box in the host's viewport coordinate space. Top/Left are
// inclusive, Bottom/Right exclusive.
type Rect struct {
	Top, Left, Bottom, Right float64
}

// Contains reports whether the point (x, y) lies within r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// start and end return the edges of r along the given axis.
func (r Rect) start(a Axis) float64 {
	if a == Horizontal {
		return r.Left
	}
	return r.Top
}

func (r Rect) end(a Axis) float64 {
	if a == Horizontal {
		return r.Right
	}
	return r.Bottom
}

// pointerAlong picks the coordinate of a pointer that moves along axis a.
func pointerAlong(a Axis, x, y float64) float64 {
	if a == Horizontal {
		return x
	}
	return y
}

// Geometry is one sample of a surface's content extent and viewport size.
type Geometry struct {
	Content  Size
	Viewport Size
}

// MaxOffset returns the largest valid offset along axis a.
func (g Geometry) MaxOffset(a Axis) float64 {
	return max(0, g.Content.Along(a)-g.Viewport.Along(a))
}

// Scrollable reports whether there is anything to scroll along axis a. Zero
// sized viewports never scroll.
func (g Geometry) Scrollable(a Axis) bool {
	viewport := g.Viewport.Along(a)
	return viewport > 0 && g.Content.Along(a) > viewport
}

// Tracker observes a surface's geometry. It samples on Attach and re-samples
// once per frame after the surface signals a change, emitting only when the
// sample differs from the previous one.
type Tracker struct {
	surface   Surface
	scheduler Scheduler
	changed   func(Geometry)

	current     Geometry
	attached    bool
	unsubscribe func()
	cancelFrame func()
}

// NewTracker returns a detached tracker for the surface.
func NewTracker(surface Surface, scheduler Scheduler, changed func(Geometry)) *Tracker {
	return &Tracker{
		surface:   surface,
		scheduler: scheduler,
		changed:   changed,
	}
}

// Attach samples the surface, subscribes to its change signal and emits the
// initial geometry.
func (t *Tracker) Attach() {
	if t.attached {
		return
	}
	t.attached = true
	t.current = t.sample()
	t.unsubscribe = t.surface.SubscribeGeometry(t.signal)
	t.emit()
}

// Detach drops the subscription and any pending re-sample. Nothing is emitted
// afterwards.
func (t *Tracker) Detach() {
	if !t.attached {
		return
	}
	t.attached = false
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
	if t.cancelFrame != nil {
		t.cancelFrame()
		t.cancelFrame = nil
	}
}

// Attached reports whether the tracker is observing its surface.
func (t *Tracker) Attached() bool {
	return t.attached
}

// Geometry returns the last sample.
func (t *Tracker) Geometry() Geometry {
	return t.current
}

func (t *Tracker) sample() Geometry {
	return Geometry{
		Content:  t.surface.ContentExtent().normalize(),
		Viewport: t.surface.ViewportSize().normalize(),
	}
}

// signal coalesces change notifications into a single re-sample on the next
// frame.
func (t *Tracker) signal() {
	if !t.attached || t.cancelFrame != nil {
		return
	}
	t.cancelFrame = t.scheduler.RequestFrame(t.resample)
}

func (t *Tracker) resample() {
	t.cancelFrame = nil
	if !t.attached {
		return
	}
	next := t.sample()
	if next == t.current {
		return
	}
	t.current = next
	t.emit()
}

func (t *Tracker) emit() {
	if t.changed != nil {
		t.changed(t.current)
	}
}
