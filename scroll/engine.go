package scroll

// TargetKind classifies what a pointer-down landed on.
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetContent
	TargetTrack
	TargetThumb
)

// Target is the result of a hit test. Axis is meaningful for tracks and
// thumbs only.
type Target struct {
	Kind TargetKind
	Axis Axis
}

// Engine wires the geometry tracker, the offset store, the visibility state
// machine, the gesture handlers and the render synchronizer for one surface.
type Engine struct {
	surface   Surface
	scheduler Scheduler
	config    Config

	tracker    *Tracker
	store      *Store
	visibility *Visibility
	sync       *Synchronizer
	wheel      wheel
	active     session

	attached bool
	changed  func()
}

// New returns a detached engine. Call Attach to start tracking the surface.
func New(surface Surface, scheduler Scheduler, config Config) *Engine {
	e := &Engine{
		surface:   surface,
		scheduler: scheduler,
		config:    config.Normalize(),
	}
	e.tracker = NewTracker(surface, scheduler, e.geometryChanged)
	e.store = NewStore(e.limit, e.offsetChanged)
	e.visibility = NewVisibility(scheduler, e.notify)
	e.sync = NewSynchronizer(surface)
	e.wheel = wheel{engine: e}
	return e
}

// SetChangedFunc sets a handler called whenever the layout may have changed
// and the host should redraw.
func (e *Engine) SetChangedFunc(handler func()) *Engine {
	e.changed = handler
	return e
}

// Attach resets the offset to zero, samples the surface and starts tracking
// it.
func (e *Engine) Attach() {
	if e.attached {
		return
	}
	e.attached = true
	e.store.reset()
	e.sync.invalidate()
	e.tracker.Attach()
	g := e.tracker.Geometry()
	Logger().Debug("engine attached",
		"content", g.Content,
		"viewport", g.Viewport,
	)
}

// Detach stops tracking, ends any gesture and cancels every pending frame
// and timer. All input methods are no-ops afterwards.
func (e *Engine) Detach() {
	if !e.attached {
		return
	}
	e.attached = false
	e.endSession()
	e.wheel.cancel()
	e.tracker.Detach()
	e.visibility.Stop()
	Logger().Debug("engine detached")
}

// Attached reports whether the engine is tracking its surface.
func (e *Engine) Attached() bool {
	return e.attached
}

// Config returns the normalized configuration.
func (e *Engine) Config() Config {
	return e.config
}

// SetConfig replaces the configuration. Disabling an axis resets its offset
// and ends a thumb drag on it.
func (e *Engine) SetConfig(config Config) {
	e.config = config.Normalize()
	if !e.attached {
		return
	}
	for _, a := range axes {
		if !e.config.Axis(a).Enabled && e.active != nil && e.active.dragging(a) {
			e.endSession()
		}
	}
	e.store.Reclamp()
	e.notify()
}

// Geometry returns the last geometry sample.
func (e *Engine) Geometry() Geometry {
	return e.tracker.Geometry()
}

// Offset returns the current offset.
func (e *Engine) Offset() Offset {
	return e.store.Offset()
}

// SetOffset moves axis a to v, clamped. It returns true if the offset moved.
func (e *Engine) SetOffset(a Axis, v float64) bool {
	if !e.attached {
		return false
	}
	return e.submit(a, v)
}

// ScrollBy moves axis a by delta, clamped. It returns true if the offset
// moved.
func (e *Engine) ScrollBy(a Axis, delta float64) bool {
	if !e.attached {
		return false
	}
	return e.submit(a, e.store.Offset().Along(a)+delta)
}

// Wheel queues a wheel delta. Deltas received before the next frame are
// summed and applied together. It returns true if the event was taken, in
// which case the host should suppress its own handling.
func (e *Engine) Wheel(dx, dy float64) bool {
	if !e.attached || (dx == 0 && dy == 0) {
		return false
	}
	e.wheel.add(dx, dy)
	return true
}

// SetHovering records whether the pointer is over the surface.
func (e *Engine) SetHovering(hovering bool) {
	if !e.attached {
		return
	}
	if e.visibility.SetHovering(hovering) {
		e.notify()
	}
}

// Dragging reports whether a thumb drag on axis a is in progress.
func (e *Engine) Dragging(a Axis) bool {
	return e.active != nil && e.active.dragging(a)
}

// HitTest classifies the point (x, y), in host coordinates. The track of
// every enabled axis with something to scroll can be hit, shown or not, so a
// hidden thumb can still be grabbed.
func (e *Engine) HitTest(x, y float64) Target {
	if !e.attached {
		return Target{}
	}
	box := e.surface.BoundingBox()
	if !box.Contains(x, y) {
		return Target{}
	}
	layout := e.Layout()
	for _, a := range axes {
		axis := layout.Axis(a)
		if !e.config.Axis(a).Enabled || !layout.Geometry.Scrollable(a) {
			continue
		}
		track := trackRect(a, box, e.config.Axis(a).Size)
		if !track.Contains(x, y) {
			continue
		}
		if thumbRect(a, track, axis.Thumb).Contains(x, y) {
			return Target{Kind: TargetThumb, Axis: a}
		}
		return Target{Kind: TargetTrack, Axis: a}
	}
	return Target{Kind: TargetContent}
}

// PointerDown starts a gesture at (x, y). A thumb starts a thumb drag, a track
// applies the configured track click behavior and anything else inside the
// surface starts an autoscroll watch.
func (e *Engine) PointerDown(x, y float64) Target {
	if !e.attached {
		return Target{}
	}
	e.endSession()
	target := e.HitTest(x, y)
	switch target.Kind {
	case TargetThumb:
		e.active = newThumbDrag(e, target.Axis, x, y)
		e.notify()
	case TargetTrack:
		e.trackClick(target.Axis, x, y)
	case TargetContent:
		e.active = newAutoscroll(e)
	}
	return target
}

// PointerMove forwards a pointer move to the active gesture.
func (e *Engine) PointerMove(x, y float64) {
	if !e.attached || e.active == nil {
		return
	}
	e.active.move(x, y)
}

// PointerUp ends the active gesture.
func (e *Engine) PointerUp() {
	if !e.attached || e.active == nil {
		return
	}
	e.endSession()
	e.notify()
}

// Layout derives the current layout and pushes the offset into the surface.
func (e *Engine) Layout() Layout {
	g := e.tracker.Geometry()
	key := layoutKey{
		geometry: g,
		offset:   e.store.Offset(),
	}
	for _, a := range axes {
		axis := e.config.Axis(a)
		key.sizes[a] = axis.Size
		key.visible[a] = trackVisible(e.visibility.inputs(axis.ShowMode, axis.Enabled, g.Scrollable(a), e.Dragging(a)))
	}
	return e.sync.Sync(key)
}

func (e *Engine) trackClick(a Axis, x, y float64) {
	layout := e.Layout()
	g := layout.Geometry
	thumb := layout.Axis(a).Thumb
	p := pointerAlong(a, x, y) - e.surface.BoundingBox().start(a)
	switch e.config.TrackClick {
	case TrackClickPage:
		page := g.Viewport.Along(a)
		if p < thumb.Position {
			page = -page
		}
		e.submit(a, e.store.Offset().Along(a)+page)
	case TrackClickJump:
		ratio, ok := dragRatio(g, a)
		if !ok {
			return
		}
		e.submit(a, (p-thumb.Size/2)*ratio)
	}
}

func (e *Engine) endSession() {
	if e.active == nil {
		return
	}
	e.active.dispose()
	e.active = nil
}

// submit is the single gate every gesture goes through.
func (e *Engine) submit(a Axis, v float64) bool {
	return e.store.SetOffset(a, v)
}

func (e *Engine) limit(a Axis) float64 {
	if !e.config.Axis(a).Enabled {
		return 0
	}
	return e.tracker.Geometry().MaxOffset(a)
}

func (e *Engine) geometryChanged(g Geometry) {
	before := e.store.Offset()
	if e.store.Reclamp() {
		// offsetChanged has already synchronized and notified.
		Logger().Debug("offset clamped to new geometry",
			"from", before,
			"to", e.store.Offset(),
		)
		return
	}
	e.Layout()
	e.notify()
}

func (e *Engine) offsetChanged(Axis) {
	e.visibility.MarkScrolled()
	e.Layout()
	e.notify()
}

func (e *Engine) notify() {
	if e.attached && e.changed != nil {
		e.changed()
	}
}
