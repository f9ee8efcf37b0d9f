package scroll

// session is one pointer gesture, created on pointer-down and disposed on
// pointer-up or detach.
type session interface {
	move(x, y float64)
	dispose()
	// dragging reports whether the gesture holds the thumb of axis a.
	dragging(a Axis) bool
}

// DragPosition is the state of a thumb drag: the axis and the last pointer
// coordinate along it.
type DragPosition struct {
	Axis    Axis
	Pointer float64
}

// thumbDrag maps pointer movement along the track to content movement. The
// mapping is incremental: each move applies only the delta since the previous
// move.
type thumbDrag struct {
	engine   *Engine
	position DragPosition
	disposed bool
}

func newThumbDrag(e *Engine, a Axis, x, y float64) *thumbDrag {
	Logger().Debug("thumb drag started", "axis", a)
	return &thumbDrag{
		engine:   e,
		position: DragPosition{Axis: a, Pointer: pointerAlong(a, x, y)},
	}
}

// dragRatio converts one unit of thumb movement into content units. It
// returns false for degenerate geometry.
func dragRatio(g Geometry, a Axis) (float64, bool) {
	viewport := g.Viewport.Along(a)
	if viewport <= 0 {
		return 0, false
	}
	return g.Content.Along(a) / viewport, true
}

func (d *thumbDrag) move(x, y float64) {
	if d.disposed || !d.engine.attached {
		return
	}
	a := d.position.Axis
	p := pointerAlong(a, x, y)
	delta := p - d.position.Pointer
	d.position.Pointer = p
	if delta == 0 {
		return
	}
	ratio, ok := dragRatio(d.engine.tracker.Geometry(), a)
	if !ok {
		return
	}
	d.engine.submit(a, d.engine.store.Offset().Along(a)+delta*ratio)
}

func (d *thumbDrag) dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	Logger().Debug("thumb drag ended", "axis", d.position.Axis)
}

func (d *thumbDrag) dragging(a Axis) bool {
	return !d.disposed && d.position.Axis == a
}
