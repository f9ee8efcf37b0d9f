package scroll

// autoscrollState is the per-axis speed of a running autoscroll. It belongs to
// one autoscroll session and is handed to each frame callback.
type autoscrollState struct {
	speed  [2]float64
	active [2]bool
}

func (s *autoscrollState) running() bool {
	return s.active[Vertical] || s.active[Horizontal]
}

func (s *autoscrollState) set(a Axis, speed float64, active bool) {
	s.speed[a] = speed
	s.active[a] = active
}

func (s *autoscrollState) clear() {
	*s = autoscrollState{}
}

// edgeSpeed returns the autoscroll speed for a pointer near and far distances
// away from the two edges of one axis. Negative speeds scroll toward the near
// edge. Distances below zero (pointer outside the box) count as zero.
func edgeSpeed(near, far, threshold, maxSpeed float64) (float64, bool) {
	if threshold <= 0 {
		return 0, false
	}
	near = max(near, 0)
	far = max(far, 0)
	switch {
	case near < threshold && near <= far:
		return -(threshold - near) / threshold * maxSpeed, true
	case far < threshold:
		return (threshold - far) / threshold * maxSpeed, true
	}
	return 0, false
}

// autoscroll scrolls continuously while a content drag holds the pointer
// close to an edge of the surface.
type autoscroll struct {
	engine      *Engine
	state       *autoscrollState
	cancelFrame func()
	disposed    bool
}

func newAutoscroll(e *Engine) *autoscroll {
	Logger().Debug("autoscroll watch started")
	return &autoscroll{engine: e, state: &autoscrollState{}}
}

func (s *autoscroll) move(x, y float64) {
	if s.disposed || !s.engine.attached {
		return
	}
	box := s.engine.surface.BoundingBox()
	cfg := s.engine.config
	for _, a := range axes {
		if !cfg.Axis(a).Enabled {
			s.state.set(a, 0, false)
			continue
		}
		p := pointerAlong(a, x, y)
		speed, active := edgeSpeed(p-box.start(a), box.end(a)-p, cfg.DraggingScrollThreshold, cfg.DraggingScrollMaximumSpeed)
		s.state.set(a, speed, active)
	}
	switch {
	case s.state.running() && s.cancelFrame == nil:
		s.schedule(s.state)
	case !s.state.running() && s.cancelFrame != nil:
		s.cancelFrame()
		s.cancelFrame = nil
	}
}

func (s *autoscroll) schedule(state *autoscrollState) {
	s.cancelFrame = s.engine.scheduler.RequestFrame(func() {
		s.step(state)
	})
}

// step applies one frame of movement on every active axis.
func (s *autoscroll) step(state *autoscrollState) {
	s.cancelFrame = nil
	if s.disposed || !s.engine.attached {
		return
	}
	for _, a := range axes {
		if state.active[a] {
			s.engine.submit(a, s.engine.store.Offset().Along(a)+state.speed[a])
		}
	}
	if state.running() {
		s.schedule(state)
	}
}

func (s *autoscroll) dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	if s.cancelFrame != nil {
		s.cancelFrame()
		s.cancelFrame = nil
	}
	s.state.clear()
	Logger().Debug("autoscroll watch ended")
}

func (s *autoscroll) dragging(Axis) bool {
	return false
}
