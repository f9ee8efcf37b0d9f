package scroll

// wheel accumulates wheel deltas and applies them once per frame.
type wheel struct {
	engine      *Engine
	pending     Offset
	cancelFrame func()
}

func (w *wheel) add(dx, dy float64) {
	w.pending.Left += dx
	w.pending.Top += dy
	if w.cancelFrame == nil {
		w.cancelFrame = w.engine.scheduler.RequestFrame(w.flush)
	}
}

// flush submits the accumulated delta against the latest offset.
func (w *wheel) flush() {
	w.cancelFrame = nil
	delta := w.pending
	w.pending = Offset{}
	if !w.engine.attached {
		return
	}
	for _, a := range axes {
		if d := delta.Along(a); d != 0 {
			w.engine.submit(a, w.engine.store.Offset().Along(a)+d)
		}
	}
}

func (w *wheel) cancel() {
	if w.cancelFrame != nil {
		w.cancelFrame()
		w.cancelFrame = nil
	}
	w.pending = Offset{}
}
