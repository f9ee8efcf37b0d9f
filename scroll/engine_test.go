package scroll

import (
	"testing"
	"time"
)

func TestEngineReclampsOnShrink(t *testing.T) {
	e, surface, scheduler := newTestEngine(t, Size{Height: 1000, Width: 200}, Size{Height: 200, Width: 200}, DefaultConfig())

	e.SetOffset(Vertical, 500)
	surface.mutate(Size{Height: 500, Width: 200})
	if got := e.Offset().Top; got != 500 {
		t.Fatalf("offset moved before the geometry cycle ran: %v", got)
	}
	scheduler.Frame()
	if got := e.Offset().Top; got != 300 {
		t.Errorf("offset after shrink = %v, want 300", got)
	}
	if surface.position.Top != 300 {
		t.Errorf("surface position = %v, want 300", surface.position.Top)
	}
}

func TestEngineThumbDrag(t *testing.T) {
	e, surface, _ := newTestEngine(t, Size{Height: 1000, Width: 200}, Size{Height: 200, Width: 200}, alwaysConfig())

	target := e.PointerDown(199.5, 10)
	if target != (Target{Kind: TargetThumb, Axis: Vertical}) {
		t.Fatalf("PointerDown hit %+v, want the vertical thumb", target)
	}
	if !e.Dragging(Vertical) || e.Dragging(Horizontal) {
		t.Fatal("Dragging does not report the vertical drag")
	}

	e.PointerMove(199.5, 20)
	if got := e.Offset().Top; got != 50 {
		t.Fatalf("offset after a 10 cell move = %v, want 50", got)
	}
	// Movement is incremental and the cross axis coordinate is ignored.
	e.PointerMove(150, 25)
	if got := e.Offset().Top; got != 75 {
		t.Fatalf("offset after a further 5 cell move = %v, want 75", got)
	}
	e.PointerMove(150, 15)
	if got := e.Offset().Top; got != 25 {
		t.Fatalf("offset after moving back 10 cells = %v, want 25", got)
	}
	if surface.position.Top != 25 {
		t.Errorf("surface position = %v, want 25", surface.position.Top)
	}

	e.PointerUp()
	if e.Dragging(Vertical) {
		t.Error("drag still active after PointerUp")
	}
	e.PointerMove(150, 100)
	if got := e.Offset().Top; got != 25 {
		t.Errorf("move after release changed offset to %v", got)
	}
}

func TestEngineHiddenThumbDrag(t *testing.T) {
	e, _, scheduler := newTestEngine(t, Size{Height: 1000, Width: 1000}, Size{Height: 200, Width: 200}, DefaultConfig())
	if e.Layout().Vertical.Visible {
		t.Fatal("vertical track visible before any scrolling")
	}

	target := e.PointerDown(199.5, 10)
	if target != (Target{Kind: TargetThumb, Axis: Vertical}) {
		t.Fatalf("PointerDown hit %+v, want the vertical thumb", target)
	}
	if !e.Dragging(Vertical) {
		t.Fatal("no thumb drag after pressing the hidden thumb")
	}
	if !e.Layout().Vertical.Visible {
		t.Error("vertical track hidden during the drag")
	}

	e.PointerMove(199.5, 20)
	scheduler.Frames(3)
	if got := e.Offset(); got != (Offset{Top: 50}) {
		t.Errorf("offset after a 10 cell thumb move = %+v, want top 50 only", got)
	}
}

func TestEngineReclampNotifiesOnce(t *testing.T) {
	e, surface, scheduler := newTestEngine(t, Size{Height: 1000, Width: 200}, Size{Height: 200, Width: 200}, DefaultConfig())
	e.SetOffset(Vertical, 500)

	changes := 0
	e.SetChangedFunc(func() { changes++ })
	sets := surface.positionSets
	surface.mutate(Size{Height: 500, Width: 200})
	scheduler.Frame()

	if changes != 1 {
		t.Errorf("changed handler ran %d times for one reclamp, want 1", changes)
	}
	if got := surface.positionSets - sets; got != 1 {
		t.Errorf("surface position set %d times, want 1", got)
	}
	if got := e.Offset().Top; got != 300 {
		t.Errorf("offset after shrink = %v, want 300", got)
	}
}

func TestEngineThumbDragClamps(t *testing.T) {
	e, _, _ := newTestEngine(t, Size{Height: 1000, Width: 200}, Size{Height: 200, Width: 200}, alwaysConfig())
	e.PointerDown(199.5, 10)
	e.PointerMove(199.5, 500)
	if got := e.Offset().Top; got != 800 {
		t.Errorf("offset = %v, want clamped to 800", got)
	}
	e.PointerMove(199.5, -500)
	if got := e.Offset().Top; got != 0 {
		t.Errorf("offset = %v, want clamped to 0", got)
	}
}

func TestEdgeSpeed(t *testing.T) {
	tests := []struct {
		name      string
		near, far float64
		want      float64
		active    bool
	}{
		{"near edge", 25, 175, -7.5, true},
		{"far edge", 175, 25, 7.5, true},
		{"on the edge", 0, 200, -15, true},
		{"outside the box", -30, 230, -15, true},
		{"exactly at threshold", 50, 150, 0, false},
		{"middle", 100, 100, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, active := edgeSpeed(tt.near, tt.far, 50, 15)
			if got != tt.want || active != tt.active {
				t.Errorf("edgeSpeed(%v, %v) = %v, %v; want %v, %v", tt.near, tt.far, got, active, tt.want, tt.active)
			}
		})
	}
}

func TestEngineAutoscroll(t *testing.T) {
	e, _, scheduler := newTestEngine(t, Size{Height: 1000, Width: 1000}, Size{Height: 200, Width: 200}, DefaultConfig())

	if target := e.PointerDown(100, 100); target.Kind != TargetContent {
		t.Fatalf("PointerDown hit %+v, want content", target)
	}
	e.PointerMove(100, 100)
	if scheduler.PendingFrames() != 0 {
		t.Fatal("autoscroll running with the pointer away from every edge")
	}

	e.PointerMove(100, 175)
	scheduler.Frame()
	if got := e.Offset(); got.Top != 7.5 || got.Left != 0 {
		t.Fatalf("offset after one frame = %+v, want {7.5 0}", got)
	}
	scheduler.Frame()
	if got := e.Offset().Top; got != 15 {
		t.Fatalf("offset after two frames = %v, want 15", got)
	}

	// Moving into a corner activates the horizontal axis as well.
	e.PointerMove(175, 175)
	scheduler.Frame()
	if got := e.Offset(); got.Top != 22.5 || got.Left != 7.5 {
		t.Fatalf("offset after corner frame = %+v, want {22.5 7.5}", got)
	}

	e.PointerMove(100, 100)
	if scheduler.PendingFrames() != 0 {
		t.Fatal("autoscroll loop kept running after leaving the edges")
	}

	e.PointerMove(100, 175)
	e.PointerUp()
	if scheduler.PendingFrames() != 0 {
		t.Error("autoscroll loop survived PointerUp")
	}
	scheduler.Frames(5)
	if got := e.Offset().Top; got != 22.5 {
		t.Errorf("offset moved after PointerUp: %v", got)
	}
}

func TestEngineAutoscrollTowardNearEdge(t *testing.T) {
	e, _, scheduler := newTestEngine(t, Size{Height: 1000, Width: 200}, Size{Height: 200, Width: 200}, DefaultConfig())
	e.SetOffset(Vertical, 100)

	e.PointerDown(100, 100)
	e.PointerMove(100, 25)
	scheduler.Frame()
	if got := e.Offset().Top; got != 92.5 {
		t.Errorf("offset = %v, want 92.5", got)
	}
}

func TestEngineWheelCoalescesPerFrame(t *testing.T) {
	e, surface, scheduler := newTestEngine(t, Size{Height: 1000, Width: 1000}, Size{Height: 200, Width: 200}, DefaultConfig())

	if !e.Wheel(0, 3) || !e.Wheel(2, 4) {
		t.Fatal("Wheel did not take the event")
	}
	if e.Wheel(0, 0) {
		t.Error("Wheel took an empty delta")
	}
	if got := e.Offset(); got != (Offset{}) {
		t.Fatalf("offset moved before the frame: %+v", got)
	}
	if scheduler.PendingFrames() != 1 {
		t.Fatalf("PendingFrames() = %d, want 1", scheduler.PendingFrames())
	}

	sets := surface.positionSets
	scheduler.Frame()
	if got := e.Offset(); got != (Offset{Top: 7, Left: 2}) {
		t.Errorf("offset = %+v, want {7 2}", got)
	}
	if surface.positionSets <= sets {
		t.Error("surface position not updated after the wheel frame")
	}

	e.Wheel(0, -100)
	scheduler.Frame()
	if got := e.Offset().Top; got != 0 {
		t.Errorf("offset = %v, want clamped to 0", got)
	}
}

func TestEngineWheelDuringAutoscroll(t *testing.T) {
	e, _, scheduler := newTestEngine(t, Size{Height: 1000, Width: 200}, Size{Height: 200, Width: 200}, DefaultConfig())
	e.SetOffset(Vertical, 790)

	e.PointerDown(100, 100)
	e.PointerMove(100, 199)
	e.Wheel(0, 50)
	scheduler.Frames(3)
	if got := e.Offset().Top; got != 800 {
		t.Errorf("offset = %v, want 800", got)
	}
}

func TestEngineDisabledAxis(t *testing.T) {
	cfg := alwaysConfig()
	cfg.Horizontal.Enabled = false
	e, _, scheduler := newTestEngine(t, Size{Height: 1000, Width: 1000}, Size{Height: 200, Width: 200}, cfg)

	e.Wheel(40, 40)
	scheduler.Frame()
	if got := e.Offset(); got.Left != 0 || got.Top != 40 {
		t.Errorf("offset = %+v, want {40 0}", got)
	}
	if e.SetOffset(Horizontal, 10) {
		t.Error("SetOffset moved a disabled axis")
	}
	if e.Layout().Horizontal.Visible {
		t.Error("disabled axis track visible")
	}
	if target := e.HitTest(100, 199.5); target.Kind != TargetContent {
		t.Errorf("HitTest on the disabled track area = %+v, want content", target)
	}

	e.PointerDown(100, 100)
	e.PointerMove(195, 100)
	scheduler.Frames(3)
	if got := e.Offset().Left; got != 0 {
		t.Errorf("autoscroll moved disabled axis to %v", got)
	}
}

func TestEngineSetConfigDisablesAxis(t *testing.T) {
	e, _, _ := newTestEngine(t, Size{Height: 1000, Width: 1000}, Size{Height: 200, Width: 200}, alwaysConfig())
	e.SetOffset(Horizontal, 300)
	e.PointerDown(80, 199.5)
	if !e.Dragging(Horizontal) {
		t.Fatal("horizontal thumb drag did not start")
	}

	cfg := e.Config()
	cfg.Horizontal.Enabled = false
	e.SetConfig(cfg)
	if e.Dragging(Horizontal) {
		t.Error("drag on a disabled axis still active")
	}
	if got := e.Offset().Left; got != 0 {
		t.Errorf("disabled axis offset = %v, want 0", got)
	}
}

func TestEngineTrackClick(t *testing.T) {
	tests := []struct {
		name     string
		behavior TrackClickBehavior
		start    float64
		y        float64
		want     float64
	}{
		{"none", TrackClickNone, 0, 100, 0},
		{"page down", TrackClickPage, 0, 100, 200},
		{"page up", TrackClickPage, 400, 10, 200},
		{"jump", TrackClickJump, 0, 100, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := alwaysConfig()
			cfg.TrackClick = tt.behavior
			e, _, _ := newTestEngine(t, Size{Height: 1000, Width: 200}, Size{Height: 200, Width: 200}, cfg)
			e.SetOffset(Vertical, tt.start)

			if target := e.PointerDown(199.5, tt.y); target.Kind != TargetTrack {
				t.Fatalf("PointerDown hit %+v, want track", target)
			}
			if got := e.Offset().Top; got != tt.want {
				t.Errorf("offset = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngineHitTest(t *testing.T) {
	e, _, _ := newTestEngine(t, Size{Height: 1000, Width: 1000}, Size{Height: 200, Width: 200}, alwaysConfig())

	tests := []struct {
		x, y float64
		want Target
	}{
		{100, 100, Target{Kind: TargetContent}},
		{199.5, 20, Target{Kind: TargetThumb, Axis: Vertical}},
		{199.5, 150, Target{Kind: TargetTrack, Axis: Vertical}},
		{20, 199.5, Target{Kind: TargetThumb, Axis: Horizontal}},
		{150, 199.5, Target{Kind: TargetTrack, Axis: Horizontal}},
		{250, 100, Target{}},
		{-1, 100, Target{}},
	}
	for _, tt := range tests {
		if got := e.HitTest(tt.x, tt.y); got != tt.want {
			t.Errorf("HitTest(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestEngineDetach(t *testing.T) {
	e, surface, scheduler := newTestEngine(t, Size{Height: 1000, Width: 1000}, Size{Height: 200, Width: 200}, DefaultConfig())
	notified := 0
	e.SetChangedFunc(func() { notified++ })

	e.PointerDown(100, 100)
	e.PointerMove(100, 190)
	e.Wheel(0, 10)
	e.SetOffset(Vertical, 5)
	surface.mutate(Size{Height: 400, Width: 400})

	e.Detach()
	if e.Attached() {
		t.Fatal("Attached() = true after Detach")
	}
	if scheduler.PendingFrames() != 0 || scheduler.PendingTimers() != 0 {
		t.Fatalf("pending frames %d, timers %d after Detach", scheduler.PendingFrames(), scheduler.PendingTimers())
	}

	before := notified
	offset := e.Offset()
	e.PointerMove(100, 195)
	e.PointerUp()
	e.Wheel(0, 10)
	e.SetHovering(true)
	if e.SetOffset(Vertical, 50) || e.ScrollBy(Vertical, 5) {
		t.Error("offset mutation accepted after Detach")
	}
	surface.mutate(Size{Height: 100, Width: 100})
	scheduler.Frames(3)
	scheduler.Advance(2 * time.Second)

	if e.Offset() != offset {
		t.Errorf("offset changed after Detach: %+v -> %+v", offset, e.Offset())
	}
	if notified != before {
		t.Errorf("%d notifications after Detach", notified-before)
	}
	if target := e.PointerDown(100, 100); target.Kind != TargetNone {
		t.Errorf("PointerDown after Detach = %+v", target)
	}
}

func TestEngineReattachStartsAtZero(t *testing.T) {
	e, surface, _ := newTestEngine(t, Size{Height: 1000, Width: 200}, Size{Height: 200, Width: 200}, DefaultConfig())
	e.SetOffset(Vertical, 300)
	e.Detach()
	e.Attach()
	if got := e.Offset(); got != (Offset{}) {
		t.Errorf("offset after re-attach = %+v, want zero", got)
	}
	if surface.position != (Offset{}) {
		t.Errorf("surface position after re-attach = %+v, want zero", surface.position)
	}
}
