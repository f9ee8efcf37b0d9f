package scroll

import "testing"

func TestTrackerCoalescesSignals(t *testing.T) {
	surface := newFakeSurface(Size{Height: 100, Width: 10}, Size{Height: 20, Width: 10})
	scheduler := NewManualScheduler()
	var emitted []Geometry
	tracker := NewTracker(surface, scheduler, func(g Geometry) { emitted = append(emitted, g) })

	tracker.Attach()
	if len(emitted) != 1 {
		t.Fatalf("Attach emitted %d times, want 1", len(emitted))
	}

	surface.content.Height = 150
	surface.signal()
	surface.signal()
	surface.signal()
	if scheduler.PendingFrames() != 1 {
		t.Fatalf("PendingFrames() = %d, want 1", scheduler.PendingFrames())
	}
	scheduler.Frame()
	if len(emitted) != 2 {
		t.Fatalf("got %d emissions, want 2", len(emitted))
	}
	if emitted[1].Content.Height != 150 {
		t.Errorf("content height = %v, want 150", emitted[1].Content.Height)
	}

	// A signal without an actual change emits nothing.
	surface.signal()
	scheduler.Frame()
	if len(emitted) != 2 {
		t.Errorf("unchanged geometry emitted, got %d emissions", len(emitted))
	}
}

func TestTrackerDetach(t *testing.T) {
	surface := newFakeSurface(Size{Height: 100}, Size{Height: 20})
	scheduler := NewManualScheduler()
	emitted := 0
	tracker := NewTracker(surface, scheduler, func(Geometry) { emitted++ })
	tracker.Attach()

	surface.mutate(Size{Height: 200})
	tracker.Detach()
	if scheduler.PendingFrames() != 0 {
		t.Errorf("pending frame survived Detach")
	}
	if len(surface.subscribers) != 0 {
		t.Errorf("%d subscribers left after Detach", len(surface.subscribers))
	}
	surface.mutate(Size{Height: 300})
	scheduler.Frames(3)
	if emitted != 1 {
		t.Errorf("emitted %d times, want only the attach emission", emitted)
	}
}

func TestTrackerNormalizesNegativeSizes(t *testing.T) {
	surface := newFakeSurface(Size{Height: -10, Width: 5}, Size{Height: 3, Width: -1})
	tracker := NewTracker(surface, NewManualScheduler(), nil)
	tracker.Attach()
	g := tracker.Geometry()
	if g.Content.Height != 0 || g.Viewport.Width != 0 {
		t.Errorf("geometry = %+v, want negative sizes clamped to zero", g)
	}
}

func TestGeometryScrollable(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want bool
	}{
		{"overflowing", Geometry{Content: Size{Height: 100}, Viewport: Size{Height: 20}}, true},
		{"fits exactly", Geometry{Content: Size{Height: 20}, Viewport: Size{Height: 20}}, false},
		{"smaller", Geometry{Content: Size{Height: 5}, Viewport: Size{Height: 20}}, false},
		{"zero viewport", Geometry{Content: Size{Height: 100}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Scrollable(Vertical); got != tt.want {
				t.Errorf("Scrollable() = %v, want %v", got, tt.want)
			}
		})
	}
}
