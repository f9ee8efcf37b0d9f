package scroll

import (
	"math"
	"testing"
)

func TestThumbGeometry(t *testing.T) {
	tests := []struct {
		content, viewport, offset float64
		want                      ThumbGeometry
		ok                        bool
	}{
		{1000, 250, 0, ThumbGeometry{Size: 62.5, Position: 0}, true},
		{1000, 250, 750, ThumbGeometry{Size: 62.5, Position: 187.5}, true},
		{1000, 200, 400, ThumbGeometry{Size: 40, Position: 80}, true},
		{0, 250, 0, ThumbGeometry{}, false},
		{1000, 0, 0, ThumbGeometry{}, false},
		{-10, 5, 0, ThumbGeometry{}, false},
	}
	for _, tt := range tests {
		got, ok := thumbGeometry(tt.content, tt.viewport, tt.offset)
		if ok != tt.ok || got != tt.want {
			t.Errorf("thumbGeometry(%v, %v, %v) = %+v, %v; want %+v, %v",
				tt.content, tt.viewport, tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTrackOrigin(t *testing.T) {
	g := Geometry{
		Content:  Size{Height: 1000, Width: 1000},
		Viewport: Size{Height: 200, Width: 100},
	}
	offset := Offset{Top: 50, Left: 30}

	if got, want := trackOrigin(Vertical, g, offset, 1), (Offset{Top: 50, Left: 129}); got != want {
		t.Errorf("vertical track origin = %+v, want %+v", got, want)
	}
	if got, want := trackOrigin(Horizontal, g, offset, 2), (Offset{Top: 248, Left: 30}); got != want {
		t.Errorf("horizontal track origin = %+v, want %+v", got, want)
	}
}

func TestSynchronizerPushesOffset(t *testing.T) {
	surface := newFakeSurface(Size{}, Size{})
	s := NewSynchronizer(surface)
	key := layoutKey{
		geometry: Geometry{Content: Size{Height: 1000}, Viewport: Size{Height: 250}},
		offset:   Offset{Top: 100},
		visible:  [2]bool{true, true},
		sizes:    [2]float64{1, 1},
	}

	layout := s.Sync(key)
	if surface.position != key.offset {
		t.Fatalf("surface position = %+v, want %+v", surface.position, key.offset)
	}
	if layout.Vertical.Thumb.Size != 62.5 || layout.Vertical.Thumb.Position != 25 {
		t.Errorf("vertical thumb = %+v, want {62.5 25}", layout.Vertical.Thumb)
	}
	if layout.Horizontal.Visible {
		t.Error("horizontal track visible with zero geometry")
	}

	s.Sync(key)
	if surface.positionSets != 1 {
		t.Errorf("surface written %d times for identical inputs, want 1", surface.positionSets)
	}

	// Someone else moved the surface: the authoritative offset wins.
	surface.position = Offset{Top: 7}
	s.Sync(key)
	if surface.position != key.offset {
		t.Errorf("surface position = %+v, want %+v restored", surface.position, key.offset)
	}
}

func TestLayoutNeverProducesNaN(t *testing.T) {
	e, _, _ := newTestEngine(t, Size{}, Size{}, alwaysConfig())
	layout := e.Layout()
	for _, a := range axes {
		axis := layout.Axis(a)
		if axis.Visible {
			t.Errorf("%v track visible with zero geometry", a)
		}
		for _, v := range []float64{axis.Thumb.Size, axis.Thumb.Position, axis.Track.Top, axis.Track.Left} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%v layout contains %v: %+v", a, v, axis)
			}
		}
	}
}
