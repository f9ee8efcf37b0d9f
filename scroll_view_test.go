package coaster

import (
	"strings"
	"testing"

	"github.com/xqrs/coaster/scroll"
)

func TestScrollViewGeometryNotifications(t *testing.T) {
	v := NewScrollView()
	var calls int
	unsubscribe := v.SubscribeGeometry(func() { calls++ })

	v.SetRect(0, 0, 20, 10)
	if calls != 1 {
		t.Fatalf("calls after SetRect = %d, want 1", calls)
	}
	v.SetRect(0, 0, 20, 10)
	if calls != 1 {
		t.Fatalf("unchanged rect notified: calls = %d", calls)
	}
	// Moving the view keeps its viewport size.
	v.SetRect(5, 5, 20, 10)
	if calls != 1 {
		t.Fatalf("moved rect notified: calls = %d", calls)
	}

	v.SetText("one\ntwo\nthree")
	if calls != 2 {
		t.Fatalf("calls after SetText = %d, want 2", calls)
	}
	if got := v.ContentExtent(); got != (scroll.Size{Height: 3, Width: 5}) {
		t.Errorf("ContentExtent = %+v", got)
	}

	v.AppendLine(NewLine("a much longer line"))
	if calls != 3 {
		t.Fatalf("calls after AppendLine = %d, want 3", calls)
	}

	unsubscribe()
	v.Clear()
	if calls != 3 {
		t.Errorf("unsubscribed callback ran: calls = %d", calls)
	}
}

func TestScrollViewSetText(t *testing.T) {
	v := NewScrollView()
	v.SetText("a\tb\r\nc\n")
	lines := v.Lines()
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if got, want := lines[0].String(), "a"+strings.Repeat(" ", TabSize)+"b"; got != want {
		t.Errorf("line 0 = %q, want %q", got, want)
	}
	if got := lines[1].String(); got != "c" {
		t.Errorf("line 1 = %q, want %q", got, "c")
	}

	v.SetText("")
	if len(v.Lines()) != 0 {
		t.Errorf("empty text produced %d lines", len(v.Lines()))
	}
}

func TestScrollViewBoundingBox(t *testing.T) {
	v := NewScrollView()
	v.SetBorders(BordersAll)
	v.SetRect(2, 3, 12, 8)
	want := scroll.Rect{Top: 4, Left: 3, Bottom: 10, Right: 13}
	if got := v.BoundingBox(); got != want {
		t.Errorf("BoundingBox = %+v, want %+v", got, want)
	}
	if got := v.ViewportSize(); got != (scroll.Size{Height: 6, Width: 10}) {
		t.Errorf("ViewportSize = %+v", got)
	}
}

func TestScrollViewDrawWindow(t *testing.T) {
	screen := newTestScreen(t, 6, 2)
	v := NewScrollView()
	v.SetRect(0, 0, 6, 2)
	v.SetText("line zero\nline one\nline two")
	v.SetScrollPosition(scroll.Offset{Top: 1, Left: 2})
	v.Draw(screen)

	if got := rowText(screen, 0, 6); got != "ne one" {
		t.Errorf("row 0 = %q, want %q", got, "ne one")
	}
	if got := rowText(screen, 1, 6); got != "ne two" {
		t.Errorf("row 1 = %q, want %q", got, "ne two")
	}
	if v.IsDirty() {
		t.Error("view still dirty after drawing")
	}

	// Fractional positions are rounded.
	v.SetScrollPosition(scroll.Offset{Top: 1.6, Left: 0.4})
	v.Draw(screen)
	if got := rowText(screen, 0, 6); got != "line t" {
		t.Errorf("row 0 = %q, want %q", got, "line t")
	}
	if got := rowText(screen, 1, 6); got != "      " {
		t.Errorf("row 1 = %q, want blank", got)
	}
}
