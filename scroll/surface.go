// Package scroll implements the state and interaction engine behind a custom
// scroll indicator: it tracks a surface's geometry, owns the clamped scroll
// offset on both axes, derives track and thumb geometry, decides when tracks
// are visible and turns wheel, thumb drag and edge autoscroll gestures into
// offset updates.
//
// The engine is not safe for concurrent use. Every method, and every callback
// handed to a [Scheduler], must run on the goroutine that owns the surface
// (typically the UI event loop).
package scroll

import (
	"slices"
	"time"
)

// Surface is the scrollable area the engine drives.
type Surface interface {
	// ContentExtent returns the full scrollable size of the content.
	ContentExtent() Size
	// ViewportSize returns the visible size of the surface.
	ViewportSize() Size
	// BoundingBox returns the visible area in host viewport coordinates.
	BoundingBox() Rect

	// ScrollPosition returns the surface's native scroll position.
	ScrollPosition() Offset
	// SetScrollPosition moves the surface's native scroll position.
	SetScrollPosition(offset Offset)

	// SubscribeGeometry registers fn to be called whenever the content or the
	// viewport may have changed size. The returned function removes it.
	SubscribeGeometry(fn func()) (unsubscribe func())
}

// Scheduler defers work to frame boundaries and timers. Callbacks must be
// invoked on the goroutine that drives the engine. A cancelled callback must
// not run.
type Scheduler interface {
	RequestFrame(fn func()) (cancel func())
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// ManualScheduler is a Scheduler driven explicitly by its owner. Frames run
// when Frame is called and timers fire when Advance moves the virtual clock
// past their deadline. It is useful for headless hosts and tests.
type ManualScheduler struct {
	now    time.Duration
	nextID uint64
	frames []scheduled
	timers []scheduled
}

type scheduled struct {
	id  uint64
	at  time.Duration
	run func()
}

// NewManualScheduler returns a scheduler with its clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RequestFrame implements Scheduler.
func (m *ManualScheduler) RequestFrame(fn func()) func() {
	m.nextID++
	id := m.nextID
	m.frames = append(m.frames, scheduled{id: id, run: fn})
	return func() {
		m.frames = slices.DeleteFunc(m.frames, func(s scheduled) bool { return s.id == id })
	}
}

// AfterFunc implements Scheduler.
func (m *ManualScheduler) AfterFunc(d time.Duration, fn func()) func() {
	m.nextID++
	id := m.nextID
	m.timers = append(m.timers, scheduled{id: id, at: m.now + d, run: fn})
	return func() {
		m.timers = slices.DeleteFunc(m.timers, func(s scheduled) bool { return s.id == id })
	}
}

// Frame runs every frame callback requested before the call. Callbacks
// requested while the frame runs are deferred to the next frame. It returns
// the number of callbacks run.
func (m *ManualScheduler) Frame() int {
	pending := m.frames
	m.frames = nil
	for _, s := range pending {
		s.run()
	}
	return len(pending)
}

// Frames runs n consecutive frames.
func (m *ManualScheduler) Frames(n int) {
	for range n {
		m.Frame()
	}
}

// PendingFrames returns the number of callbacks waiting for the next frame.
func (m *ManualScheduler) PendingFrames() int {
	return len(m.frames)
}

// PendingTimers returns the number of armed timers.
func (m *ManualScheduler) PendingTimers() int {
	return len(m.timers)
}

// Advance moves the clock forward by d, firing due timers in deadline order.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now + d
	for {
		i := m.nextDue(target)
		if i < 0 {
			break
		}
		s := m.timers[i]
		m.timers = slices.Delete(m.timers, i, i+1)
		m.now = s.at
		s.run()
	}
	m.now = target
}

// Now returns the virtual clock.
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}

func (m *ManualScheduler) nextDue(target time.Duration) int {
	due := -1
	for i, s := range m.timers {
		if s.at > target {
			continue
		}
		if due < 0 || s.at < m.timers[due].at {
			due = i
		}
	}
	return due
}

var _ Scheduler = (*ManualScheduler)(nil)
