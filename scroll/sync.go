package scroll

// ThumbGeometry is the size and position of a thumb along its track, in the
// same units as the viewport.
type ThumbGeometry struct {
	Size     float64
	Position float64
}

// End returns the position just past the thumb.
func (t ThumbGeometry) End() float64 {
	return t.Position + t.Size
}

// thumbGeometry scales viewport and offset into track space. It returns false
// when either length is not positive.
func thumbGeometry(content, viewport, offset float64) (ThumbGeometry, bool) {
	if content <= 0 || viewport <= 0 {
		return ThumbGeometry{}, false
	}
	return ThumbGeometry{
		Size:     viewport / content * viewport,
		Position: offset / content * viewport,
	}, true
}

// AxisLayout is the derived state of one axis.
type AxisLayout struct {
	Visible bool
	Thumb   ThumbGeometry
	// Track is the origin of the track in content space. It follows the
	// offset so the track stays pinned to the trailing edge of the viewport.
	Track Offset
}

// Layout is everything a host needs to render both tracks.
type Layout struct {
	Vertical   AxisLayout
	Horizontal AxisLayout
	Offset     Offset
	Geometry   Geometry
}

// Axis returns the layout of the given axis.
func (l Layout) Axis(a Axis) AxisLayout {
	if a == Horizontal {
		return l.Horizontal
	}
	return l.Vertical
}

// layoutKey lists every input the layout depends on.
type layoutKey struct {
	geometry Geometry
	offset   Offset
	visible  [2]bool
	sizes    [2]float64
}

// Synchronizer derives the layout and pushes the authoritative offset into the
// surface. It is the only writer of the surface's native scroll position.
type Synchronizer struct {
	surface Surface

	key    layoutKey
	layout Layout
	valid  bool
}

// NewSynchronizer returns a synchronizer for the surface.
func NewSynchronizer(surface Surface) *Synchronizer {
	return &Synchronizer{surface: surface}
}

// Sync returns the layout for the given inputs, reusing the previous result
// when none of them changed, and applies the offset to the surface.
func (s *Synchronizer) Sync(key layoutKey) Layout {
	if !s.valid || key != s.key {
		s.layout = computeLayout(key)
		s.key = key
		s.valid = true
	}
	if s.surface.ScrollPosition() != key.offset {
		s.surface.SetScrollPosition(key.offset)
	}
	return s.layout
}

// invalidate drops the memoized layout.
func (s *Synchronizer) invalidate() {
	s.valid = false
}

func computeLayout(key layoutKey) Layout {
	layout := Layout{Offset: key.offset, Geometry: key.geometry}
	for _, a := range axes {
		g := key.geometry
		thumb, ok := thumbGeometry(g.Content.Along(a), g.Viewport.Along(a), key.offset.Along(a))
		axis := AxisLayout{
			Visible: key.visible[a] && ok,
			Thumb:   thumb,
			Track:   trackOrigin(a, g, key.offset, key.sizes[a]),
		}
		if a == Horizontal {
			layout.Horizontal = axis
		} else {
			layout.Vertical = axis
		}
	}
	return layout
}

// trackOrigin places a track against the trailing edge of the viewport on the
// cross axis, shifted by the current offset.
func trackOrigin(a Axis, g Geometry, offset Offset, size float64) Offset {
	if a == Vertical {
		return Offset{
			Top:  offset.Top,
			Left: offset.Left + max(g.Viewport.Width-size, 0),
		}
	}
	return Offset{
		Top:  offset.Top + max(g.Viewport.Height-size, 0),
		Left: offset.Left,
	}
}

// trackRect returns the track of axis a in host coordinates.
func trackRect(a Axis, box Rect, size float64) Rect {
	if a == Vertical {
		return Rect{Top: box.Top, Bottom: box.Bottom, Left: max(box.Right-size, box.Left), Right: box.Right}
	}
	return Rect{Top: max(box.Bottom-size, box.Top), Bottom: box.Bottom, Left: box.Left, Right: box.Right}
}

// minThumbHit is the smallest length a thumb occupies for hit testing.
const minThumbHit = 1.0

// thumbRect returns the thumb of axis a in host coordinates, grown around its
// center to at least minThumbHit.
func thumbRect(a Axis, track Rect, thumb ThumbGeometry) Rect {
	start := track.start(a) + thumb.Position
	end := start + thumb.Size
	if grow := minThumbHit - thumb.Size; grow > 0 {
		start -= grow / 2
		end += grow / 2
	}
	if a == Vertical {
		return Rect{Top: start, Bottom: end, Left: track.Left, Right: track.Right}
	}
	return Rect{Top: track.Top, Bottom: track.Bottom, Left: start, Right: end}
}
