package coaster

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/xqrs/coaster/scroll"
)

const subcell = 8

// GlyphSet defines track and fractional thumb glyphs for both orientations.
type GlyphSet struct {
	TrackVertical   string
	TrackHorizontal string

	ThumbVerticalLower [8]string
	ThumbVerticalUpper [8]string

	ThumbHorizontalLeft  [8]string
	ThumbHorizontalRight [8]string
}

// MinimalGlyphSet returns the minimal glyph set (space track, fractional thumbs).
func MinimalGlyphSet() GlyphSet {
	g := UnicodeGlyphSet()
	g.TrackVertical = " "
	g.TrackHorizontal = " "
	return g
}

// LegacyComputingGlyphSet returns legacy-computing symbols for full 1/8 fractional fidelity.
func LegacyComputingGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   BoxDrawingsLightVertical,
		TrackHorizontal: BoxDrawingsLightHorizontal,

		ThumbVerticalLower: [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper: [8]string{"▔", "🮂", "🮃", "▀", "🮄", "🮅", "🮆", "█"},

		ThumbHorizontalLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbHorizontalRight: [8]string{"▕", "🮇", "🮈", "▐", "🮉", "🮊", "🮋", "█"},
	}
}

// UnicodeGlyphSet returns a standard-unicode-only approximation set.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   BoxDrawingsLightVertical,
		TrackHorizontal: BoxDrawingsLightHorizontal,

		ThumbVerticalLower: [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper: [8]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"},

		ThumbHorizontalLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbHorizontalRight: [8]string{"▕", "▕", "▐", "▐", "▐", "▐", "█", "█"},
	}
}

// ScrollBar renders one scroll track and its thumb. It holds no scroll state
// of its own: the owner hands it the thumb geometry derived by the engine.
type ScrollBar struct {
	*Box

	axis   scroll.Axis
	thumb  scroll.ThumbGeometry
	active bool

	trackStyle  tcell.Style
	thumbStyle  tcell.Style
	activeStyle tcell.Style

	glyphSet  GlyphSet
	showTrack bool
}

// NewScrollBar returns a scroll bar for the given axis.
func NewScrollBar(axis scroll.Axis) *ScrollBar {
	s := &ScrollBar{
		Box:         NewBox(),
		axis:        axis,
		trackStyle:  tcell.StyleDefault.Foreground(Styles.ScrollBarTrackColor),
		thumbStyle:  tcell.StyleDefault.Foreground(Styles.ScrollBarThumbColor),
		activeStyle: tcell.StyleDefault.Foreground(Styles.ScrollBarActiveColor),
		glyphSet:    UnicodeGlyphSet(),
		showTrack:   true,
	}
	s.SetDontClear(true)
	return s
}

// Axis returns the axis the scroll bar indicates.
func (s *ScrollBar) Axis() scroll.Axis {
	return s.axis
}

// SetThumb sets the thumb geometry, in cells along the track.
func (s *ScrollBar) SetThumb(thumb scroll.ThumbGeometry) *ScrollBar {
	if s.thumb != thumb {
		s.thumb = thumb
		s.MarkDirty()
	}
	return s
}

// SetActive highlights the thumb, typically while it is dragged.
func (s *ScrollBar) SetActive(active bool) *ScrollBar {
	if s.active != active {
		s.active = active
		s.MarkDirty()
	}
	return s
}

// SetGlyphSet applies a glyph set.
func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphSet = g
	s.MarkDirty()
	return s
}

// SetThumbGlyph sets all thumb glyphs to a single symbol.
func (s *ScrollBar) SetThumbGlyph(glyph string) *ScrollBar {
	for i := range subcell {
		s.glyphSet.ThumbVerticalLower[i] = glyph
		s.glyphSet.ThumbVerticalUpper[i] = glyph
		s.glyphSet.ThumbHorizontalLeft[i] = glyph
		s.glyphSet.ThumbHorizontalRight[i] = glyph
	}
	s.MarkDirty()
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	s.MarkDirty()
	return s
}

// SetActiveStyle sets the thumb style used while the scroll bar is active.
func (s *ScrollBar) SetActiveStyle(style tcell.Style) *ScrollBar {
	s.activeStyle = style
	s.MarkDirty()
	return s
}

// SetTrackGlyph sets the track symbol and visibility.
func (s *ScrollBar) SetTrackGlyph(glyph string, visible bool) *ScrollBar {
	if s.axis == scroll.Horizontal {
		s.glyphSet.TrackHorizontal = glyph
	} else {
		s.glyphSet.TrackVertical = glyph
	}
	s.showTrack = visible
	s.MarkDirty()
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	s.trackStyle = style
	s.MarkDirty()
	return s
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

// computeScrollMetrics converts a thumb in cells into subcell units. The thumb
// is never drawn shorter than one cell; a minimum-size thumb near the end of
// the track is shifted back so it stays inside.
func computeScrollMetrics(trackCells int, thumb scroll.ThumbGeometry) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}

	thumbLen := min(max(int(math.Round(thumb.Size*subcell)), subcell), trackLen)
	thumbStart := min(max(int(math.Round(thumb.Position*subcell)), 0), trackLen-thumbLen)
	return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

func cellFill(m scrollMetrics, cellIndex int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	// Convert absolute subcell coverage into cell-local [start,len] used by fractional glyph selection.
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

// glyphFor picks the glyph for one track cell. A partial fill that touches
// the leading edge of the cell uses the upper (vertical) or left (horizontal)
// glyphs, any other partial fill uses the lower or right ones.
func (s *ScrollBar) glyphFor(start, fillLen int) (string, tcell.Style) {
	thumbStyle := s.thumbStyle
	if s.active {
		thumbStyle = s.activeStyle
	}
	leading, trailing := s.glyphSet.ThumbVerticalUpper, s.glyphSet.ThumbVerticalLower
	track := s.glyphSet.TrackVertical
	if s.axis == scroll.Horizontal {
		leading, trailing = s.glyphSet.ThumbHorizontalLeft, s.glyphSet.ThumbHorizontalRight
		track = s.glyphSet.TrackHorizontal
	}

	if fillLen <= 0 {
		if !s.showTrack {
			return " ", s.trackStyle
		}
		return track, s.trackStyle
	}
	if fillLen >= subcell {
		return trailing[subcell-1], thumbStyle
	}
	ix := fillLen - 1
	if start == 0 {
		return leading[ix], thumbStyle
	}
	return trailing[ix], thumbStyle
}

// Draw draws the scroll bar.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	length, thickness := height, width
	if s.axis == scroll.Horizontal {
		length, thickness = width, height
	}
	if length <= 0 || thickness <= 0 {
		return
	}

	m := computeScrollMetrics(length, s.thumb)
	for cell := 0; cell < m.trackCells; cell++ {
		start, fillLen := cellFill(m, cell)
		glyph, style := s.glyphFor(start, fillLen)
		for across := 0; across < thickness; across++ {
			if s.axis == scroll.Horizontal {
				putGlyph(screen, x+cell, y+across, glyph, style)
			} else {
				putGlyph(screen, x+across, y+cell, glyph, style)
			}
		}
	}
	s.MarkClean()
}

var _ Primitive = &ScrollBar{}

// GlyphSetByName returns the glyph set called unicode, legacy or minimal.
func GlyphSetByName(name string) (GlyphSet, bool) {
	switch name {
	case "", "unicode":
		return UnicodeGlyphSet(), true
	case "legacy":
		return LegacyComputingGlyphSet(), true
	case "minimal":
		return MinimalGlyphSet(), true
	}
	return GlyphSet{}, false
}
