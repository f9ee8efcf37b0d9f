package coaster

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// area is a rectangle of cells.
type area struct {
	x, y, width, height int
}

func (r area) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.width && y >= r.y && y < r.y+r.height
}

// Box is the base of every primitive: a rectangle with an optional border and
// title. Embedding types draw their content inside the inner rect.
type Box struct {
	bounds area

	background tcell.Color
	// dontClear leaves the cells under the box untouched, for overlays.
	dontClear bool

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment

	hasFocus bool
	dirty    atomic.Bool
}

// NewBox returns a Box without a border.
func NewBox() *Box {
	b := &Box{
		bounds:         area{width: 15, height: 10},
		background:     Styles.PrimitiveBackgroundColor,
		borderSet:      BorderSetPlain(),
		borderStyle:    tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		titleStyle:     tcell.StyleDefault.Foreground(Styles.TitleColor),
		titleAlignment: AlignmentCenter,
	}
	b.dirty.Store(true)
	return b
}

// GetRect returns the position and size of the box.
func (b *Box) GetRect() (int, int, int, int) {
	return b.bounds.x, b.bounds.y, b.bounds.width, b.bounds.height
}

// GetInnerRect returns the area left for content once the border and the
// title row are taken off. Width and height are never negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	r := b.bounds
	if b.title != "" || b.borders.Has(BordersTop) {
		r.y++
		r.height--
	}
	if b.borders.Has(BordersBottom) {
		r.height--
	}
	if b.borders.Has(BordersLeft) {
		r.x++
		r.width--
	}
	if b.borders.Has(BordersRight) {
		r.width--
	}
	return r.x, r.y, max(r.width, 0), max(r.height, 0)
}

// SetRect moves and resizes the box.
func (b *Box) SetRect(x, y, width, height int) {
	next := area{x: x, y: y, width: width, height: height}
	if b.bounds != next {
		b.bounds = next
		b.MarkDirty()
	}
}

// IsDirty reports whether the box changed since it was last drawn.
func (b *Box) IsDirty() bool {
	return b.dirty.Load()
}

func (b *Box) MarkDirty() {
	b.dirty.Store(true)
}

func (b *Box) MarkClean() {
	b.dirty.Store(false)
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// MouseHandler takes the focus on a left click inside the box.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// InRect reports whether the cell (x, y) lies inside the box.
func (b *Box) InRect(x, y int) bool {
	return b.bounds.contains(x, y)
}

// SetDontClear controls whether the background is cleared before drawing.
func (b *Box) SetDontClear(dontClear bool) *Box {
	b.dontClear = dontClear
	return b
}

// SetBorders sets which borders to draw.
func (b *Box) SetBorders(flag Borders) *Box {
	if b.borders != flag {
		b.borders = flag
		b.MarkDirty()
	}
	return b
}

// SetBorderSet sets the glyphs used for the border.
func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	if b.borderSet != borderSet {
		b.borderSet = borderSet
		b.MarkDirty()
	}
	return b
}

// SetBorderStyle sets the style of the border.
func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	if b.borderStyle != style {
		b.borderStyle = style
		b.MarkDirty()
	}
	return b
}

// SetTitle sets the title shown in the top row.
func (b *Box) SetTitle(title string) *Box {
	if b.title != title {
		b.title = title
		b.MarkDirty()
	}
	return b
}

// SetTitleStyle sets the style of the title.
func (b *Box) SetTitleStyle(style tcell.Style) *Box {
	if b.titleStyle != style {
		b.titleStyle = style
		b.MarkDirty()
	}
	return b
}

// SetTitleAlignment sets the alignment of the title.
func (b *Box) SetTitleAlignment(alignment Alignment) *Box {
	if b.titleAlignment != alignment {
		b.titleAlignment = alignment
		b.MarkDirty()
	}
	return b
}

// Draw draws the box.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the background, border and title of a primitive p
// that embeds this box.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	r := b.bounds
	if r.width <= 0 || r.height <= 0 {
		return
	}

	if !b.dontClear {
		background := tcell.StyleDefault.Background(b.background)
		for y := r.y; y < r.y+r.height; y++ {
			for x := r.x; x < r.x+r.width; x++ {
				screen.SetContent(x, y, ' ', nil, background)
			}
		}
	}

	if b.borders != BordersNone && r.width >= 2 && r.height >= 2 {
		b.drawBorder(screen)
	}

	if b.title != "" && r.width >= 4 {
		printWithStyle(screen, b.title, r.x+1, r.y, 0, r.width-2, b.titleAlignment, b.titleStyle, true)
	}
}

func (b *Box) drawBorder(screen tcell.Screen) {
	r := b.bounds
	right, bottom := r.x+r.width-1, r.y+r.height-1
	set, style := b.borderSet, b.borderStyle

	edges := []struct {
		side      Borders
		glyph     string
		vertical  bool
		fixed     int
		from, end int
	}{
		{BordersTop, set.Top, false, r.y, r.x + 1, right},
		{BordersBottom, set.Bottom, false, bottom, r.x + 1, right},
		{BordersLeft, set.Left, true, r.x, r.y + 1, bottom},
		{BordersRight, set.Right, true, right, r.y + 1, bottom},
	}
	for _, e := range edges {
		if !b.borders.Has(e.side) {
			continue
		}
		for i := e.from; i < e.end; i++ {
			if e.vertical {
				putGlyph(screen, e.fixed, i, e.glyph, style)
			} else {
				putGlyph(screen, i, e.fixed, e.glyph, style)
			}
		}
	}

	corners := []struct {
		sides Borders
		glyph string
		x, y  int
	}{
		{BordersTop | BordersLeft, set.TopLeft, r.x, r.y},
		{BordersTop | BordersRight, set.TopRight, right, r.y},
		{BordersBottom | BordersLeft, set.BottomLeft, r.x, bottom},
		{BordersBottom | BordersRight, set.BottomRight, right, bottom},
	}
	for _, c := range corners {
		if b.borders.Has(c.sides) {
			putGlyph(screen, c.x, c.y, c.glyph, style)
		}
	}
}

// Focus is called when the box receives focus.
func (b *Box) Focus(delegate func(p Primitive)) {
	if !b.hasFocus {
		b.hasFocus = true
		b.MarkDirty()
	}
}

// Blur is called when the box loses focus.
func (b *Box) Blur() {
	if b.hasFocus {
		b.hasFocus = false
		b.MarkDirty()
	}
}

// HasFocus reports whether the box has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}
