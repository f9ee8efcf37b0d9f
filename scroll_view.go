package coaster

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/xqrs/coaster/scroll"
)

// TabSize is the number of spaces a tab expands to in a ScrollView.
var TabSize = 4

// ScrollView displays styled lines through a window that can be moved over
// them. It implements [scroll.Surface]: the content extent is the number of
// lines by the widest line, the viewport is the inner rect and the scroll
// position selects the first visible row and column.
type ScrollView struct {
	*Box

	lines        []Line
	contentWidth int

	// The native scroll position. Fractional positions are kept as given and
	// rounded when drawing.
	position scroll.Offset

	subscribers map[int]func()
	nextID      int

	// The geometry last reported to subscribers.
	content, viewport scroll.Size
}

var _ scroll.Surface = (*ScrollView)(nil)

// NewScrollView returns an empty scroll view.
func NewScrollView() *ScrollView {
	return &ScrollView{
		Box:         NewBox(),
		subscribers: make(map[int]func()),
	}
}

// SetText replaces the content with unstyled text split on newlines.
func (v *ScrollView) SetText(text string) *ScrollView {
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", TabSize))
	text = strings.TrimSuffix(text, "\n")
	var lines []Line
	if text != "" {
		for _, line := range strings.Split(text, "\n") {
			lines = append(lines, NewLine(strings.TrimSuffix(line, "\r")))
		}
	}
	return v.SetLines(lines)
}

// SetLines replaces the content.
func (v *ScrollView) SetLines(lines []Line) *ScrollView {
	v.lines = lines
	v.contentWidth = 0
	for _, line := range lines {
		v.contentWidth = max(v.contentWidth, line.Width())
	}
	v.MarkDirty()
	v.checkGeometry()
	return v
}

// AppendLine adds a line at the end of the content.
func (v *ScrollView) AppendLine(line Line) *ScrollView {
	v.lines = append(v.lines, line)
	v.contentWidth = max(v.contentWidth, line.Width())
	v.MarkDirty()
	v.checkGeometry()
	return v
}

// Clear removes all content.
func (v *ScrollView) Clear() *ScrollView {
	return v.SetLines(nil)
}

// Lines returns the content.
func (v *ScrollView) Lines() []Line {
	return v.lines
}

// SetRect sets a new position of the view and reports a changed viewport.
func (v *ScrollView) SetRect(x, y, width, height int) {
	v.Box.SetRect(x, y, width, height)
	v.checkGeometry()
}

// ContentExtent implements [scroll.Surface].
func (v *ScrollView) ContentExtent() scroll.Size {
	return scroll.Size{Height: float64(len(v.lines)), Width: float64(v.contentWidth)}
}

// ViewportSize implements [scroll.Surface].
func (v *ScrollView) ViewportSize() scroll.Size {
	_, _, width, height := v.GetInnerRect()
	return scroll.Size{Height: float64(height), Width: float64(width)}
}

// BoundingBox implements [scroll.Surface]. Coordinates are screen cells.
func (v *ScrollView) BoundingBox() scroll.Rect {
	x, y, width, height := v.GetInnerRect()
	return scroll.Rect{
		Top:    float64(y),
		Left:   float64(x),
		Bottom: float64(y + height),
		Right:  float64(x + width),
	}
}

// ScrollPosition implements [scroll.Surface].
func (v *ScrollView) ScrollPosition() scroll.Offset {
	return v.position
}

// SetScrollPosition implements [scroll.Surface].
func (v *ScrollView) SetScrollPosition(offset scroll.Offset) {
	if v.position != offset {
		v.position = offset
		v.MarkDirty()
	}
}

// SubscribeGeometry implements [scroll.Surface].
func (v *ScrollView) SubscribeGeometry(fn func()) func() {
	id := v.nextID
	v.nextID++
	v.subscribers[id] = fn
	return func() {
		delete(v.subscribers, id)
	}
}

// checkGeometry notifies subscribers when the content extent or the viewport
// differ from what was last reported.
func (v *ScrollView) checkGeometry() {
	content, viewport := v.ContentExtent(), v.ViewportSize()
	if content == v.content && viewport == v.viewport {
		return
	}
	v.content, v.viewport = content, viewport
	for _, fn := range v.subscribers {
		fn()
	}
}

// visibleOrigin returns the first visible row and column.
func (v *ScrollView) visibleOrigin() (row, column int) {
	return int(math.Round(v.position.Top)), int(math.Round(v.position.Left))
}

// Draw draws this primitive onto the screen.
func (v *ScrollView) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)
	v.checkGeometry()

	x, y, width, height := v.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	row, column := v.visibleOrigin()
	for i := 0; i < height; i++ {
		index := row + i
		if index < 0 || index >= len(v.lines) {
			continue
		}
		printLine(screen, v.lines[index], x, y+i, column, width)
	}
	v.MarkClean()
}

var _ Primitive = &ScrollView{}
