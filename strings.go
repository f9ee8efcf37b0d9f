package coaster

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Segment is a styled piece of text.
type Segment struct {
	Text  string
	Style tcell.Style
}

// Line is a list of styled segments.
type Line []Segment

// NewLine returns a line holding a single segment in the default style.
func NewLine(text string) Line {
	if text == "" {
		return Line{}
	}
	return Line{{Text: text, Style: tcell.StyleDefault}}
}

// Width returns the number of cells needed to print the line.
func (l Line) Width() int {
	var width int
	for _, segment := range l {
		width += StringWidth(segment.Text)
	}
	return width
}

// String returns the line's text without styles.
func (l Line) String() string {
	var b strings.Builder
	for _, segment := range l {
		b.WriteString(segment.Text)
	}
	return b.String()
}

// LineBuilder incrementally builds styled lines from text writes.
type LineBuilder struct {
	lines   []Line
	current Line
}

// NewLineBuilder returns a new line builder.
func NewLineBuilder() *LineBuilder {
	return &LineBuilder{}
}

// Write appends text with style and splits on newline boundaries.
func (b *LineBuilder) Write(text string, style tcell.Style) {
	if text == "" {
		return
	}
	for len(text) > 0 {
		nl := strings.IndexByte(text, '\n')
		if nl < 0 {
			b.writeSegment(text, style)
			return
		}
		if nl > 0 {
			b.writeSegment(text[:nl], style)
		}
		b.NewLine()
		text = text[nl+1:]
	}
}

func (b *LineBuilder) writeSegment(text string, style tcell.Style) {
	if text == "" {
		return
	}
	if n := len(b.current); n > 0 && b.current[n-1].Style == style {
		b.current[n-1].Text += text
		return
	}
	b.current = append(b.current, Segment{Text: text, Style: style})
}

// NewLine flushes the current line into the builder output.
func (b *LineBuilder) NewLine() {
	line := make(Line, len(b.current))
	copy(line, b.current)
	b.lines = append(b.lines, line)
	b.current = nil
}

// Finish returns all built lines.
func (b *LineBuilder) Finish() []Line {
	if len(b.current) > 0 || len(b.lines) == 0 {
		b.NewLine()
	}
	return b.lines
}

// stepState represents the current state of the grapheme parser.
type stepState struct {
	unisegState int
	boundaries  int
	grossLength int
}

// Width returns the grapheme cluster's width in cells.
func (s *stepState) Width() int {
	return s.boundaries >> uniseg.ShiftWidth
}

// GrossLength returns the grapheme cluster's length in bytes.
func (s *stepState) GrossLength() int {
	return s.grossLength
}

// step iterates over grapheme clusters of a string.
func step(str string, state *stepState) (cluster, rest string, newState *stepState) {
	if state == nil {
		state = &stepState{
			unisegState: -1,
		}
	}
	if len(str) == 0 {
		newState = state
		return
	}

	preState := state.unisegState
	cluster, rest, state.boundaries, state.unisegState = uniseg.StepString(str, preState)
	state.grossLength = len(cluster)
	if rest == "" && !uniseg.HasTrailingLineBreakInString(cluster) {
		state.boundaries &^= uniseg.MaskLine
	}

	newState = state
	return
}

// StringWidth returns the width of the given string needed to print it on
// screen.
func StringWidth(text string) (width int) {
	var state *stepState
	for len(text) > 0 {
		_, text, state = step(text, state)
		width += state.Width()
	}
	return
}
