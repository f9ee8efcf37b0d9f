// Package help renders keybind help and a status text on a single bar, or
// the full key map in aligned columns.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/xqrs/coaster"
	"github.com/xqrs/coaster/keybind"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

type Help struct {
	*coaster.Box
	Styles Styles

	keyMap         KeyMap
	showAll        bool
	status         string
	shortSeparator string
	fullSeparator  string
	ellipsis       string
}

func New() *Help {
	return &Help{
		Box:            coaster.NewBox(),
		Styles:         DefaultStyles(),
		shortSeparator: " • ",
		fullSeparator:  "    ",
		ellipsis:       "…",
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetShowAll enables or disables full help mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	h.MarkDirty()
	return h
}

// ShowAll returns whether full help mode is enabled.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// SetStatus sets the text shown right-aligned in short help mode.
func (h *Help) SetStatus(status string) *Help {
	if h.status != status {
		h.status = status
		h.MarkDirty()
	}
	return h
}

// Status returns the status text.
func (h *Help) Status() string {
	return h.status
}

// Height returns the number of rows the help needs at the given width.
func (h *Help) Height(width int) int {
	if !h.showAll || h.keyMap == nil {
		return 1
	}
	return max(len(h.FullHelpLines(h.keyMap.FullHelp(), width)), 1)
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	x, y, width, height := h.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	if h.showAll && h.keyMap != nil {
		lines := h.FullHelpLines(h.keyMap.FullHelp(), width)
		for row := 0; row < len(lines) && row < height; row++ {
			drawLine(screen, x, y+row, width, lines[row])
		}
		h.MarkClean()
		return
	}

	available := width
	if h.status != "" {
		_, statusWidth := coaster.PrintWithStyle(screen, h.status, x, y, width, coaster.AlignmentRight, h.Styles.StatusStyle)
		available -= statusWidth + 1
	}
	if h.keyMap != nil && available > 0 {
		drawLine(screen, x, y, available, h.ShortHelpLine(h.keyMap.ShortHelp(), available))
	}
	h.MarkClean()
}

// ShortHelpLine renders bindings on one line, truncated with an ellipsis
// when they do not fit maxWidth. A maxWidth of zero means unlimited.
func (h *Help) ShortHelpLine(bindings []keybind.Keybind, maxWidth int) coaster.Line {
	var items []coaster.Line
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		if item := shortItem(kb, h.Styles.ShortKeyStyle, h.Styles.ShortDescStyle); len(item) > 0 {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}

	sepText := h.shortSeparator
	if sepText == "" {
		sepText = " "
	}
	sep := coaster.Segment{Text: sepText, Style: h.Styles.ShortSeparatorStyle}

	out := items[0]
	if maxWidth > 0 && out.Width() > maxWidth {
		return nil
	}
	for _, item := range items[1:] {
		candidate := append(append(append(coaster.Line{}, out...), sep), item...)
		if maxWidth > 0 && candidate.Width() > maxWidth {
			return append(out, h.truncationTail(out, maxWidth)...)
		}
		out = candidate
	}
	return out
}

// FullHelpLines renders groups as columns separated by the full separator.
// Columns that do not fit maxWidth are dropped and marked with an ellipsis.
func (h *Help) FullHelpLines(groups [][]keybind.Keybind, maxWidth int) []coaster.Line {
	type column struct {
		entries []keybind.Help
		keyW    int
		colW    int
	}

	var columns []column
	for _, group := range groups {
		var col column
		for _, kb := range group {
			hp := kb.Help()
			if !kb.Enabled() || (hp.Key == "" && hp.Desc == "") {
				continue
			}
			col.entries = append(col.entries, hp)
			col.keyW = max(col.keyW, coaster.StringWidth(hp.Key))
		}
		if len(col.entries) == 0 {
			continue
		}
		for _, e := range col.entries {
			w := col.keyW + coaster.StringWidth(e.Desc)
			if e.Key != "" && e.Desc != "" {
				w++
			}
			col.colW = max(col.colW, w)
		}
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return nil
	}

	sepText := h.fullSeparator
	if sepText == "" {
		sepText = " "
	}
	sepW := coaster.StringWidth(sepText)

	// Columns are included left to right until the next one would overflow.
	included, totalW := 0, 0
	for i, col := range columns {
		nextW := col.colW
		if i > 0 {
			nextW += sepW
		}
		if maxWidth > 0 && totalW+nextW > maxWidth {
			break
		}
		included++
		totalW += nextW
	}
	if included == 0 {
		return []coaster.Line{{{Text: h.ellipsis, Style: h.Styles.EllipsisStyle}}}
	}

	rows := 0
	for _, col := range columns[:included] {
		rows = max(rows, len(col.entries))
	}

	lines := make([]coaster.Line, 0, rows)
	for row := 0; row < rows; row++ {
		b := coaster.NewLineBuilder()
		for i, col := range columns[:included] {
			if i > 0 {
				b.Write(sepText, h.Styles.FullSeparatorStyle)
			}
			var cellW int
			if row < len(col.entries) {
				e := col.entries[row]
				b.Write(e.Key, h.Styles.FullKeyStyle)
				b.Write(strings.Repeat(" ", col.keyW-coaster.StringWidth(e.Key)), h.Styles.FullKeyStyle)
				cellW = col.keyW
				if e.Key != "" && e.Desc != "" {
					b.Write(" ", h.Styles.FullDescStyle)
					cellW++
				}
				b.Write(e.Desc, h.Styles.FullDescStyle)
				cellW += coaster.StringWidth(e.Desc)
			}
			// Pad every column but the last so separators stay aligned.
			if i < included-1 && col.colW > cellW {
				b.Write(strings.Repeat(" ", col.colW-cellW), h.Styles.FullDescStyle)
			}
		}
		lines = append(lines, b.Finish()[0])
	}

	if included < len(columns) {
		lines[0] = append(lines[0], h.truncationTail(lines[0], maxWidth)...)
	}
	return lines
}

// truncationTail returns the ellipsis marker if it fully fits after current.
func (h *Help) truncationTail(current coaster.Line, maxWidth int) coaster.Line {
	if maxWidth <= 0 || h.ellipsis == "" {
		return nil
	}
	tail := coaster.Line{
		{Text: " ", Style: h.Styles.EllipsisStyle},
		{Text: h.ellipsis, Style: h.Styles.EllipsisStyle},
	}
	if current.Width()+tail.Width() <= maxWidth {
		return tail
	}
	return nil
}

func drawLine(screen tcell.Screen, x, y, width int, line coaster.Line) {
	for _, s := range line {
		if s.Text == "" || width <= 0 {
			continue
		}
		_, printed := coaster.PrintWithStyle(screen, s.Text, x, y, width, coaster.AlignmentLeft, s.Style)
		x += printed
		width -= printed
	}
}

func shortItem(kb keybind.Keybind, keyStyle, descStyle tcell.Style) coaster.Line {
	help := kb.Help()
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return coaster.Line{{Text: help.Desc, Style: descStyle}}
	case help.Desc == "":
		return coaster.Line{{Text: help.Key, Style: keyStyle}}
	default:
		return coaster.Line{{Text: help.Key, Style: keyStyle}, {Text: " ", Style: descStyle}, {Text: help.Desc, Style: descStyle}}
	}
}
