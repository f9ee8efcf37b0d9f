package coaster

import (
	"github.com/gdamore/tcell/v2"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// printWithStyle prints text at (x,y) within maxWidth cells, after skipping
// skipWidth cells at the beginning of the text. It returns the start index,
// end index (exclusive) and screen width of the text actually printed. If
// maintainBackground is "true", the existing screen background is not changed
// (i.e. the style's background color is ignored).
func printWithStyle(screen tcell.Screen, text string, x, y, skipWidth, maxWidth int, alignment Alignment, style tcell.Style, maintainBackground bool) (start, end, printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0, 0, 0
	}

	// If we don't overwrite the background, we use the default color.
	if maintainBackground {
		style = style.Background(tcell.ColorDefault)
	}

	// Skip beginning and measure width.
	var textWidth int
	state := &stepState{
		unisegState: -1,
	}
	newState := *state
	str := text
	for len(str) > 0 {
		_, str, state = step(str, state)
		if skipWidth > 0 {
			skipWidth -= state.Width()
			text = str
			newState = *state
			start += state.GrossLength()
		} else {
			textWidth += state.Width()
		}
	}
	state = &newState

	// Reduce all alignments to AlignLeft.
	switch alignment {
	case AlignmentRight:
		// Chop off characters on the left until it fits.
		for len(text) > 0 && textWidth > maxWidth {
			_, text, state = step(text, state)
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		x, maxWidth = x+maxWidth-textWidth, textWidth
	case AlignmentCenter:
		// Chop off characters on the left until it fits.
		subtracted := (textWidth - maxWidth) / 2
		for len(text) > 0 && subtracted > 0 {
			_, text, state = step(text, state)
			subtracted -= state.Width()
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		if textWidth < maxWidth {
			x, maxWidth = x+maxWidth/2-textWidth/2, textWidth
		}
	}

	// Draw left-aligned text.
	end = start
	rightBorder := x + maxWidth
	for len(text) > 0 && x < rightBorder && x < totalWidth {
		var c string
		c, text, state = step(text, state)
		if c == "" {
			break
		}
		width := state.Width()
		if x+width > rightBorder {
			break
		}

		if width > 0 && x >= 0 {
			finalStyle := style
			if maintainBackground {
				_, _, existingStyle, _ := screen.GetContent(x, y)
				_, background, _ := existingStyle.Decompose()
				finalStyle = finalStyle.Background(background)
			}
			runes := []rune(c)
			screen.SetContent(x, y, runes[0], runes[1:], finalStyle)
			// To avoid undesired effects, we populate all cells.
			for offset := 1; offset < width; offset++ {
				screen.SetContent(x+offset, y, ' ', nil, finalStyle)
			}
		}

		x += width
		end += state.GrossLength()
		printedWidth += width
	}

	return
}

// printLine prints styled segments starting at (x,y), skipping the first
// skipWidth cells and not exceeding maxWidth cells. It returns the printed
// width.
func printLine(screen tcell.Screen, line Line, x, y, skipWidth, maxWidth int) int {
	var printed int
	for _, segment := range line {
		if printed >= maxWidth {
			break
		}
		segmentWidth := StringWidth(segment.Text)
		if skipWidth >= segmentWidth {
			skipWidth -= segmentWidth
			continue
		}
		_, _, width := printWithStyle(screen, segment.Text, x+printed, y, skipWidth, maxWidth-printed, AlignmentLeft, segment.Style, false)
		skipWidth = 0
		printed += width
	}
	return printed
}

// PrintWithStyle works like [Print] but takes a full style, including the
// background color. It returns the number of bytes and the width printed.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, style, false)
	return end - start, width
}
