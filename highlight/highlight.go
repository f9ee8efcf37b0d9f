// Package highlight turns source text into styled coaster lines using chroma
// lexers and styles.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/xqrs/coaster"
)

const defaultStyleName = "monokai"

// Style resolves a style name to a chroma style, falling back to the default.
func Style(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}

// Lexer picks a lexer by filename, then by analysing the text, and falls
// back to plain text.
func Lexer(filename, text string) chroma.Lexer {
	if filename != "" {
		if l := lexers.Match(filename); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

// Language returns the name of the lexer Lines would use.
func Language(filename, text string) string {
	return Lexer(filename, text).Config().Name
}

// Lines highlights text and splits it into lines. Tabs are expanded to
// coaster.TabSize spaces. If tokenising fails the text is returned unstyled.
func Lines(filename, text, styleName string) []coaster.Line {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", coaster.TabSize))
	if text == "" {
		return nil
	}

	lexer := chroma.Coalesce(Lexer(filename, text))
	style := Style(styleName)

	b := coaster.NewLineBuilder()
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		b.Write(text, tcell.StyleDefault)
		return trimTrailing(b.Finish(), text)
	}
	for token := iterator(); token != chroma.EOF; token = iterator() {
		b.Write(token.Value, tokenStyle(style.Get(token.Type)))
	}
	return trimTrailing(b.Finish(), text)
}

// trimTrailing drops lines a lexer produced past the end of text, such as
// the one after an added final newline.
func trimTrailing(lines []coaster.Line, text string) []coaster.Line {
	want := strings.Count(strings.TrimSuffix(text, "\n"), "\n") + 1
	if len(lines) > want {
		lines = lines[:want]
	}
	return lines
}

// tokenStyle converts a chroma style entry into a tcell style. Backgrounds
// are left to the terminal.
func tokenStyle(entry chroma.StyleEntry) tcell.Style {
	style := tcell.StyleDefault
	if entry.Colour.IsSet() {
		style = style.Foreground(tcell.NewRGBColor(int32(entry.Colour.Red()), int32(entry.Colour.Green()), int32(entry.Colour.Blue())))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}
