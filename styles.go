package coaster

import "github.com/gdamore/tcell/v2"

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles.
	SecondaryTextColor       tcell.Color // Highlighted text such as the focused title.
	ScrollBarTrackColor      tcell.Color // Scroll bar track.
	ScrollBarThumbColor      tcell.Color // Scroll bar thumb.
	ScrollBarActiveColor     tcell.Color // Scroll bar thumb while dragged.
}

// Styles defines the theme for applications. The default is for a black
// background and some basic colors: black, white, yellow, and gray.
var Styles = Theme{
	PrimitiveBackgroundColor: tcell.ColorBlack,
	BorderColor:              tcell.ColorWhite,
	TitleColor:               tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorYellow,
	ScrollBarTrackColor:      tcell.ColorDarkGray,
	ScrollBarThumbColor:      tcell.ColorSilver,
	ScrollBarActiveColor:     tcell.ColorWhite,
}
