package coaster

import "github.com/gdamore/tcell/v2"

// Box drawing and block element glyphs used by borders and scroll bars.
const (
	BoxDrawingsLightHorizontal       = "\u2500" // ─
	BoxDrawingsHeavyHorizontal       = "\u2501" // ━
	BoxDrawingsLightVertical         = "\u2502" // │
	BoxDrawingsHeavyVertical         = "\u2503" // ┃
	BoxDrawingsLightDownAndRight     = "\u250c" // ┌
	BoxDrawingsHeavyDownAndRight     = "\u250f" // ┏
	BoxDrawingsLightDownAndLeft      = "\u2510" // ┐
	BoxDrawingsHeavyDownAndLeft      = "\u2513" // ┓
	BoxDrawingsLightUpAndRight       = "\u2514" // └
	BoxDrawingsHeavyUpAndRight       = "\u2517" // ┗
	BoxDrawingsLightUpAndLeft        = "\u2518" // ┘
	BoxDrawingsHeavyUpAndLeft        = "\u251b" // ┛
	BoxDrawingsDoubleHorizontal      = "\u2550" // ═
	BoxDrawingsDoubleVertical        = "\u2551" // ║
	BoxDrawingsDoubleDownAndRight    = "\u2554" // ╔
	BoxDrawingsDoubleDownAndLeft     = "\u2557" // ╗
	BoxDrawingsDoubleUpAndRight      = "\u255a" // ╚
	BoxDrawingsDoubleUpAndLeft       = "\u255d" // ╝
	BoxDrawingsLightArcDownAndRight  = "\u256d" // ╭
	BoxDrawingsLightArcDownAndLeft   = "\u256e" // ╮
	BoxDrawingsLightArcUpAndLeft     = "\u256f" // ╯
	BoxDrawingsLightArcUpAndRight    = "\u2570" // ╰

	BlockUpperHalfBlock          = "\u2580" // ▀
	BlockLowerOneEighthBlock     = "\u2581" // ▁
	BlockLowerOneQuarterBlock    = "\u2582" // ▂
	BlockLowerThreeEighthsBlock  = "\u2583" // ▃
	BlockLowerHalfBlock          = "\u2584" // ▄
	BlockLowerFiveEighthsBlock   = "\u2585" // ▅
	BlockLowerThreeQuartersBlock = "\u2586" // ▆
	BlockLowerSevenEighthsBlock  = "\u2587" // ▇
	BlockFullBlock               = "\u2588" // █
	BlockLeftSevenEighthsBlock   = "\u2589" // ▉
	BlockLeftThreeQuartersBlock  = "\u258a" // ▊
	BlockLeftFiveEighthsBlock    = "\u258b" // ▋
	BlockLeftHalfBlock           = "\u258c" // ▌
	BlockLeftThreeEighthsBlock   = "\u258d" // ▍
	BlockLeftOneQuarterBlock     = "\u258e" // ▎
	BlockLeftOneEighthBlock      = "\u258f" // ▏
	BlockRightHalfBlock          = "\u2590" // ▐
	BlockLightShade              = "\u2591" // ░
	BlockUpperOneEighthBlock     = "\u2594" // ▔
	BlockRightOneEighthBlock     = "\u2595" // ▕
)

// BorderSet defines various borders used when primitives are drawn.
type BorderSet struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

// BorderSetHidden draws the border as blank cells, keeping its space.
func BorderSetHidden() BorderSet {
	return BorderSet{
		Top:         " ",
		Bottom:      " ",
		Left:        " ",
		Right:       " ",
		TopLeft:     " ",
		TopRight:    " ",
		BottomLeft:  " ",
		BottomRight: " ",
	}
}

// BorderSetPlain uses light lines with square corners.
func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightDownAndRight,
		TopRight:    BoxDrawingsLightDownAndLeft,
		BottomLeft:  BoxDrawingsLightUpAndRight,
		BottomRight: BoxDrawingsLightUpAndLeft,
	}
}

func BorderSetRound() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightArcDownAndRight,
		TopRight:    BoxDrawingsLightArcDownAndLeft,
		BottomLeft:  BoxDrawingsLightArcUpAndRight,
		BottomRight: BoxDrawingsLightArcUpAndLeft,
	}
}

func BorderSetThick() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsHeavyHorizontal,
		Bottom:      BoxDrawingsHeavyHorizontal,
		Left:        BoxDrawingsHeavyVertical,
		Right:       BoxDrawingsHeavyVertical,
		TopLeft:     BoxDrawingsHeavyDownAndRight,
		TopRight:    BoxDrawingsHeavyDownAndLeft,
		BottomLeft:  BoxDrawingsHeavyUpAndRight,
		BottomRight: BoxDrawingsHeavyUpAndLeft,
	}
}

func BorderSetDouble() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsDoubleHorizontal,
		Bottom:      BoxDrawingsDoubleHorizontal,
		Left:        BoxDrawingsDoubleVertical,
		Right:       BoxDrawingsDoubleVertical,
		TopLeft:     BoxDrawingsDoubleDownAndRight,
		TopRight:    BoxDrawingsDoubleDownAndLeft,
		BottomLeft:  BoxDrawingsDoubleUpAndRight,
		BottomRight: BoxDrawingsDoubleUpAndLeft,
	}
}

// BorderSetByName returns the border set called name. The empty name is the
// plain set.
func BorderSetByName(name string) (BorderSet, bool) {
	switch name {
	case "", "plain":
		return BorderSetPlain(), true
	case "round":
		return BorderSetRound(), true
	case "thick":
		return BorderSetThick(), true
	case "double":
		return BorderSetDouble(), true
	case "hidden":
		return BorderSetHidden(), true
	}
	return BorderSet{}, false
}

// Borders is a set of box sides.
type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

// Has reports whether all of the given borders are set.
func (b Borders) Has(flag Borders) bool {
	return flag != 0 && b&flag == flag
}

// putGlyph writes a single-cell glyph string at the given position.
func putGlyph(screen tcell.Screen, x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	screen.SetContent(x, y, runes[0], runes[1:], style)
}
