package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/xqrs/coaster"
	"github.com/xqrs/coaster/config"
	"github.com/xqrs/coaster/help"
	"github.com/xqrs/coaster/highlight"
	"github.com/xqrs/coaster/keybind"
	"github.com/xqrs/coaster/scroll"
)

// maxPanes is the number of files shown side by side.
const maxPanes = 2

type keyMap struct {
	Quit             keybind.Keybind
	CycleMode        keybind.Keybind
	ToggleVertical   keybind.Keybind
	ToggleHorizontal keybind.Keybind
	Reload           keybind.Keybind
	NextView         keybind.Keybind
	Help             keybind.Keybind
}

func newKeyMap(keys config.Keys) keyMap {
	return keyMap{
		Quit:             config.Bind(keys.Quit, "q", "quit"),
		CycleMode:        config.Bind(keys.CycleMode, "m", "show mode"),
		ToggleVertical:   config.Bind(keys.ToggleVertical, "v", "vertical"),
		ToggleHorizontal: config.Bind(keys.ToggleHorizontal, "h", "horizontal"),
		Reload:           config.Bind(keys.Reload, "r", "reload"),
		NextView:         config.Bind(keys.NextView, "tab", "next"),
		Help:             config.Bind(keys.Help, "?", "help"),
	}
}

func (k keyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Quit, k.CycleMode, k.ToggleVertical, k.ToggleHorizontal, k.Reload, k.NextView, k.Help}
}

func (k keyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.Quit, k.NextView, k.Help},
		{k.CycleMode, k.ToggleVertical, k.ToggleHorizontal, k.Reload},
	}
}

// pane is one file shown in a scroller.
type pane struct {
	path     string
	scroller *coaster.Scroller
}

// viewer is the root primitive: the panes side by side above a help bar.
type viewer struct {
	*coaster.Flex

	panes []*pane
	row   *coaster.Flex
	help  *help.Help
	keys  keyMap
	cfg   config.Config
}

func newViewer(scheduler scroll.Scheduler, cfg config.Config, paths []string) (*viewer, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to show")
	}
	if len(paths) > maxPanes {
		paths = paths[:maxPanes]
	}

	v := &viewer{
		Flex: coaster.NewFlex().SetDirection(coaster.FlexColumn),
		row:  coaster.NewFlex(),
		help: help.New(),
	}
	for i, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		s := coaster.NewScroller(scheduler, cfg.Scroll)
		s.SetBorders(coaster.BordersAll)
		s.SetTitle(" " + filepath.Base(path) + " ")
		s.SetTitleAlignment(coaster.AlignmentLeft)
		v.panes = append(v.panes, &pane{path: abs, scroller: s})
		v.row.AddItem(s, 0, 1, i == 0)
	}
	v.Flex.AddItem(v.row, 0, 1, true)
	v.Flex.AddItem(v.help, 1, 0, false)

	if err := v.applyConfig(cfg); err != nil {
		return nil, err
	}
	return v, nil
}

// applyConfig applies cfg to every pane and reloads their content, since the
// theme may have changed.
func (v *viewer) applyConfig(cfg config.Config) error {
	glyphs, ok := coaster.GlyphSetByName(cfg.Glyphs)
	if !ok {
		return fmt.Errorf("unknown glyph set %q", cfg.Glyphs)
	}
	border, ok := coaster.BorderSetByName(cfg.Border)
	if !ok {
		return fmt.Errorf("unknown border %q", cfg.Border)
	}
	thumb, track, active, err := barStyles(cfg.Bar)
	if err != nil {
		return err
	}

	v.cfg = cfg
	v.keys = newKeyMap(cfg.Keys)
	v.keys.NextView.SetEnabled(len(v.panes) > 1)
	v.help.SetKeyMap(v.keys)
	for _, p := range v.panes {
		p.scroller.SetConfig(cfg.Scroll)
		p.scroller.SetBorderSet(border)
		for _, a := range []scroll.Axis{scroll.Vertical, scroll.Horizontal} {
			bar := p.scroller.ScrollBar(a).SetGlyphSet(glyphs)
			if cfg.Bar.ThumbGlyph != "" {
				bar.SetThumbGlyph(cfg.Bar.ThumbGlyph)
			}
			trackGlyph := cfg.Bar.TrackGlyph
			if trackGlyph == "" {
				trackGlyph = glyphs.TrackVertical
				if a == scroll.Horizontal {
					trackGlyph = glyphs.TrackHorizontal
				}
			}
			bar.SetTrackGlyph(trackGlyph, !cfg.Bar.HideTrack)
			bar.SetThumbStyle(thumb).SetTrackStyle(track).SetActiveStyle(active)
		}
	}
	return v.reloadAll()
}

// barStyles resolves the scroll bar colors, keeping the theme's for the ones
// left empty.
func barStyles(bar config.Bar) (thumb, track, active tcell.Style, err error) {
	colors := []struct {
		name     string
		fallback tcell.Color
		style    *tcell.Style
	}{
		{bar.ThumbColor, coaster.Styles.ScrollBarThumbColor, &thumb},
		{bar.TrackColor, coaster.Styles.ScrollBarTrackColor, &track},
		{bar.ActiveColor, coaster.Styles.ScrollBarActiveColor, &active},
	}
	for _, c := range colors {
		color, err := config.Color(c.name, c.fallback)
		if err != nil {
			return thumb, track, active, err
		}
		*c.style = tcell.StyleDefault.Foreground(color)
	}
	return thumb, track, active, nil
}

func (v *viewer) reloadAll() error {
	for _, p := range v.panes {
		if err := v.load(p); err != nil {
			return err
		}
	}
	return nil
}

// reload reloads the pane showing path, if any.
func (v *viewer) reload(path string) error {
	for _, p := range v.panes {
		if p.path == path {
			return v.load(p)
		}
	}
	return nil
}

func (v *viewer) load(p *pane) error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", p.path, err)
	}
	p.scroller.SetLines(highlight.Lines(p.path, string(data), v.cfg.Theme))
	return nil
}

// focused returns the index of the pane with focus, or 0.
func (v *viewer) focused() int {
	for i, p := range v.panes {
		if p.scroller.HasFocus() {
			return i
		}
	}
	return 0
}

// setScroll replaces the scroll configuration of every pane.
func (v *viewer) setScroll(cfg scroll.Config) {
	v.cfg.Scroll = cfg
	for _, p := range v.panes {
		p.scroller.SetConfig(cfg)
	}
}

// InputHandler handles the global keys and passes the rest to the focused
// pane.
func (v *viewer) InputHandler(event *tcell.EventKey) coaster.Command {
	cfg := v.cfg.Scroll
	switch {
	case keybind.Matches(event, v.keys.Quit):
		return coaster.QuitCommand{}
	case keybind.Matches(event, v.keys.CycleMode):
		mode := cfg.Vertical.ShowMode.Next()
		cfg.Vertical.ShowMode = mode
		cfg.Horizontal.ShowMode = mode
		v.setScroll(cfg)
	case keybind.Matches(event, v.keys.ToggleVertical):
		cfg.Vertical.Enabled = !cfg.Vertical.Enabled
		v.setScroll(cfg)
	case keybind.Matches(event, v.keys.ToggleHorizontal):
		cfg.Horizontal.Enabled = !cfg.Horizontal.Enabled
		v.setScroll(cfg)
	case keybind.Matches(event, v.keys.Reload):
		if err := v.reloadAll(); err != nil {
			scroll.Logger().Warn("reload failed", "err", err)
		}
	case keybind.Matches(event, v.keys.NextView):
		next := v.panes[(v.focused()+1)%len(v.panes)]
		return coaster.SetFocusCommand{Target: next.scroller}
	case keybind.Matches(event, v.keys.Help):
		v.help.SetShowAll(!v.help.ShowAll())
	default:
		return v.Flex.InputHandler(event)
	}
	return coaster.RedrawCommand{}
}

// status describes the focused pane.
func (v *viewer) status() string {
	p := v.panes[v.focused()]
	e := p.scroller.Engine()
	g := e.Geometry()
	offset := e.Offset()
	return fmt.Sprintf("%s  %s  %d:%d/%d",
		filepath.Base(p.path),
		v.cfg.Scroll.Vertical.ShowMode,
		int(offset.Top), int(offset.Left),
		int(g.Content.Height),
	)
}

// Draw updates the help bar and the pane frames and draws the viewer. The
// focused pane has its border and title highlighted.
func (v *viewer) Draw(screen tcell.Screen) {
	base := tcell.StyleDefault.Background(coaster.Styles.PrimitiveBackgroundColor)
	for _, p := range v.panes {
		border := base.Foreground(coaster.Styles.BorderColor)
		title := base.Foreground(coaster.Styles.TitleColor)
		if p.scroller.HasFocus() {
			border = base.Foreground(coaster.Styles.SecondaryTextColor).Bold(true)
			title = border
		}
		p.scroller.SetBorderStyle(border)
		p.scroller.SetTitleStyle(title)
	}

	_, _, width, _ := v.GetRect()
	v.help.SetStatus(v.status())
	v.Flex.ResizeItem(v.help, v.help.Height(width), 0)
	v.Flex.Draw(screen)
}

// Close detaches every pane.
func (v *viewer) Close() {
	for _, p := range v.panes {
		p.scroller.Close()
	}
}
