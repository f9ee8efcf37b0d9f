// Package config loads and saves the coaster configuration file, falling
// back to defaults for a missing file or missing keys.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/xqrs/coaster"
	"github.com/xqrs/coaster/keybind"
	"github.com/xqrs/coaster/scroll"
)

const fileName = "coaster.toml"

// Config is the contents of the configuration file.
type Config struct {
	Scroll scroll.Config `toml:"scroll"`
	Keys   Keys          `toml:"keys"`

	// Theme is a chroma style name used for syntax highlighting.
	Theme string `toml:"theme"`
	// Glyphs selects the scroll bar glyph set: unicode, legacy or minimal.
	Glyphs string `toml:"glyphs"`
	// Border selects the pane border: plain, round, thick, double or hidden.
	Border string `toml:"border"`
	Bar    Bar    `toml:"bar"`
}

// Bar overrides parts of the glyph set and the colors of the scroll bars.
// Colors are tcell color names or #rrggbb; an empty string keeps the default.
type Bar struct {
	// ThumbGlyph draws the whole thumb with one glyph, giving up fractional
	// cells.
	ThumbGlyph  string `toml:"thumb_glyph"`
	TrackGlyph  string `toml:"track_glyph"`
	HideTrack   bool   `toml:"hide_track"`
	ThumbColor  string `toml:"thumb_color"`
	TrackColor  string `toml:"track_color"`
	ActiveColor string `toml:"active_color"`
}

// Keys lists the key strings bound to each action.
type Keys struct {
	Quit             []string `toml:"quit"`
	CycleMode        []string `toml:"cycle_mode"`
	ToggleVertical   []string `toml:"toggle_vertical"`
	ToggleHorizontal []string `toml:"toggle_horizontal"`
	Reload           []string `toml:"reload"`
	NextView         []string `toml:"next_view"`
	Help             []string `toml:"help"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Scroll: coaster.TerminalConfig(),
		Keys: Keys{
			Quit:             []string{"q", "ctrl+c"},
			CycleMode:        []string{"m"},
			ToggleVertical:   []string{"v"},
			ToggleHorizontal: []string{"h"},
			Reload:           []string{"r"},
			NextView:         []string{"tab"},
			Help:             []string{"?"},
		},
		Theme:  "monokai",
		Glyphs: "unicode",
		Border: "plain",
	}
}

// Path returns the default config file path. It prefers ./coaster.toml and
// falls back to ~/.config/coaster/config.toml.
func Path() string {
	if _, err := os.Stat(fileName); err == nil {
		return fileName
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(home, ".config", "coaster", "config.toml")
}

// Load reads the configuration from a TOML file. Keys missing from the file
// keep their default values. A missing file yields the defaults without an
// error; any other failure yields the defaults and the error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	cfg.Scroll = cfg.Scroll.Normalize()
	return cfg, nil
}

func (c Config) validate() error {
	if _, ok := coaster.GlyphSetByName(c.Glyphs); !ok {
		return fmt.Errorf("unknown glyph set %q", c.Glyphs)
	}
	if _, ok := coaster.BorderSetByName(c.Border); !ok {
		return fmt.Errorf("unknown border %q", c.Border)
	}
	for _, name := range []string{c.Bar.ThumbColor, c.Bar.TrackColor, c.Bar.ActiveColor} {
		if _, err := Color(name, tcell.ColorDefault); err != nil {
			return err
		}
	}
	return nil
}

// Color resolves a color name. The empty name yields fallback.
func Color(name string, fallback tcell.Color) (tcell.Color, error) {
	switch name {
	case "":
		return fallback, nil
	case "default":
		return tcell.ColorDefault, nil
	}
	color := tcell.GetColor(name)
	if color == tcell.ColorDefault {
		return fallback, fmt.Errorf("unknown color %q", name)
	}
	return color, nil
}

// Save writes the configuration to a TOML file, creating its directory.
func Save(path string, cfg Config) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", cerr)
		}
	}()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Bind returns a keybind for keys. The help shows the first configured key,
// or helpKey when there is none.
func Bind(keys []string, helpKey, helpDesc string) keybind.Keybind {
	kb := keybind.NewKeybind(keybind.WithKeys(keys...))
	if bound := kb.Keys(); len(bound) > 0 {
		helpKey = bound[0]
	}
	keybind.WithHelp(helpKey, helpDesc)(&kb)
	return kb
}
