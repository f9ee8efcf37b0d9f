package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/xqrs/coaster/keybind"
	"github.com/xqrs/coaster/scroll"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Scroll.DraggingScrollThreshold != 3 {
		t.Errorf("DraggingScrollThreshold = %v, want 3", cfg.Scroll.DraggingScrollThreshold)
	}
	if cfg.Glyphs != "unicode" || cfg.Theme == "" {
		t.Errorf("Glyphs/Theme = %q/%q", cfg.Glyphs, cfg.Theme)
	}
	if !slices.Contains(cfg.Keys.Quit, "q") {
		t.Errorf("Quit keys = %q, want q among them", cfg.Keys.Quit)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Scroll.Vertical.ShowMode = scroll.ShowHover
	cfg.Scroll.Horizontal.Enabled = false
	cfg.Scroll.TrackClick = scroll.TrackClickPage
	cfg.Keys.Quit = []string{"x"}
	cfg.Glyphs = "legacy"
	cfg.Border = "round"
	cfg.Bar = Bar{ThumbGlyph: "#", HideTrack: true, ThumbColor: "red", ActiveColor: "#ff8000"}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Scroll != cfg.Scroll {
		t.Errorf("Scroll = %+v, want %+v", loaded.Scroll, cfg.Scroll)
	}
	if !slices.Equal(loaded.Keys.Quit, []string{"x"}) {
		t.Errorf("Quit keys = %q, want [x]", loaded.Keys.Quit)
	}
	if loaded.Glyphs != "legacy" || loaded.Border != "round" {
		t.Errorf("Glyphs/Border = %q/%q, want legacy/round", loaded.Glyphs, loaded.Border)
	}
	if loaded.Bar != cfg.Bar {
		t.Errorf("Bar = %+v, want %+v", loaded.Bar, cfg.Bar)
	}
}

func TestSaveWritesReadableNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := Save(path, Default()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`show_mode = "scrolling"`, `track_click = "none"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("saved config lacks %s:\n%s", want, data)
		}
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
theme = "dracula"

[scroll.vertical]
show_mode = "always"

[keys]
reload = ["ctrl+r"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defaults := Default()
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q, want dracula", cfg.Theme)
	}
	if cfg.Scroll.Vertical.ShowMode != scroll.ShowAlways {
		t.Errorf("vertical ShowMode = %v, want always", cfg.Scroll.Vertical.ShowMode)
	}
	if !cfg.Scroll.Vertical.Enabled || cfg.Scroll.Vertical.Size != defaults.Scroll.Vertical.Size {
		t.Errorf("vertical axis lost its defaults: %+v", cfg.Scroll.Vertical)
	}
	if cfg.Scroll.Horizontal != defaults.Scroll.Horizontal {
		t.Errorf("horizontal axis = %+v, want defaults", cfg.Scroll.Horizontal)
	}
	if !slices.Equal(cfg.Keys.Reload, []string{"ctrl+r"}) || !slices.Equal(cfg.Keys.Quit, defaults.Keys.Quit) {
		t.Errorf("keys = %+v", cfg.Keys)
	}
}

func TestLoadNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[scroll]\nwheel_step = -2\ndragging_scroll_threshold = 0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scroll.WheelStep != scroll.DefaultWheelStep || cfg.Scroll.DraggingScrollThreshold != scroll.DefaultThreshold {
		t.Errorf("scroll = %+v, want normalized step and threshold", cfg.Scroll)
	}
}

func TestLoadNonExistent(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Errorf("Expected no error for non-existent file, got: %v", err)
	}
	if cfg.Scroll != Default().Scroll {
		t.Errorf("Scroll = %+v, want defaults", cfg.Scroll)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "theme = ", "failed to parse config file"},
		{"unknown mode", "[scroll.vertical]\nshow_mode = \"sometimes\"\n", "failed to parse config file"},
		{"unknown glyphs", "glyphs = \"emoji\"\n", "unknown glyph set"},
		{"unknown border", "border = \"dashed\"\n", "unknown border"},
		{"unknown color", "[bar]\nthumb_color = \"chartreuse-ish\"\n", "unknown color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %v, want %q", err, tt.want)
			}
			if cfg.Theme != Default().Theme {
				t.Errorf("Theme = %q, want the default on error", cfg.Theme)
			}
		})
	}
}

func TestBind(t *testing.T) {
	keys := Default().Keys
	keys.Reload = []string{"n", "ctrl+r"}
	reload := Bind(keys.Reload, "n", "reload")

	if !keybind.Matches(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), reload) {
		t.Error("configured key does not match")
	}
	if !keybind.Matches(tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), reload) {
		t.Error("configured ctrl key does not match")
	}
	if keybind.Matches(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), reload) {
		t.Error("default key still matches after rebinding")
	}
	keys.Reload = nil
	if Bind(keys.Reload, "r", "reload").Enabled() {
		t.Error("a keybind without keys is enabled")
	}
}

func TestBindHelpShowsConfiguredKey(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"first configured key", []string{"n", "ctrl+r"}, "n"},
		{"rebound", []string{"ctrl+r"}, "ctrl+r"},
		{"normalized", []string{"Ctrl+X"}, "ctrl+x"},
		{"no keys", nil, "r"},
		{"only blanks", []string{" "}, "r"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bind(tt.keys, "r", "reload").Help()
			if got != (keybind.Help{Key: tt.want, Desc: "reload"}) {
				t.Errorf("help = %+v, want key %q", got, tt.want)
			}
		})
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		name    string
		want    tcell.Color
		wantErr bool
	}{
		{"", tcell.ColorBlue, false},
		{"red", tcell.ColorRed, false},
		{"#ff8000", tcell.NewHexColor(0xff8000), false},
		{"default", tcell.ColorDefault, false},
		{"chartreuse-ish", tcell.ColorBlue, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Color(tt.name, tcell.ColorBlue)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Color(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Color(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
