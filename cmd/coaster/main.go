// Command coaster shows files in scrollable panes with custom scroll bars.
//
// Usage:
//
//	coaster [-config path] [-log path] file [file]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xqrs/coaster"
	"github.com/xqrs/coaster/config"
	"github.com/xqrs/coaster/scroll"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file (default ./coaster.toml or ~/.config/coaster/config.toml)")
	logPath := flag.String("log", "", "write debug logs to this file")
	writeConfig := flag.Bool("write-config", false, "write the effective config to the config file and exit")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		scroll.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *configPath == "" {
		*configPath = config.Path()
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}
	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			return 1
		}
		fmt.Printf("Config written to %s\n", *configPath)
		return 0
	}

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: coaster [-config path] [-log path] file [file]")
		flag.PrintDefaults()
		return 2
	}

	app := coaster.NewApplication()
	v, err := newViewer(app, cfg, paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer v.Close()

	watched := paths
	if _, err := os.Stat(*configPath); err == nil {
		watched = append([]string{*configPath}, paths...)
	}
	w, err := newWatcher(watched...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer w.Close()

	configAbs, _ := filepath.Abs(*configPath)
	go w.run(app.Done(), func(path string) {
		app.QueueUpdateDraw(func() {
			if path == configAbs {
				reloadConfig(v, path)
				return
			}
			if err := v.reload(path); err != nil {
				scroll.Logger().Warn("reload failed", "path", path, "err", err)
			}
		})
	})

	app.SetRoot(v)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// reloadConfig reapplies the config file, keeping the current configuration
// when the file does not load.
func reloadConfig(v *viewer, path string) {
	cfg, err := config.Load(path)
	if err != nil {
		scroll.Logger().Warn("config reload failed", "path", path, "err", err)
		return
	}
	if err := v.applyConfig(cfg); err != nil {
		scroll.Logger().Warn("config apply failed", "path", path, "err", err)
		return
	}
	scroll.Logger().Info("config reloaded", "path", path)
}
