package main

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joral/gridboard/internal/config"
	"github.com/joral/gridboard/internal/grid"
	"github.com/joral/gridboard/internal/layout"
	"github.com/joral/gridboard/internal/store"
)

func main() {
	if os.Getenv("GRIDBOARD_DEBUG") != "" {
		f, err := tea.LogToFile("gridboard.log", "debug")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if err := store.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	repo := store.NewLayoutRepo(db)
	reg := layout.Builtin()

	// the saved layout's preset wins over the config bootstrap default
	ctx := context.Background()
	saved, loadErr := repo.Load(ctx, cfg.UI.Layout)
	if loadErr != nil && !errors.Is(loadErr, store.ErrNotFound) {
		log.Fatalf("load layout %q: %v", cfg.UI.Layout, loadErr)
	}
	presetName := cfg.Grid.Preset
	if loadErr == nil && saved.Preset != "" {
		presetName = saved.Preset
	}
	preset, ok := grid.PresetByName(presetName)
	if !ok {
		preset = grid.DefaultPreset()
	}

	// nominal bootstrap size; the first WindowSizeMsg recomputes it
	spec := grid.SpecFor(80, 24, preset, cfg.Grid.Gap, cfg.Grid.Padding)

	var board *layout.Model
	if loadErr == nil {
		board, err = saved.Restore(spec, reg)
		if err != nil {
			// unknown kind in the store is a schema mismatch, not user data
			log.Fatalf("restore layout %q: %v", cfg.UI.Layout, err)
		}
	} else {
		board = buildDefaultBoard(spec, reg)
	}

	m := newModel(cfg, repo, reg, preset, spec, board)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
