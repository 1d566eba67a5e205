// Command dialoguetty plays dialogue scenes in the terminal.
//
// Keys: Enter or Space continues, 1-9 picks a choice, h toggles the history
// log, q or Esc quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/roomforge/internal/config"
	"chosenoffset.com/roomforge/internal/dialogue"
	"chosenoffset.com/roomforge/internal/ui/tty"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the config file")
	content := flag.String("content", "", "directory of scene files (default: built-in scenes)")
	scene := flag.String("scene", "", "scene to start (overrides config)")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	if err := run(*configPath, *content, *scene, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, content, scene, logPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if content != "" {
		cfg.ContentDir = content
	}
	if scene != "" {
		cfg.StartScene = scene
	}

	// The terminal belongs to the player, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := cfg.NewLogger(logOut)

	var src dialogue.Source = dialogue.Embedded()
	if cfg.ContentDir != "" {
		src = dialogue.DirSource(cfg.ContentDir)
	}

	triggers := dialogue.NewRegistry(logger)
	triggers.Register("log", func(name string, line *dialogue.Line) {
		logger.Info("dialogue log", "id", line.ID, "speaker", line.Speaker, "quest_id", line.QuestID)
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	player := tty.NewPlayer(screen, src, triggers, cfg.RevealInterval(), logger)
	player.Presenter.History = dialogue.NewHistory(cfg.Dialogue.HistoryLimit)
	if err := player.Start(cfg.StartScene); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = player.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
