package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/roomforge/internal/config"
	"chosenoffset.com/roomforge/internal/dialogue"
	"chosenoffset.com/roomforge/internal/game"
	"chosenoffset.com/roomforge/internal/gamescanner"
	"chosenoffset.com/roomforge/internal/world/room"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the config file")
	roomFlag := flag.String("room", "", "room file to build (overrides config)")
	sceneFlag := flag.String("scene", "", "dialogue scene to start (overrides config)")
	seedFlag := flag.Int64("seed", 0, "layout seed, 0 picks one from the clock (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "room":
			cfg.Room = *roomFlag
		case "scene":
			cfg.StartScene = *sceneFlag
		case "seed":
			cfg.Seed = *seedFlag
		}
	})

	logger := cfg.NewLogger(os.Stderr)

	roomPath := cfg.RoomPath()
	if roomPath == "" {
		logger.Info("scanning data directory for rooms", "dir", cfg.DataDir)
		if roomPath, err = gamescanner.FirstRoom(cfg.DataDir); err != nil {
			log.Fatalf("Failed to find a room: %v", err)
		}
	}
	rf, err := room.LoadRoomFile(roomPath)
	if err != nil {
		log.Fatalf("Failed to load room: %v", err)
	}

	var src dialogue.Source = dialogue.Embedded()
	if cfg.ContentDir != "" {
		src = dialogue.DirSource(cfg.ContentDir)
	}

	g := game.New(cfg, rf, src, logger)
	if err := g.Start(cfg.Seed, cfg.StartScene); err != nil {
		// The room is still worth looking at without its dialogue.
		logger.Warn("dialogue not started", "error", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title + " - " + rf.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting preview", "room", rf.Name, "seed", g.Seed)
	if err := ebiten.RunGame(newApp(g, cfg)); err != nil {
		log.Fatal(err)
	}
}
