// Package game ties a generated room to a dialogue session. It holds no
// rendering code; hosts draw from its state and feed it frame ticks.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"chosenoffset.com/roomforge/internal/config"
	"chosenoffset.com/roomforge/internal/dialogue"
	"chosenoffset.com/roomforge/internal/world/prefab"
	"chosenoffset.com/roomforge/internal/world/room"
)

// Trigger names the game handles.
const (
	TriggerRegenerate = "regenerate_room"
	TriggerLog        = "log"
)

// Game holds all preview state and logic.
type Game struct {
	RoomName string
	Room     *room.Room
	Scene    *room.MemoryScene
	Catalog  *prefab.Catalog
	Seed     int64 // Seed of the current layout

	Presenter   *dialogue.Presenter
	Interpreter *dialogue.Interpreter
	Triggers    *dialogue.Registry

	// UI state
	Messages []Message

	logger *slog.Logger
}

// New builds a game for the room in rf, playing scenes from src.
func New(cfg *config.Config, rf *room.RoomFile, src dialogue.Source, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	scene := room.NewMemoryScene()
	g := &Game{
		RoomName: rf.Name,
		Scene:    scene,
		Catalog:  rf.Prefabs,
		Room:     room.NewRoom(rf.Spec, &rf.Pools, rf.Anchor.Transform(), scene, logger),
		logger:   logger,
	}

	g.Presenter = dialogue.NewPresenter(cfg.RevealInterval())
	g.Presenter.History = dialogue.NewHistory(cfg.Dialogue.HistoryLimit)

	g.Triggers = dialogue.NewRegistry(logger)
	g.Triggers.Register(TriggerRegenerate, g.onRegenerate)
	g.Triggers.Register(TriggerLog, g.onLog)

	g.Interpreter = dialogue.NewInterpreter(src, g.Triggers, g.Presenter, logger)
	return g
}

// Start generates the room from seed and begins scene. A missing scene is
// reported but leaves the room built.
func (g *Game) Start(seed int64, scene string) error {
	if _, err := g.Regenerate(seed); err != nil {
		return err
	}
	if scene == "" {
		return nil
	}
	if err := g.Interpreter.LoadScene(scene); err != nil {
		return fmt.Errorf("failed to start dialogue: %w", err)
	}
	return nil
}

// Regenerate rebuilds the room from seed. A zero seed picks one from the
// clock; the seed used is kept in Seed and logged so the layout can be
// reproduced.
func (g *Game) Regenerate(seed int64) (*room.Layout, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	layout, err := g.Room.GenerateRoom(room.NewRand(seed))
	if err != nil {
		if errors.Is(err, room.ErrBuildInProgress) {
			g.logger.Warn("regenerate ignored", "room", g.RoomName, "error", err)
		}
		return nil, err
	}
	g.Seed = seed
	g.logger.Info("layout seed", "room", g.RoomName, "seed", seed)
	return layout, nil
}

// Reroll rebuilds the room from the next seed in sequence.
func (g *Game) Reroll() {
	if _, err := g.Regenerate(g.Seed + 1); err == nil {
		g.ShowMessage(fmt.Sprintf("Room regenerated (seed %d)", g.Seed))
	}
}

// Update advances message timers by dt seconds and moves on to the next
// scene once the current one has finished.
func (g *Game) Update(dt float64) {
	g.updateMessages(dt)

	next := g.Interpreter.PendingScene()
	if _, err := g.Interpreter.FollowNextScene(); err != nil {
		g.logger.Warn("failed to follow next scene", "scene", next, "error", err)
		g.ShowMessage(fmt.Sprintf("Scene %q is missing", next))
	}
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})
	g.logger.Debug("message", "text", text)
}

func (g *Game) onRegenerate(string, *dialogue.Line) {
	g.Reroll()
}

func (g *Game) onLog(name string, line *dialogue.Line) {
	g.logger.Info("dialogue trigger",
		"trigger", name,
		"speaker", dialogue.SpeakerName(line.Speaker),
		"quest", line.QuestID,
		"text", line.Text)
	if line.QuestID != "" {
		g.ShowMessage("Quest noted: " + line.QuestID)
	}
}
