package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/roomforge/internal/config"
	"chosenoffset.com/roomforge/internal/game"
	"chosenoffset.com/roomforge/internal/ui/dialoguepanel"
	"chosenoffset.com/roomforge/internal/ui/roomview"
)

const (
	panelHeight = 180
	panSpeed    = 6.0
)

// app adapts game.Game to ebiten's frame loop.
type app struct {
	game  *game.Game
	view  *roomview.View
	panel *dialoguepanel.Panel

	width, height int
}

func newApp(g *game.Game, cfg *config.Config) *app {
	a := &app{
		game:   g,
		view:   roomview.New(g.Scene, g.Catalog, float64(cfg.Window.Scale)),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
	a.panel = dialoguepanel.NewPanel(0, a.height-panelHeight, a.width, panelHeight, g.Presenter, g.Interpreter)
	return a
}

func (a *app) Update() error {
	a.panel.Update()

	if !a.panel.ShowingHistory() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			a.game.Reroll()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyL) {
			a.cycleLevel()
		}
		a.pan()
	}

	a.game.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// cycleLevel steps the wall storey filter through all, 0, 1, ... and back.
func (a *app) cycleLevel() {
	a.view.Level++
	if a.view.Level >= a.game.Room.Spec.FloorCount {
		a.view.Level = -1
	}
}

func (a *app) pan() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		a.view.OriginX += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		a.view.OriginX -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		a.view.OriginY += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		a.view.OriginY -= panSpeed
	}
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{12, 12, 18, 255})
	a.view.Draw(screen)

	// Draw on-screen messages
	y := 20
	for _, msg := range a.game.Messages {
		ebitenutil.DebugPrintAt(screen, msg.Text, 20, y)
		y += 16
	}
	ebitenutil.DebugPrintAt(screen, "R: regenerate  L: storey  arrows: pan  Enter: show dialogue", 20, a.height-panelHeight-20)

	a.panel.Draw(screen)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.panel.Resize(outsideWidth, outsideHeight)
	}
	return a.width, a.height
}
