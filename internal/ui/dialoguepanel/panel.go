// Package dialoguepanel provides the dialogue box UI component.
// It draws the line a Presenter holds and forwards key presses to the interpreter.
package dialoguepanel

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/roomforge/internal/dialogue"
	"chosenoffset.com/roomforge/internal/ui/textwrap"
)

// charWidth is the advance of the debug font in pixels.
const charWidth = 6

// Panel is the dialogue box along the bottom of the screen
type Panel struct {
	// Dimensions
	X, Y          int
	Width, Height int

	Presenter *dialogue.Presenter
	Driver    dialogue.Driver

	showHistory bool

	// Visual settings
	bgColor     color.RGBA
	borderColor color.RGBA
	lineHeight  int
	padding     int
}

// NewPanel creates a new dialogue panel
func NewPanel(x, y, width, height int, presenter *dialogue.Presenter, driver dialogue.Driver) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Presenter:   presenter,
		Driver:      driver,
		bgColor:     color.RGBA{20, 20, 30, 230},
		borderColor: color.RGBA{60, 60, 80, 255},
		lineHeight:  14,
		padding:     10,
	}
}

// Resize docks the panel to the bottom of a screen of the given size
func (p *Panel) Resize(screenWidth, screenHeight int) {
	p.Width = screenWidth
	p.X = 0
	p.Y = screenHeight - p.Height
}

// ShowingHistory reports whether the history overlay is open
func (p *Panel) ShowingHistory() bool {
	return p.showHistory
}

// Update handles input and advances the text reveal by one tick
func (p *Panel) Update() {
	p.Presenter.Typewriter.Update(time.Second / time.Duration(ebiten.TPS()))

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		p.showHistory = !p.showHistory
	}
	if p.showHistory {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.showHistory = false
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.Presenter.Continue(p.Driver)
		return
	}
	if !p.Presenter.Visible() {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Presenter.Hide()
		return
	}

	// Number keys for choices (1-9)
	for i := 0; i < 9; i++ {
		key := ebiten.Key(int(ebiten.Key1) + i)
		if inpututil.IsKeyJustPressed(key) {
			p.Presenter.Choose(p.Driver, i)
			return
		}
	}
}

// Draw renders the panel
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.showHistory {
		p.drawHistory(screen)
		return
	}
	if !p.Presenter.Visible() {
		return
	}

	p.drawFrame(screen, p.X, p.Y, p.Width, p.Height)
	line := p.Presenter.Line()
	cols := (p.Width - p.padding*2) / charWidth

	x := p.X + p.padding
	y := p.Y + p.padding

	header := dialogue.SpeakerName(line.Speaker)
	if line.Animation != "" {
		header += " (" + line.Animation + ")"
	}
	ebitenutil.DebugPrintAt(screen, header, x, y)
	y += p.lineHeight + 4

	for _, l := range textwrap.Wrap(p.Presenter.Typewriter.Text(), cols) {
		ebitenutil.DebugPrintAt(screen, l, x, y)
		y += p.lineHeight
	}

	hint := "Enter/Space: continue  H: history  Esc: hide"
	if p.Presenter.Revealing() {
		hint = "Enter/Space: skip"
	} else if line.HasOptions() {
		y += p.lineHeight / 2
		for i, opt := range line.Options {
			if i >= 9 {
				break
			}
			choice := textwrap.Truncate(fmt.Sprintf("[%d] %s", i+1, opt.Choice), cols)
			ebitenutil.DebugPrintAt(screen, choice, x, y)
			y += p.lineHeight
		}
		hint = "1-9: choose  H: history"
	}
	ebitenutil.DebugPrintAt(screen, hint, x, p.Y+p.Height-p.padding-p.lineHeight)
}

func (p *Panel) drawHistory(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	p.drawFrame(screen, 0, 0, w, h)

	x, y := p.padding, p.padding
	ebitenutil.DebugPrintAt(screen, "History (H or Esc to close)", x, y)
	y += p.lineHeight + 4

	var rows []string
	for _, entry := range p.Presenter.History.Lines() {
		rows = append(rows, textwrap.Wrap(entry, (w-p.padding*2)/charWidth)...)
	}
	// Keep the newest entries on screen
	if fit := (h - y - p.padding) / p.lineHeight; len(rows) > fit && fit > 0 {
		rows = rows[len(rows)-fit:]
	}
	for _, row := range rows {
		ebitenutil.DebugPrintAt(screen, row, x, y)
		y += p.lineHeight
	}
}

func (p *Panel) drawFrame(screen *ebiten.Image, x, y, w, h int) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), p.bgColor, false)
	vector.StrokeRect(screen, float32(x)+0.5, float32(y)+0.5, float32(w)-1, float32(h)-1, 1, p.borderColor, false)
}
