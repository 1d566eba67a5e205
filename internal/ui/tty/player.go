// Package tty plays dialogue scenes in a terminal.
package tty

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"chosenoffset.com/roomforge/internal/dialogue"
	"chosenoffset.com/roomforge/internal/ui/textwrap"
)

var (
	speakerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	choiceStyle  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	hintStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	borderStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
)

// Player drives an Interpreter from terminal input and draws its lines.
// It is the interpreter's Display; text reveal runs on a background ticker
// that wakes the event loop for each new character.
type Player struct {
	Screen      tcell.Screen
	Presenter   *dialogue.Presenter
	Interpreter *dialogue.Interpreter

	interval    time.Duration
	logger      *slog.Logger
	showHistory bool

	mu     sync.Mutex
	cancel context.CancelFunc
	err    error // why the player stopped, if not by choice
}

// NewPlayer creates a player drawing to screen. An interval of zero or less
// shows each line in full immediately.
func NewPlayer(screen tcell.Screen, src dialogue.Source, triggers dialogue.Trigger, interval time.Duration, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Player{
		Screen:    screen,
		Presenter: dialogue.NewPresenter(interval),
		interval:  interval,
		logger:    logger,
	}
	p.Interpreter = dialogue.NewInterpreter(src, triggers, p, logger)
	return p
}

// ShowLine implements dialogue.Display.
func (p *Player) ShowLine(line *dialogue.Line) {
	p.stopReveal()
	p.Presenter.ShowLine(line)
	if p.interval <= 0 {
		p.Presenter.Typewriter.Skip()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()

	tw := p.Presenter.Typewriter
	gen := tw.Generation()
	go func() {
		_ = tw.Run(ctx, gen, p.interval, func() {
			_ = p.Screen.PostEvent(tcell.NewEventInterrupt(nil))
		})
	}()
}

// HideDialogue implements dialogue.Display.
func (p *Player) HideDialogue() {
	p.stopReveal()
	p.Presenter.HideDialogue()
}

func (p *Player) stopReveal() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Start loads the first scene.
func (p *Player) Start(scene string) error {
	return p.Interpreter.LoadScene(scene)
}

// HandleKey applies one key press. It returns false when the player should quit.
func (p *Player) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		p.Presenter.Continue(p.Interpreter)
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q' || r == 'Q':
			return false
		case r == ' ':
			p.Presenter.Continue(p.Interpreter)
		case r == 'h' || r == 'H':
			p.showHistory = !p.showHistory
		case r >= '1' && r <= '9':
			p.Presenter.Choose(p.Interpreter, int(r-'1'))
		}
	}
	return p.followScene()
}

// followScene moves on to the finished scene's next_scene. It returns false
// when that scene cannot be loaded, and Run then returns the load error.
func (p *Player) followScene() bool {
	next := p.Interpreter.PendingScene()
	if _, err := p.Interpreter.FollowNextScene(); err != nil {
		p.logger.Warn("failed to follow next scene", "scene", next, "error", err)
		p.err = err
		return false
	}
	return true
}

// Run processes events until the player quits, ctx ends or the screen is
// finalized. Quitting by key returns nil; a next_scene that cannot be loaded
// returns its error.
func (p *Player) Run(ctx context.Context) error {
	defer p.stopReveal()

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(p.Screen, done)

	p.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				p.Screen.Sync()
			case *tcell.EventKey:
				if !p.HandleKey(ev) {
					return p.err
				}
			}
			p.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed, then closes the returned channel.
func pollEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// Draw renders the current state.
func (p *Player) Draw() {
	s := p.Screen
	s.Clear()
	w, h := s.Size()

	if p.showHistory {
		p.drawHistory(w, h)
	} else if p.Presenter.Visible() {
		p.drawLine(w, h)
	} else {
		putText(s, 1, h-2, "(end of dialogue, q to quit)", hintStyle)
	}
	s.Show()
}

func (p *Player) drawLine(w, h int) {
	s := p.Screen
	line := p.Presenter.Line()
	inner := w - 4

	body := textwrap.Wrap(p.Presenter.Typewriter.Text(), inner)
	var choices []string
	if !p.Presenter.Revealing() {
		for i, opt := range line.Options {
			if i >= 9 {
				break
			}
			choices = append(choices, fmt.Sprintf("[%d] %s", i+1, opt.Choice))
		}
	}

	boxH := len(body) + len(choices) + 4
	if boxH > h {
		boxH = h
	}
	y0 := h - boxH
	drawBox(s, 0, y0, w, boxH)

	title := fmt.Sprintf(" %s %s ", dialogue.MoodIcon(line.Animation), dialogue.SpeakerName(line.Speaker))
	putText(s, 2, y0, title, speakerStyle)

	y := y0 + 1
	for _, l := range body {
		if y >= y0+boxH-1 {
			break
		}
		putText(s, 2, y, l, textStyle)
		y++
	}
	for _, c := range choices {
		if y >= y0+boxH-1 {
			break
		}
		putText(s, 2, y, textwrap.Truncate(c, inner), choiceStyle)
		y++
	}

	hint := "Enter: continue  h: history  q: quit"
	if len(choices) > 0 {
		hint = "1-9: choose  h: history  q: quit"
	}
	putText(s, 2, y0+boxH-1, " "+hint+" ", hintStyle)
}

func (p *Player) drawHistory(w, h int) {
	s := p.Screen
	drawBox(s, 0, 0, w, h)
	putText(s, 2, 0, " History (h to close) ", speakerStyle)

	var rows []string
	for _, entry := range p.Presenter.History.Lines() {
		rows = append(rows, textwrap.Wrap(entry, w-4)...)
	}
	if limit := h - 2; len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}
	for i, row := range rows {
		putText(s, 2, 1+i, row, textStyle)
	}
}

// putText writes s starting at (x, y), one grapheme cluster per cell. It
// stops at the right edge of the screen.
func putText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	sw, _ := s.Size()
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		width := runewidth.StringWidth(g.Str())
		if x+width > sw {
			break
		}
		s.SetContent(x, y, runes[0], runes[1:], st)
		if width == 2 {
			s.SetContent(x+1, y, ' ', nil, st)
		}
		x += max(width, 1)
	}
}

func drawBox(s tcell.Screen, x0, y0, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	for x := x0; x < x0+w; x++ {
		s.SetContent(x, y0, '─', nil, borderStyle)
		s.SetContent(x, y0+h-1, '─', nil, borderStyle)
	}
	for y := y0; y < y0+h; y++ {
		s.SetContent(x0, y, '│', nil, borderStyle)
		s.SetContent(x0+w-1, y, '│', nil, borderStyle)
	}
	s.SetContent(x0, y0, '┌', nil, borderStyle)
	s.SetContent(x0+w-1, y0, '┐', nil, borderStyle)
	s.SetContent(x0, y0+h-1, '└', nil, borderStyle)
	s.SetContent(x0+w-1, y0+h-1, '┘', nil, borderStyle)
}
