package dialogue

import "time"

// Driver is the part of the Interpreter a Presenter needs.
type Driver interface {
	Advance() *Line
	SelectChoice(label string) *Line
}

// Presenter is a Display that keeps the state a dialogue box renders from:
// the visible line, its typewriter reveal and the history log. Hosts draw
// from it and forward input through Continue and Choose.
type Presenter struct {
	Typewriter *Typewriter
	History    *History

	line    *Line
	visible bool
}

// NewPresenter creates a hidden presenter revealing text every interval.
func NewPresenter(interval time.Duration) *Presenter {
	return &Presenter{
		Typewriter: NewTypewriter(interval),
		History:    NewHistory(200),
	}
}

// ShowLine replaces the visible line and restarts the reveal.
func (p *Presenter) ShowLine(line *Line) {
	p.line = line
	p.visible = true
	p.Typewriter.Start(line.Text)
	p.History.Add(line.Speaker, line.Text)
}

// HideDialogue hides the box and cancels any reveal.
func (p *Presenter) HideDialogue() {
	p.visible = false
	p.line = nil
	p.Typewriter.Cancel()
}

// Hide tucks the box away without ending the scene. The line is kept and the
// next Continue shows it again.
func (p *Presenter) Hide() {
	p.visible = false
}

// Visible reports whether a line is showing.
func (p *Presenter) Visible() bool { return p.visible }

// Line returns the visible line, or nil.
func (p *Presenter) Line() *Line { return p.line }

// Revealing reports whether the typewriter is still appending text.
func (p *Presenter) Revealing() bool {
	return p.visible && !p.Typewriter.Done()
}

// Continue finishes an in-progress reveal, or else advances d. A line that
// offers choices is only left through Choose. After Hide it only shows the
// line again. It reports whether anything happened.
func (p *Presenter) Continue(d Driver) bool {
	if !p.visible {
		if p.line == nil {
			return false
		}
		p.visible = true
		return true
	}
	if !p.Typewriter.Done() {
		p.Typewriter.Skip()
		return true
	}
	if p.line != nil && p.line.HasOptions() {
		return false
	}
	d.Advance()
	return true
}

// Choose selects option i of the visible line.
func (p *Presenter) Choose(d Driver, i int) bool {
	if !p.visible || p.line == nil || i < 0 || i >= len(p.line.Options) {
		return false
	}
	d.SelectChoice(p.line.Options[i].Next)
	return true
}
