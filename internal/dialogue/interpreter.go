package dialogue

import (
	"log/slog"
)

// State is the interpreter's session state.
type State int

const (
	Idle     State = iota // No scene loaded
	Playing               // A line is current
	Finished              // Play-head ran past the last line
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Interpreter owns one dialogue session: the loaded scene, the play-head and
// the label index. It is driven by a single caller, normally the UI.
type Interpreter struct {
	src      Source
	triggers Trigger
	display  Display
	logger   *slog.Logger

	scene   *Scene
	labels  map[string]int
	index   int
	state   State
	pending string
}

// NewInterpreter creates an idle interpreter. triggers may be nil; a nil
// display discards output.
func NewInterpreter(src Source, triggers Trigger, display Display, logger *slog.Logger) *Interpreter {
	if display == nil {
		display = NopDisplay{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Interpreter{
		src:      src,
		triggers: triggers,
		display:  display,
		logger:   logger,
	}
}

// LoadScene starts a new session on the named scene and shows its first
// line. On error the previous session is left exactly as it was.
func (it *Interpreter) LoadScene(name string) error {
	scene, repaired, err := load(it.src, name)
	if err != nil {
		return err
	}
	if repaired {
		it.logger.Warn("repaired dialogue text", "scene", scene.Name, "encoding", "utf-8")
	}

	for i := range scene.Lines {
		if normalizeLine(&scene.Lines[i]) {
			it.logger.Warn("repaired dialogue text",
				"scene", scene.Name, "line", i, "id", scene.Lines[i].ID)
		}
	}

	it.scene = scene
	it.labels = scene.Labels()
	it.index = 0
	it.pending = ""
	it.logger.Info("dialogue scene loaded", "scene", scene.Name, "lines", len(scene.Lines))

	if len(scene.Lines) == 0 {
		it.finish()
		return nil
	}
	it.state = Playing
	it.surface()
	return nil
}

// Advance moves to the next line and returns it. Past the last line the
// session finishes and nil is returned. Outside Playing it does nothing.
func (it *Interpreter) Advance() *Line {
	if it.state != Playing {
		return nil
	}
	it.index++
	if it.index >= len(it.scene.Lines) {
		it.finish()
		return nil
	}
	return it.surface()
}

// SelectChoice jumps to the line labelled label and shows it again, firing
// its trigger again. An unknown label is logged and treated as Advance.
// Jumping from a finished session resumes it.
func (it *Interpreter) SelectChoice(label string) *Line {
	if it.scene == nil {
		it.logger.Warn("choice selected with no scene loaded", "label", label)
		return nil
	}
	idx, ok := it.labels[label]
	if !ok {
		it.logger.Warn("unknown choice target, advancing",
			"scene", it.scene.Name, "label", label, "index", it.index)
		return it.Advance()
	}
	it.index = idx
	it.state = Playing
	return it.surface()
}

// CurrentLine returns the line under the play-head, or nil when no line is
// current.
func (it *Interpreter) CurrentLine() *Line {
	if it.state != Playing || it.index < 0 || it.index >= len(it.scene.Lines) {
		return nil
	}
	return &it.scene.Lines[it.index]
}

func (it *Interpreter) State() State  { return it.state }
func (it *Interpreter) Index() int    { return it.index }
func (it *Interpreter) Scene() *Scene { return it.scene }

// PendingScene is the most recent next_scene shown in this session and not yet
// followed, or "".
func (it *Interpreter) PendingScene() string { return it.pending }

func (it *Interpreter) surface() *Line {
	line := &it.scene.Lines[it.index]
	if line.NextScene != "" {
		it.pending = line.NextScene
	}
	it.display.ShowLine(line)
	if line.Trigger != "" && it.triggers != nil {
		it.triggers.Fire(line.Trigger, line)
	}
	return line
}

func (it *Interpreter) finish() {
	it.state = Finished
	it.display.HideDialogue()
	it.logger.Info("dialogue scene finished", "scene", it.scene.Name)
}

// FollowNextScene loads PendingScene once the session has finished. It
// reports whether a new scene was started. The pending name is consumed
// either way; on error the finished session is kept.
func (it *Interpreter) FollowNextScene() (bool, error) {
	if it.state != Finished || it.pending == "" {
		return false, nil
	}
	next := it.pending
	it.pending = ""
	if err := it.LoadScene(next); err != nil {
		return false, err
	}
	return true, nil
}
