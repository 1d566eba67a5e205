package dialogue

// Display presents surfaced lines. ShowLine replaces whatever line was
// showing, including a reveal still in progress.
type Display interface {
	ShowLine(line *Line)
	HideDialogue()
}

// NopDisplay discards everything.
type NopDisplay struct{}

func (NopDisplay) ShowLine(*Line) {}
func (NopDisplay) HideDialogue()  {}
