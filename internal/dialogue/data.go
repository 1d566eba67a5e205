// Package dialogue plays branching dialogue scenes authored as YAML documents.
//
// A scene is an ordered list of lines. Lines may carry a label (id) that
// choices jump to, presentation hints for the host, and a trigger name that is
// dispatched to game code when the line is shown.
package dialogue

// Option is one choice offered on a line.
type Option struct {
	Choice string `yaml:"choice"` // Text shown to the player
	Next   string `yaml:"next"`   // Label of the line to jump to
}

// Line is a single dialogue line.
type Line struct {
	ID        string   `yaml:"id"` // Optional label, target of Option.Next
	Speaker   string   `yaml:"speaker"`
	Text      string   `yaml:"text"`
	Sprite    string   `yaml:"sprite"`
	Sound     string   `yaml:"sound"`
	Animation string   `yaml:"animation"` // Also picks the mood icon
	Cutscene  string   `yaml:"cutscene"`
	Trigger   string   `yaml:"trigger"` // Dispatched once each time the line is shown
	QuestID   string   `yaml:"quest_id"`
	NextScene string   `yaml:"next_scene"`
	Options   []Option `yaml:"options"`
}

// HasOptions reports whether the line waits for a choice.
func (l *Line) HasOptions() bool {
	return len(l.Options) > 0
}

// Scene is a named, ordered sequence of lines.
type Scene struct {
	Name  string `yaml:"scene"`
	Lines []Line `yaml:"lines"`
}

// Labels maps line ids to their index. When two lines share an id the later
// one wins.
func (s *Scene) Labels() map[string]int {
	labels := make(map[string]int)
	for i, line := range s.Lines {
		if line.ID != "" {
			labels[line.ID] = i
		}
	}
	return labels
}
