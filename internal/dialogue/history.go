package dialogue

import "strings"

// Narrator is the speaker shown for lines without one.
const Narrator = "Narrator"

// Entry is one shown line in the history log.
type Entry struct {
	Speaker string
	Text    string
}

func (e Entry) String() string {
	return e.Speaker + ": " + e.Text
}

// History records every line shown, oldest first.
type History struct {
	entries []Entry
	limit   int
}

// NewHistory creates a history keeping at most limit entries. Zero or less
// keeps everything.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add appends a shown line.
func (h *History) Add(speaker, text string) {
	h.entries = append(h.entries, Entry{Speaker: SpeakerName(speaker), Text: text})
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Entries returns a copy of the log.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}

// Lines returns the log formatted as "speaker: text".
func (h *History) Lines() []string {
	lines := make([]string, len(h.entries))
	for i, e := range h.entries {
		lines[i] = e.String()
	}
	return lines
}

func (h *History) Len() int { return len(h.entries) }
func (h *History) Clear()   { h.entries = nil }

// SpeakerName returns speaker, or Narrator when it is empty.
func SpeakerName(speaker string) string {
	if speaker == "" {
		return Narrator
	}
	return speaker
}

// MoodIcon maps a line's animation hint to an emoji.
func MoodIcon(animation string) string {
	switch strings.ToLower(animation) {
	case "happy":
		return "😄"
	case "sad":
		return "😢"
	case "angry":
		return "😠"
	case "surprised":
		return "😮"
	}
	return "😊"
}
