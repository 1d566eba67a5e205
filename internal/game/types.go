package game

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Alpha is the remaining fraction of the message's lifetime.
func (m Message) Alpha() float64 {
	if m.MaxTime <= 0 {
		return 0
	}
	return m.TimeLeft / m.MaxTime
}

// messageDuration is how long ShowMessage keeps text on screen, in seconds.
const messageDuration = 3.0
