package dialogue

import (
	"context"
	"sync"
	"time"

	"github.com/rivo/uniseg"
)

// DefaultRevealInterval is the delay between revealed characters.
const DefaultRevealInterval = 30 * time.Millisecond

// Typewriter reveals text one grapheme cluster at a time. Every Start bumps a
// generation counter; a reveal step carrying an older generation is ignored,
// so starting a new line cancels the previous reveal.
type Typewriter struct {
	// Interval is used by Update. Zero or less reveals everything at once.
	Interval time.Duration

	mu      sync.Mutex
	gen     uint64
	text    string
	ends    []int // byte offset just past each cluster
	shown   int
	elapsed time.Duration
}

// NewTypewriter creates a typewriter that Update advances every interval.
func NewTypewriter(interval time.Duration) *Typewriter {
	return &Typewriter{Interval: interval}
}

// Start begins revealing text and returns the generation of this reveal.
func (t *Typewriter) Start(text string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.text = text
	t.ends = clusterEnds(text)
	t.shown = 0
	t.elapsed = 0
	return t.gen
}

func clusterEnds(text string) []int {
	var ends []int
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		_, to := g.Positions()
		ends = append(ends, to)
	}
	return ends
}

// Step reveals one more cluster if gen is still the current reveal. It
// reports whether anything was appended.
func (t *Typewriter) Step(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stepLocked(gen)
}

func (t *Typewriter) stepLocked(gen uint64) bool {
	if gen != t.gen || t.shown >= len(t.ends) {
		return false
	}
	t.shown++
	return true
}

// Skip completes the current reveal without starting a new one.
func (t *Typewriter) Skip() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.shown = len(t.ends)
}

// Cancel stops the current reveal and clears the text.
func (t *Typewriter) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.text = ""
	t.ends = nil
	t.shown = 0
}

// Text returns the revealed prefix.
func (t *Typewriter) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.shown == 0 {
		return ""
	}
	return t.text[:t.ends[t.shown-1]]
}

// Done reports whether the whole text is revealed.
func (t *Typewriter) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shown >= len(t.ends)
}

// Generation returns the generation of the current reveal.
func (t *Typewriter) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gen
}

// Update advances the reveal by the time since the last frame and returns
// how many clusters were appended.
func (t *Typewriter) Update(elapsed time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Interval <= 0 {
		n := len(t.ends) - t.shown
		t.shown = len(t.ends)
		return n
	}
	t.elapsed += elapsed
	n := 0
	for t.elapsed >= t.Interval && t.stepLocked(t.gen) {
		t.elapsed -= t.Interval
		n++
	}
	if t.shown >= len(t.ends) {
		t.elapsed = 0
	}
	return n
}

// Run reveals generation gen on a ticker until the text is complete, a newer
// reveal starts or ctx is done. notify, if set, is called after every
// appended cluster.
func (t *Typewriter) Run(ctx context.Context, gen uint64, interval time.Duration, notify func()) error {
	if interval <= 0 {
		interval = DefaultRevealInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !t.Step(gen) {
				return nil
			}
			if notify != nil {
				notify()
			}
		}
	}
}
