package dialogue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypewriterStepsByCluster(t *testing.T) {
	tw := NewTypewriter(0)
	gen := tw.Start("aé👋🏽!")
	assert.Equal(t, "", tw.Text())
	assert.False(t, tw.Done())

	var seen []string
	for tw.Step(gen) {
		seen = append(seen, tw.Text())
	}
	assert.Equal(t, []string{"a", "aé", "aé👋🏽", "aé👋🏽!"}, seen)
	assert.True(t, tw.Done())
}

func TestTypewriterStaleGeneration(t *testing.T) {
	tw := NewTypewriter(0)
	old := tw.Start("first")
	assert.True(t, tw.Step(old))

	cur := tw.Start("second")
	assert.Greater(t, cur, old)
	assert.False(t, tw.Step(old), "stale reveal must not append")
	assert.Equal(t, "", tw.Text())

	assert.True(t, tw.Step(cur))
	assert.Equal(t, "s", tw.Text())
	assert.Equal(t, cur, tw.Generation())
}

func TestTypewriterSkipAndCancel(t *testing.T) {
	tw := NewTypewriter(time.Second)
	gen := tw.Start("hello")
	tw.Skip()
	assert.True(t, tw.Done())
	assert.Equal(t, "hello", tw.Text())
	assert.Equal(t, gen, tw.Generation(), "skip does not start a new reveal")

	tw.Cancel()
	assert.Equal(t, "", tw.Text())
	assert.True(t, tw.Done())
	assert.False(t, tw.Step(gen))

	tw.Start("")
	assert.True(t, tw.Done())
}

func TestTypewriterUpdate(t *testing.T) {
	tw := NewTypewriter(10 * time.Millisecond)
	tw.Start("abcde")

	assert.Equal(t, 2, tw.Update(25*time.Millisecond))
	assert.Equal(t, "ab", tw.Text())
	assert.Equal(t, 1, tw.Update(5*time.Millisecond))
	assert.Equal(t, "abc", tw.Text())
	assert.Equal(t, 2, tw.Update(time.Second))
	assert.True(t, tw.Done())
	assert.Zero(t, tw.Update(time.Second))

	tw.Interval = 0
	tw.Start("xyz")
	assert.Equal(t, 3, tw.Update(0))
	assert.Equal(t, "xyz", tw.Text())
}

func TestTypewriterRun(t *testing.T) {
	tw := NewTypewriter(0)
	gen := tw.Start("run")

	ticks := 0
	err := tw.Run(context.Background(), gen, time.Millisecond, func() { ticks++ })
	require.NoError(t, err)
	assert.Equal(t, 3, ticks)
	assert.Equal(t, "run", tw.Text())
}

func TestTypewriterRunCancelledByNewReveal(t *testing.T) {
	tw := NewTypewriter(0)
	old := tw.Start("stale text")
	tw.Start("fresh")

	err := tw.Run(context.Background(), old, time.Millisecond, func() {
		t.Error("stale reveal appended")
	})
	require.NoError(t, err)
	assert.Equal(t, "", tw.Text())
}

func TestTypewriterRunContext(t *testing.T) {
	tw := NewTypewriter(0)
	gen := tw.Start("long enough to outlast the context")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := tw.Run(ctx, gen, time.Hour, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, tw.Done())
}
