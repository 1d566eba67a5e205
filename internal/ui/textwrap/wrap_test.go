package textwrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	for _, tc := range []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks at space", "hello brave new world", 11, []string{"hello brave", "new world"}},
		{"collapses spaces", "a   b", 10, []string{"a b"}},
		{"keeps newlines", "one\n\ntwo", 10, []string{"one", "", "two"}},
		{"splits long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long word after short", "ab cdefgh", 4, []string{"ab", "cdef", "gh"}},
		{"wide runes", "日本語のテキスト", 6, []string{"日本語", "のテキ", "スト"}},
		{"emoji count double", "hi 😊 there", 5, []string{"hi 😊", "there"}},
		{"empty", "", 5, []string{""}},
		{"zero width", "ab", 0, []string{"a", "b"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Wrap(tc.text, tc.width))
		})
	}
}

func TestWrapNeverExceedsWidth(t *testing.T) {
	text := "The portraits here were painted by the architect. 建築家は二階を完成させなかった 😮"
	for width := 2; width < 40; width++ {
		for _, line := range Wrap(text, width) {
			assert.LessOrEqual(t, Width(line), width, "width %d line %q", width, line)
		}
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long …", Truncate("long sentence", 6))
	assert.Equal(t, 2, Width("😊"))
}
