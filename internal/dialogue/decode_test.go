package dialogue

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnakeCase(t *testing.T) {
	for in, want := range map[string]string{
		"quest_id":   "quest_id",
		"questId":    "quest_id",
		"QuestID":    "quest_id",
		"quest-id":   "quest_id",
		"QUEST_ID":   "quest_id",
		"nextScene":  "next_scene",
		"NextScene":  "next_scene",
		"Text":       "text",
		"id":         "id",
		"HTTPServer": "http_server",
	} {
		assert.Equal(t, want, snakeCase(in), in)
	}
}

func TestDecodeSceneNormalizesKeys(t *testing.T) {
	scene, err := DecodeScene([]byte(`
Scene: mixed
Lines:
  - ID: one
    Speaker: Ada
    Text: hello
    questId: q1
    NextScene: two
    sprite: ada
    unknownField: ignored
    Options:
      - Choice: again
        NEXT: one
`))
	require.NoError(t, err)
	assert.Equal(t, "mixed", scene.Name)
	require.Len(t, scene.Lines, 1)

	line := scene.Lines[0]
	assert.Equal(t, "one", line.ID)
	assert.Equal(t, "Ada", line.Speaker)
	assert.Equal(t, "q1", line.QuestID)
	assert.Equal(t, "two", line.NextScene)
	assert.Equal(t, "ada", line.Sprite)
	assert.True(t, line.HasOptions())
	assert.Equal(t, []Option{{Choice: "again", Next: "one"}}, line.Options)
}

func TestDecodeSceneEmptyDocument(t *testing.T) {
	scene, err := DecodeScene(nil)
	require.NoError(t, err)
	assert.Empty(t, scene.Lines)

	_, err = DecodeScene([]byte("lines: {not: a list}"))
	assert.Error(t, err)
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"scenes/hello.yaml":   {Data: []byte("lines:\n  - text: hi\n")},
		"scenes/bye.yml":      {Data: []byte("scene: farewell\nlines:\n  - text: bye\n")},
		"scenes/notes.txt":    {Data: []byte("not a scene")},
		"scenes/nested/x.yml": {Data: []byte("lines: []")},
	}
	src := FSSource{FS: fsys, Dir: "scenes"}

	names, err := src.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"bye", "hello"}, names)

	scene, err := Load(src, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", scene.Name)

	scene, err = Load(src, "bye")
	require.NoError(t, err)
	assert.Equal(t, "farewell", scene.Name)

	for _, name := range []string{"missing", "nested/x", "../scenes/hello", ""} {
		_, err = Load(src, name)
		var nf *NotFoundError
		assert.ErrorAs(t, err, &nf, name)
	}

	_, err = FSSource{FS: fsys, Dir: "nope"}.Names()
	assert.Error(t, err)
}

func TestMapSource(t *testing.T) {
	src := MapSource{"b": "", "a": "lines: []"}
	names, err := src.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	_, err = src.Lookup("c")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSceneName(t *testing.T) {
	name, ok := SceneName("intro.yaml")
	assert.True(t, ok)
	assert.Equal(t, "intro", name)

	name, ok = SceneName("Intro.YML")
	assert.True(t, ok)
	assert.Equal(t, "Intro", name)

	_, ok = SceneName("prefabs.json")
	assert.False(t, ok)
}

func TestNormalizeText(t *testing.T) {
	out, changed := NormalizeText("plain text\twith\r\nbreaks 😊")
	assert.False(t, changed)
	assert.Equal(t, "plain text\twith\r\nbreaks 😊", out)

	out, changed = NormalizeText("a\x00b\x1bc\u0085d")
	assert.True(t, changed)
	assert.Equal(t, "abcd", out)

	out, changed = NormalizeText("caf\xe9")
	assert.True(t, changed)
	assert.Equal(t, "caf\uFFFD", out)
}
