package dialogue

import (
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// DecodeScene parses one YAML scene document. Mapping keys are matched
// loosely (questId, QuestID, quest-id and quest_id are the same field) and
// unknown keys are ignored.
func DecodeScene(data []byte) (*Scene, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	scene := &Scene{}
	if root.Kind == 0 {
		// Empty document.
		return scene, nil
	}

	normalizeKeys(&root)
	if err := root.Decode(scene); err != nil {
		return nil, err
	}
	return scene, nil
}

func normalizeKeys(n *yaml.Node) {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind == yaml.ScalarNode {
				key.Value = snakeCase(key.Value)
			}
		}
	}
	for _, child := range n.Content {
		normalizeKeys(child)
	}
}

// snakeCase lowers a camelCase, PascalCase, kebab-case or SCREAMING_CASE key
// to snake_case.
func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
			continue
		case unicode.IsUpper(r) && i > 0:
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// ParseError reports a scene document that was found but could not be decoded.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse dialogue scene %q: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
