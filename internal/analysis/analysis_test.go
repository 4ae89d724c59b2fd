// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/interview-engine/pkg/types"
)

// writeFile is a test helper that creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `title: Rose's story
themes:
  - id: family
    name: Family
    relevance: high
    confidence: 0.9
characters:
  - id: rose
    name: Rose
    totalMentions: 14
    importance: 0.8
    emotionalState: sad
timeline:
  - id: move
    title: the move north
    date: "1962"
    type: turning-point
    importance: 0.7
    themes: [family]
    characters: [rose]
emotionalBeats:
  - id: b1
    emotion: fear
    position: 0.2
    intensity: 0.6
sensitiveTopics:
  - id: war
    topic: the war
    severity: high
`

const validJSON = `{
  "id": "rose-json",
  "themes": [{"id": "family", "name": "Family", "relevance": "low", "confidence": 0.5}],
  "characters": [],
  "timeline": [],
  "emotionalBeats": [{"id": "b1", "emotion": "joy", "position": 0.9, "intensity": 0.3}],
  "sensitiveTopics": []
}`

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "rose.yaml", validYAML)

	a, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rose", a.ID)
	assert.Equal(t, "Rose's story", a.Title)
	require.Len(t, a.Themes, 1)
	assert.Equal(t, types.LevelHigh, a.Themes[0].Relevance)
	require.Len(t, a.Characters, 1)
	assert.Equal(t, 14, a.Characters[0].TotalMentions)
	assert.Equal(t, "sad", a.Characters[0].EmotionalState)
	require.Len(t, a.Timeline, 1)
	assert.Equal(t, types.EventTurningPoint, a.Timeline[0].Type)
	assert.Equal(t, []string{"rose"}, a.Timeline[0].Characters)
	assert.InDelta(t, 0.2, a.EmotionalBeats[0].Position, 1e-9)
	assert.Equal(t, types.LevelHigh, a.SensitiveTopics[0].Severity)
}

func TestLoadJSONKeepsExplicitID(t *testing.T) {
	path := writeFile(t, t.TempDir(), "whatever.json", validJSON)

	a, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rose-json", a.ID)
	assert.Len(t, a.EmotionalBeats, 1)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "unsupported extension", file: "a.txt", content: "themes: []"},
		{name: "invalid yaml", file: "a.yaml", content: ":::bad\n"},
		{name: "invalid json", file: "a.json", content: "{"},
		{
			name: "bad relevance",
			file: "a.yaml",
			content: `themes:
  - {id: t, name: T, relevance: extreme, confidence: 0.5}
`,
		},
		{
			name: "confidence out of range",
			file: "a.yaml",
			content: `themes:
  - {id: t, name: T, relevance: low, confidence: 1.5}
`,
		},
		{
			name: "position out of range",
			file: "a.yaml",
			content: `emotionalBeats:
  - {id: b, emotion: joy, position: -0.1, intensity: 0.5}
`,
		},
		{
			name: "missing topic severity",
			file: "a.yaml",
			content: `sensitiveTopics:
  - {id: s, topic: debt}
`,
		},
		{
			name: "missing character id",
			file: "a.yaml",
			content: `characters:
  - {name: Ana}
`,
		},
		{
			name: "duplicate theme id",
			file: "a.yaml",
			content: `themes:
  - {id: t, name: T, relevance: low}
  - {id: t, name: U, relevance: low}
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateEmptyAnalysis(t *testing.T) {
	assert.NoError(t, Validate(&types.DocumentAnalysis{}))
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path   string
		want   Format
		wantOK bool
	}{
		{"a.yaml", FormatYAML, true},
		{"a.YML", FormatYAML, true},
		{"dir/a.json", FormatJSON, true},
		{"a.md", "", false},
		{"noext", "", false},
	}
	for _, tt := range tests {
		got, ok := FormatFor(tt.path)
		assert.Equal(t, tt.want, got, tt.path)
		assert.Equal(t, tt.wantOK, ok, tt.path)
	}
}
