// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analysis loads and validates document analyses produced by the
// external analysis stage.
package analysis

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/interview-engine/pkg/types"
)

// Format identifies the encoding of an analysis file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var validate = validator.New()

// FormatFor returns the format implied by path's extension. ok is false for
// extensions that are not analysis files.
func FormatFor(path string) (f Format, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	}
	return "", false
}

// Load reads, parses, and validates the analysis at path. An analysis
// without an id takes the file's base name.
func Load(path string) (*types.DocumentAnalysis, error) {
	format, ok := FormatFor(path)
	if !ok {
		return nil, eris.Errorf("analysis: unsupported file type %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "analysis: read file")
	}

	a, err := Parse(data, format)
	if err != nil {
		return nil, eris.Wrapf(err, "analysis: %s", filepath.Base(path))
	}
	if a.ID == "" {
		a.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := Validate(a); err != nil {
		return nil, eris.Wrapf(err, "analysis: %s", filepath.Base(path))
	}
	return a, nil
}

// Parse decodes an analysis without validating it.
func Parse(data []byte, format Format) (*types.DocumentAnalysis, error) {
	var a types.DocumentAnalysis
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &a); err != nil {
			return nil, eris.Wrap(err, "parse yaml")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, eris.Wrap(err, "parse json")
		}
	default:
		return nil, eris.Errorf("unsupported format %q", format)
	}
	return &a, nil
}

// Validate checks field ranges and enumerations, and that ids are unique
// within each list.
func Validate(a *types.DocumentAnalysis) error {
	if err := validate.Struct(a); err != nil {
		return eris.Wrap(err, "validate")
	}

	lists := []struct {
		name string
		ids  []string
	}{
		{"themes", collect(a.Themes, func(t types.Theme) string { return t.ID })},
		{"characters", collect(a.Characters, func(c types.Character) string { return c.ID })},
		{"timeline", collect(a.Timeline, func(e types.TimelineEvent) string { return e.ID })},
		{"emotionalBeats", collect(a.EmotionalBeats, func(b types.EmotionalBeat) string { return b.ID })},
		{"sensitiveTopics", collect(a.SensitiveTopics, func(s types.SensitiveTopic) string { return s.ID })},
	}
	for _, l := range lists {
		seen := make(map[string]bool, len(l.ids))
		for _, id := range l.ids {
			if seen[id] {
				return eris.Errorf("validate: duplicate id %q in %s", id, l.name)
			}
			seen[id] = true
		}
	}
	return nil
}

func collect[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = id(it)
	}
	return out
}
