// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes conversation flows for downstream tools: a JSON
// or YAML document with a published JSON Schema, and a Markdown interviewer
// script.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/interview-engine/pkg/types"
)

// Document is the exported form of a conversation flow.
type Document struct {
	Title             string                `json:"title" yaml:"title"`
	Description       string                `json:"description" yaml:"description"`
	EstimatedDuration int                   `json:"estimatedDuration" yaml:"estimatedDuration"`
	Questions         []Question            `json:"questions" yaml:"questions"`
	EmotionalArc      []types.ArcCheckpoint `json:"emotionalArc" yaml:"emotionalArc"`
	ExportedAt        time.Time             `json:"exportedAt" yaml:"exportedAt"`
}

// Question is one exported question. Order is 1-based.
type Question struct {
	Order     int                    `json:"order" yaml:"order"`
	Question  string                 `json:"question" yaml:"question"`
	Category  types.QuestionCategory `json:"category" yaml:"category"`
	Timing    types.Timing           `json:"timing" yaml:"timing"`
	Duration  int                    `json:"duration" yaml:"duration"`
	FollowUps []string               `json:"followUps" yaml:"followUps"`
	Context   string                 `json:"context" yaml:"context"`
}

// Build converts f into an export document stamped with exportedAt.
func Build(f types.ConversationFlow, exportedAt time.Time) Document {
	doc := Document{
		Title:             f.Title,
		Description:       f.Description,
		EstimatedDuration: f.EstimatedDuration,
		Questions:         make([]Question, len(f.Questions)),
		EmotionalArc:      make([]types.ArcCheckpoint, len(f.EmotionalArc)),
		ExportedAt:        exportedAt.UTC(),
	}
	for i, q := range f.Questions {
		followUps := append([]string{}, q.FollowUps...)
		doc.Questions[i] = Question{
			Order:     i + 1,
			Question:  q.Question,
			Category:  q.Category,
			Timing:    q.Timing,
			Duration:  q.ExpectedDuration,
			FollowUps: followUps,
			Context:   q.Context,
		}
	}
	for i, cp := range f.EmotionalArc {
		cp.Techniques = append([]string{}, cp.Techniques...)
		doc.EmotionalArc[i] = cp
	}
	return doc
}

// MarshalJSON returns doc as indented JSON.
func MarshalJSON(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "export: marshal json")
	}
	return data, nil
}

// WriteJSON writes doc to path as indented JSON.
func WriteJSON(path string, doc Document) error {
	data, err := MarshalJSON(doc)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// WriteYAML writes doc to path as YAML.
func WriteYAML(path string, doc Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return eris.Wrap(err, "export: marshal yaml")
	}
	return writeFile(path, data)
}

// Script renders f as a Markdown interviewer script: questions in flow order
// with follow-ups, cultural notes, and the transition line into the next
// question.
func Script(f types.ConversationFlow) string {
	next := make(map[string]types.Transition, len(f.Transitions))
	for _, tr := range f.Transitions {
		next[tr.FromID] = tr
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", f.Title)
	if f.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", f.Description)
	}
	fmt.Fprintf(&b, "Estimated duration: %d min. Difficulty: %.1f.\n", f.EstimatedDuration, f.DifficultyLevel)

	title := cases.Title(language.English)
	var section types.Timing
	for i, q := range f.Questions {
		if i == 0 || q.Timing != section {
			section = q.Timing
			fmt.Fprintf(&b, "\n## %s\n", sectionHeading(title, section))
		}
		fmt.Fprintf(&b, "\n%d. %s (%d min, %s)\n", i+1, q.Question, q.ExpectedDuration, q.Sensitivity)
		for _, fu := range q.FollowUps {
			fmt.Fprintf(&b, "   - %s\n", fu)
		}
		if q.CulturalNotes != "" {
			fmt.Fprintf(&b, "   > Note: %s\n", q.CulturalNotes)
		}
		if tr, ok := next[q.ID]; ok {
			fmt.Fprintf(&b, "   _%s_\n", tr.Script)
		}
	}
	return b.String()
}

// unscheduledHeading labels questions that carry no timing.
const unscheduledHeading = "Unscheduled"

func sectionHeading(title cases.Caser, t types.Timing) string {
	if t == "" {
		return unscheduledHeading
	}
	return title.String(string(t))
}

// WriteScript writes the Markdown script of f to path.
func WriteScript(path string, f types.ConversationFlow) error {
	return writeFile(path, []byte(Script(f)))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrap(err, "export: create directory")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", filepath.Base(path))
	}
	return nil
}
