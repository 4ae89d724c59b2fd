// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package questions turns a document analysis into a bank of interview
// questions using fixed per-category rules and template tables.
//
// Generation is total: unknown template keys degrade to generic phrasing and
// empty analysis lists contribute nothing. The bank is assembled in the order
// opening, theme, character, timeline, emotional beat, sensitive topic,
// closing and then truncated to the cap, so that order is also the priority
// order for which questions survive truncation.
package questions

import (
	"fmt"

	"github.com/pdiddy/interview-engine/pkg/types"
)

// Position thresholds that place emotional-beat questions into timing buckets.
const (
	earlyPositionLimit  = 0.3
	middlePositionLimit = 0.7
)

// Generator builds question banks. It holds no state between calls and is
// safe for concurrent use.
type Generator struct {
	maxQuestions int
}

// New returns a Generator configured by cfg. A MaxQuestions of zero, a
// negative value, or a value above types.MaxQuestions uses types.MaxQuestions.
func New(cfg types.GenerationConfig) *Generator {
	limit := cfg.MaxQuestions
	if limit <= 0 || limit > types.MaxQuestions {
		limit = types.MaxQuestions
	}
	return &Generator{maxQuestions: limit}
}

// Generate builds a question bank with the default cap.
func Generate(analysis types.DocumentAnalysis) []types.InterviewQuestion {
	return New(types.GenerationConfig{}).Generate(analysis)
}

// Generate builds the question bank for analysis. Questions beyond the cap
// are dropped from the end, which removes closing questions first.
func (g *Generator) Generate(analysis types.DocumentAnalysis) []types.InterviewQuestion {
	var all []types.InterviewQuestion

	all = append(all, fixedQuestions(openingQuestions, types.TimingEarly, types.TypeOpenEnded)...)
	for i, theme := range analysis.Themes {
		all = append(all, themeQuestions(i, theme)...)
	}
	for _, c := range analysis.Characters {
		all = append(all, characterQuestions(c)...)
	}
	for _, ev := range analysis.Timeline {
		all = append(all, timelineQuestion(ev))
	}
	for _, beat := range analysis.EmotionalBeats {
		all = append(all, beatQuestion(beat))
	}
	for _, topic := range analysis.SensitiveTopics {
		all = append(all, topicQuestion(topic))
	}
	all = append(all, fixedQuestions(closingQuestions, types.TimingLate, types.TypeReflective)...)

	if len(all) > g.maxQuestions {
		all = all[:g.maxQuestions]
	}
	return all
}

// newQuestion fills the fields every generated question shares.
func newQuestion(id, text string) types.InterviewQuestion {
	return types.InterviewQuestion{
		ID:                id,
		Question:          text,
		FollowUps:         FollowUps(),
		Alternatives:      Alternatives(text),
		RelatedThemes:     []string{},
		RelatedCharacters: []string{},
	}
}

func fixedQuestions(src []fixedQuestion, timing types.Timing, qt types.QuestionType) []types.InterviewQuestion {
	out := make([]types.InterviewQuestion, 0, len(src))
	for _, f := range src {
		q := newQuestion(f.id, f.question)
		q.Category = f.category
		q.Type = qt
		q.Sensitivity = types.LevelLow
		q.Timing = timing
		q.Context = f.context
		q.ExpectedDuration = f.duration
		q.EmotionalImpact = f.impact
		q.NarrativeValue = f.value
		out = append(out, q)
	}
	return out
}

// themeQuestions uses the theme's position in the analysis, not the question
// index, to pick the timing bucket.
func themeQuestions(index int, theme types.Theme) []types.InterviewQuestion {
	texts, ok := themeTemplates[theme.ID]
	if !ok {
		texts = genericThemeQuestions(theme.Name)
	}
	if len(texts) > maxThemeQuestions {
		texts = texts[:maxThemeQuestions]
	}

	sensitivity := types.LevelLow
	impact := 0.3
	if theme.Relevance == types.LevelHigh {
		sensitivity = types.LevelMedium
		impact = 0.5
	}

	timing := types.TimingLate
	switch {
	case index < 2:
		timing = types.TimingEarly
	case index < 4:
		timing = types.TimingMiddle
	}

	out := make([]types.InterviewQuestion, 0, len(texts))
	for n, text := range texts {
		q := newQuestion(fmt.Sprintf("theme-%s-%d", theme.ID, n+1), text)
		q.Category = types.CategoryPersonal
		q.Type = types.TypeOpenEnded
		q.Sensitivity = sensitivity
		q.Timing = timing
		q.Context = fmt.Sprintf("Explores the theme %q (relevance: %s)", theme.Name, theme.Relevance)
		q.ExpectedDuration = 5
		q.EmotionalImpact = impact
		q.NarrativeValue = clamp01(theme.Confidence)
		q.RelatedThemes = []string{theme.ID}
		out = append(out, q)
	}
	return out
}

func characterQuestions(c types.Character) []types.InterviewQuestion {
	sensitivity := types.LevelMedium
	impact := 0.6
	if c.EmotionalState == "sad" {
		sensitivity = types.LevelHigh
		impact = 0.8
	}

	out := make([]types.InterviewQuestion, 0, charactersPerItem)
	for n, tmpl := range characterTemplates[:charactersPerItem] {
		q := newQuestion(fmt.Sprintf("character-%s-%d", c.ID, n+1), fmt.Sprintf(tmpl, c.Name))
		q.Category = types.CategoryRelationship
		q.Type = types.TypeDescriptive
		q.Sensitivity = sensitivity
		q.Timing = types.TimingMiddle
		q.Context = fmt.Sprintf("%s is mentioned %d times in the source material", c.Name, c.TotalMentions)
		q.ExpectedDuration = 4
		q.EmotionalImpact = impact
		q.NarrativeValue = clamp01(c.Importance)
		q.RelatedCharacters = []string{c.ID}
		out = append(out, q)
	}
	return out
}

func timelineQuestion(ev types.TimelineEvent) types.InterviewQuestion {
	sensitivity := types.LevelMedium
	impact := 0.5
	if ev.Type == types.EventTurningPoint {
		sensitivity = types.LevelHigh
		impact = 0.8
	}

	q := newQuestion("timeline-"+ev.ID, fmt.Sprintf(timelineTemplate, ev.Title))
	q.Category = types.CategoryFactual
	q.Type = types.TypeDescriptive
	q.Sensitivity = sensitivity
	q.Timing = types.TimingMiddle
	q.Context = timelineContext(ev)
	q.ExpectedDuration = 4
	q.EmotionalImpact = impact
	q.NarrativeValue = clamp01(ev.Importance)
	q.RelatedThemes = append([]string{}, ev.Themes...)
	q.RelatedCharacters = append([]string{}, ev.Characters...)
	return q
}

func timelineContext(ev types.TimelineEvent) string {
	if ev.Date == "" {
		return fmt.Sprintf("Timeline event: %s", ev.Title)
	}
	return fmt.Sprintf("Timeline event (%s): %s", ev.Date, ev.Title)
}

func beatQuestion(beat types.EmotionalBeat) types.InterviewQuestion {
	text, ok := emotionTemplates[beat.Emotion]
	if !ok {
		text = genericEmotionQuestion(beat.Emotion)
	}

	sensitivity := types.LevelMedium
	if highSensitivityEmotions[beat.Emotion] {
		sensitivity = types.LevelHigh
	}

	timing := types.TimingLate
	switch {
	case beat.Position < earlyPositionLimit:
		timing = types.TimingEarly
	case beat.Position < middlePositionLimit:
		timing = types.TimingMiddle
	}

	q := newQuestion("beat-"+beat.ID, text)
	q.Category = types.CategoryEmotional
	q.Type = types.TypeOpenEnded
	q.Sensitivity = sensitivity
	q.Timing = timing
	q.Context = fmt.Sprintf("Emotional beat: %s at %.0f%% of the story", beat.Emotion, beat.Position*100)
	q.ExpectedDuration = 5
	q.EmotionalImpact = clamp01(beat.Intensity)
	q.NarrativeValue = 0.7
	return q
}

// topicImpact is the emotional impact of a sensitive-topic question by severity.
var topicImpact = map[types.Level]float64{
	types.LevelLow:    0.5,
	types.LevelMedium: 0.7,
	types.LevelHigh:   0.9,
}

func topicQuestion(topic types.SensitiveTopic) types.InterviewQuestion {
	tmpl, ok := topicTemplates[topic.ID]
	if !ok {
		tmpl = genericTopicTemplate(topic.Topic)
	}

	q := newQuestion("sensitive-"+topic.ID, tmpl.question)
	q.Category = types.CategoryEmotional
	q.Type = types.TypeOpenEnded
	q.Sensitivity = topic.Severity
	q.Timing = types.TimingLate
	q.Context = fmt.Sprintf("Sensitive topic: %s (severity: %s)", topic.Topic, topic.Severity)
	q.CulturalNotes = tmpl.notes
	q.ExpectedDuration = 6
	q.EmotionalImpact = topicImpact[topic.Severity]
	q.NarrativeValue = 0.6
	return q
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
