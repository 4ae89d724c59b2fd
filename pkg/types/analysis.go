// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Level is a three-step low/medium/high rating used for theme relevance,
// topic severity, and question sensitivity.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Theme is a recurring subject identified in the source document.
type Theme struct {
	// ID is the theme's identifier. Known ids select a dedicated question set.
	ID string `json:"id" yaml:"id" validate:"required"`

	// Name is the human-readable theme name.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Relevance rates how central the theme is to the document.
	Relevance Level `json:"relevance" yaml:"relevance" validate:"required,oneof=low medium high"`

	// Confidence is the analysis confidence between 0.0 and 1.0.
	Confidence float64 `json:"confidence" yaml:"confidence" validate:"gte=0,lte=1"`
}

// Character is a person who appears in the source document.
type Character struct {
	ID            string  `json:"id" yaml:"id" validate:"required"`
	Name          string  `json:"name" yaml:"name" validate:"required"`
	TotalMentions int     `json:"totalMentions" yaml:"totalMentions" validate:"gte=0"`
	Importance    float64 `json:"importance" yaml:"importance" validate:"gte=0,lte=1"`

	// EmotionalState is the dominant emotion associated with the character
	// (e.g. "sad", "hopeful"). Free text; only "sad" changes generation.
	EmotionalState string `json:"emotionalState" yaml:"emotionalState"`
}

// EventTurningPoint marks a timeline event that changed the course of the story.
const EventTurningPoint = "turning-point"

// TimelineEvent is a dated event extracted from the source document.
type TimelineEvent struct {
	ID    string `json:"id" yaml:"id" validate:"required"`
	Title string `json:"title" yaml:"title" validate:"required"`

	// Date is kept as written in the document ("1962", "spring 1975").
	Date string `json:"date" yaml:"date"`

	// Type classifies the event (e.g. "milestone", "turning-point").
	Type string `json:"type" yaml:"type"`

	Importance float64  `json:"importance" yaml:"importance" validate:"gte=0,lte=1"`
	Themes     []string `json:"themes,omitempty" yaml:"themes,omitempty"`
	Characters []string `json:"characters,omitempty" yaml:"characters,omitempty"`
}

// EmotionalBeat is a point of emotional emphasis along the document.
type EmotionalBeat struct {
	ID      string `json:"id" yaml:"id" validate:"required"`
	Emotion string `json:"emotion" yaml:"emotion" validate:"required"`

	// Position is the relative location in the document, 0.0 (start) to 1.0 (end).
	Position float64 `json:"position" yaml:"position" validate:"gte=0,lte=1"`

	Intensity float64 `json:"intensity" yaml:"intensity" validate:"gte=0,lte=1"`
}

// SensitiveTopic is a subject the interviewer should approach with care.
type SensitiveTopic struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	Topic    string `json:"topic" yaml:"topic" validate:"required"`
	Severity Level  `json:"severity" yaml:"severity" validate:"required,oneof=low medium high"`
}

// DocumentAnalysis is the structured output of the external document-analysis
// stage and the sole input of question generation.
type DocumentAnalysis struct {
	// ID names the analysis; artifacts are written as <ID>-questions.yaml etc.
	// Loaders default it to the source file's base name.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Title is an optional display title for the interview project.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	Themes          []Theme          `json:"themes" yaml:"themes" validate:"dive"`
	Characters      []Character      `json:"characters" yaml:"characters" validate:"dive"`
	Timeline        []TimelineEvent  `json:"timeline" yaml:"timeline" validate:"dive"`
	EmotionalBeats  []EmotionalBeat  `json:"emotionalBeats" yaml:"emotionalBeats" validate:"dive"`
	SensitiveTopics []SensitiveTopic `json:"sensitiveTopics" yaml:"sensitiveTopics" validate:"dive"`
}
