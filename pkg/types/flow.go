// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Transition links two consecutive questions of a flow.
type Transition struct {
	FromID  string `json:"fromId" yaml:"fromId"`
	ToID    string `json:"toId" yaml:"toId"`
	Trigger string `json:"trigger" yaml:"trigger"`
	Type    string `json:"type" yaml:"type"`
	Script  string `json:"script" yaml:"script"`
}

// AlternativePath is an optional detour through the question list.
type AlternativePath struct {
	ID          string   `json:"id" yaml:"id"`
	Description string   `json:"description" yaml:"description"`
	QuestionIDs []string `json:"questionIds" yaml:"questionIds"`
}

// ArcCheckpoint is one target point on the emotional arc of an interview.
type ArcCheckpoint struct {
	// Position is the relative point in the interview, 0.0 to 1.0.
	Position      float64  `json:"position" yaml:"position"`
	TargetEmotion string   `json:"targetEmotion" yaml:"targetEmotion"`
	Intensity     float64  `json:"intensity" yaml:"intensity"`
	Techniques    []string `json:"techniques" yaml:"techniques"`
}

// ConversationFlow is the ordered interview plan built from a question list.
type ConversationFlow struct {
	ID               string              `json:"id" yaml:"id"`
	Title            string              `json:"title" yaml:"title"`
	Description      string              `json:"description" yaml:"description"`
	Questions        []InterviewQuestion `json:"questions" yaml:"questions"`
	Transitions      []Transition        `json:"transitions" yaml:"transitions"`
	AlternativePaths []AlternativePath   `json:"alternativePaths" yaml:"alternativePaths"`

	// EstimatedDuration is the sum of question durations in minutes.
	EstimatedDuration int `json:"estimatedDuration" yaml:"estimatedDuration"`

	// DifficultyLevel is the highest sensitivity score among the questions.
	DifficultyLevel float64         `json:"difficultyLevel" yaml:"difficultyLevel"`
	EmotionalArc    []ArcCheckpoint `json:"emotionalArc" yaml:"emotionalArc"`
}
